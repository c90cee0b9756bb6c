package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/dashboard"
	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/cache"
)

const statsCacheKey = "dashboard:stats"

type DashboardServiceImpl struct {
	userRepository        user.Repository
	applicationRepository application.Repository
	requestRepository     access.RequestRepository
	grantRepository       access.GrantRepository
	cache                 cache.Cache
}

func NewDashboardService(
	userRepository user.Repository,
	applicationRepository application.Repository,
	requestRepository access.RequestRepository,
	grantRepository access.GrantRepository,
	c cache.Cache,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		userRepository:        userRepository,
		applicationRepository: applicationRepository,
		requestRepository:     requestRepository,
		grantRepository:       grantRepository,
		cache:                 c,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	var stats dashboard.StatsResponse
	if data, ok := s.cache.Get(ctx, statsCacheKey); ok {
		if err := json.Unmarshal(data, &stats); err == nil {
			return stats, nil
		}
	}

	users, err := s.userRepository.List(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count users: %w", err)
	}

	apps, err := s.applicationRepository.List(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count applications: %w", err)
	}

	pending := access.RequestStatusPending
	requests, err := s.requestRepository.List(ctx, access.RequestFilter{Status: &pending})
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count pending requests: %w", err)
	}

	active := access.GrantStatusActive
	grants, err := s.grantRepository.List(ctx, access.GrantFilter{Status: &active})
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to count active grants: %w", err)
	}

	stats = dashboard.StatsResponse{
		TotalUsers:        len(users),
		TotalApplications: len(apps),
		PendingRequests:   len(requests),
		ActiveAccess:      len(grants),
	}

	if data, err := json.Marshal(stats); err == nil {
		s.cache.Set(ctx, statsCacheKey, data, cache.DefaultTTL)
	}
	return stats, nil
}
