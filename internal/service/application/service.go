package application

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/cache"
)

const applicationsCacheKey = "applications:all"

type ApplicationServiceImpl struct {
	application.Repository
	cache cache.Cache
}

func NewApplicationService(applicationRepository application.Repository, c cache.Cache) application.ApplicationService {
	return &ApplicationServiceImpl{
		Repository: applicationRepository,
		cache:      c,
	}
}

// List implements application.ApplicationService.
func (s *ApplicationServiceImpl) List(ctx context.Context) ([]application.ApplicationResponse, error) {
	var responses []application.ApplicationResponse
	if data, ok := s.cache.Get(ctx, applicationsCacheKey); ok {
		if err := json.Unmarshal(data, &responses); err == nil {
			return responses, nil
		}
	}

	apps, err := s.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	responses = make([]application.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, application.ToResponse(app))
	}

	if data, err := json.Marshal(responses); err == nil {
		s.cache.Set(ctx, applicationsCacheKey, data, cache.DefaultTTL)
	}
	return responses, nil
}

// GetByID implements application.ApplicationService.
func (s *ApplicationServiceImpl) GetByID(ctx context.Context, id string) (application.ApplicationResponse, error) {
	app, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return application.ApplicationResponse{}, err
	}
	return application.ToResponse(app), nil
}

// Create implements application.ApplicationService.
func (s *ApplicationServiceImpl) Create(ctx context.Context, req application.CreateApplicationRequest, createdBy string) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	created, err := s.Repository.Create(ctx, application.Application{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		AdminEmails: req.AdminEmails,
		CreatedBy:   createdBy,
	})
	if err != nil {
		return application.ApplicationResponse{}, fmt.Errorf("failed to create application: %w", err)
	}

	s.cache.Invalidate(ctx, "applications")
	s.cache.Invalidate(ctx, "dashboard")

	return application.ToResponse(created), nil
}

// Update implements application.ApplicationService.
func (s *ApplicationServiceImpl) Update(ctx context.Context, req application.UpdateApplicationRequest) (application.ApplicationResponse, error) {
	if err := req.Validate(); err != nil {
		return application.ApplicationResponse{}, err
	}

	updated, err := s.Repository.Update(ctx, req)
	if err != nil {
		return application.ApplicationResponse{}, err
	}

	s.cache.Invalidate(ctx, "applications")

	return application.ToResponse(updated), nil
}

// Delete implements application.ApplicationService.
func (s *ApplicationServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.Repository.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, "applications")
	s.cache.Invalidate(ctx, "dashboard")

	return nil
}
