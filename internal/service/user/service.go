package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/cache"
)

const usersCacheKey = "users:all"

type UserServiceImpl struct {
	user.Repository
	cache cache.Cache
}

func NewUserService(userRepository user.Repository, c cache.Cache) user.UserService {
	return &UserServiceImpl{
		Repository: userRepository,
		cache:      c,
	}
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	var responses []user.UserResponse
	if data, ok := s.cache.Get(ctx, usersCacheKey); ok {
		if err := json.Unmarshal(data, &responses); err == nil {
			return responses, nil
		}
	}

	users, err := s.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses = make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.ToResponse(u))
	}

	if data, err := json.Marshal(responses); err == nil {
		s.cache.Set(ctx, usersCacheKey, data, cache.DefaultTTL)
	}
	return responses, nil
}

// GetByID implements user.UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(userData), nil
}

// Create implements user.UserService.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	// The directory is keyed by email; a second row for the same address
	// would make the login match ambiguous.
	if _, err := s.Repository.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrUserEmailExists
	} else if err != user.ErrUserNotFound {
		return user.UserResponse{}, fmt.Errorf("failed to check user email: %w", err)
	}

	created, err := s.Repository.Create(ctx, user.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      user.Role(req.Role),
		Status:    user.StatusActive,
		JoinDate:  time.Now(),
		InvitedBy: req.InvitedBy,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.cache.Invalidate(ctx, "users")
	s.cache.Invalidate(ctx, "dashboard")

	return user.ToResponse(created), nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.Repository.Update(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	s.cache.Invalidate(ctx, "users")

	return user.ToResponse(updated), nil
}

// Offboard implements user.UserService.
func (s *UserServiceImpl) Offboard(ctx context.Context, id string) (user.UserResponse, error) {
	userData, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	if userData.Status == user.StatusOffboard {
		return user.UserResponse{}, user.ErrAlreadyOffboarded
	}

	now := time.Now()
	status := string(user.StatusOffboard)
	updated, err := s.Repository.Update(ctx, user.UpdateUserRequest{
		ID:           id,
		Status:       &status,
		OffboardDate: &now,
	})
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to offboard user: %w", err)
	}

	s.cache.Invalidate(ctx, "users")
	s.cache.Invalidate(ctx, "dashboard")

	return user.ToResponse(updated), nil
}
