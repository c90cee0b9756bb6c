package user

import "context"

type UserService interface {
	List(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)
	// Offboard marks the user inactive and stamps the offboard date.
	Offboard(ctx context.Context, id string) (UserResponse, error)
}
