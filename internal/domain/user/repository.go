package user

import "context"

// Repository - collection access for the Users store.
// GetByEmail matches case-insensitively; every backend applies the same
// policy so authentication outcomes do not depend on the configured store.
type Repository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, update UpdateUserRequest) (User, error)
}
