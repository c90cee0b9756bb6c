package application

import "context"

// Repository - collection access for the Applications store.
// Delete is a hard delete where the backend supports one; the Notion
// backend archives the page instead, which is equivalent in scope.
type Repository interface {
	List(ctx context.Context) ([]Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	Create(ctx context.Context, app Application) (Application, error)
	Update(ctx context.Context, update UpdateApplicationRequest) (Application, error)
	Delete(ctx context.Context, id string) error
}
