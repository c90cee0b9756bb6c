package application

import "context"

type ApplicationService interface {
	List(ctx context.Context) ([]ApplicationResponse, error)
	GetByID(ctx context.Context, id string) (ApplicationResponse, error)
	Create(ctx context.Context, req CreateApplicationRequest, createdBy string) (ApplicationResponse, error)
	Update(ctx context.Context, req UpdateApplicationRequest) (ApplicationResponse, error)
	Delete(ctx context.Context, id string) error
}
