package notion

import (
	"context"
	"errors"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
)

type applicationRepositoryImpl struct {
	client     *Client
	databaseID string
}

func NewApplicationRepository(client *Client, databaseID string) application.Repository {
	return &applicationRepositoryImpl{client: client, databaseID: databaseID}
}

func applicationFromPage(page Page) application.Application {
	return application.Application{
		ID:          page.ID,
		Name:        page.title("Name"),
		Category:    page.selectName("Category", ""),
		Description: page.text("Description"),
		AdminEmails: page.multiSelect("Admin Emails"),
		CreatedAt:   page.CreatedTime,
		CreatedBy:   page.text("Created By"),
	}
}

func (r *applicationRepositoryImpl) List(ctx context.Context) ([]application.Application, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID)
	if err != nil {
		return nil, err
	}

	apps := make([]application.Application, 0, len(pages))
	for _, page := range pages {
		if page.Archived {
			continue
		}
		apps = append(apps, applicationFromPage(page))
	}
	return apps, nil
}

func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	if page.Archived {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return applicationFromPage(page), nil
}

func (r *applicationRepositoryImpl) Create(ctx context.Context, app application.Application) (application.Application, error) {
	props := Properties{
		"Name":         titleProp(app.Name),
		"Category":     selectProp(app.Category),
		"Description":  textProp(app.Description),
		"Admin Emails": multiSelectProp(app.AdminEmails),
		"Created By":   textProp(app.CreatedBy),
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, props)
	if err != nil {
		return application.Application{}, err
	}
	return applicationFromPage(page), nil
}

func (r *applicationRepositoryImpl) Update(ctx context.Context, update application.UpdateApplicationRequest) (application.Application, error) {
	props := Properties{}
	if update.Name != nil {
		props["Name"] = titleProp(*update.Name)
	}
	if update.Category != nil {
		props["Category"] = selectProp(*update.Category)
	}
	if update.Description != nil {
		props["Description"] = textProp(*update.Description)
	}
	if update.AdminEmails != nil {
		props["Admin Emails"] = multiSelectProp(*update.AdminEmails)
	}

	page, err := r.client.UpdatePage(ctx, update.ID, props)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return applicationFromPage(page), nil
}

// Delete archives the page; Notion has no hard delete over the API.
func (r *applicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	if err := r.client.ArchivePage(ctx, id); err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return application.ErrApplicationNotFound
		}
		return err
	}
	return nil
}
