package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
)

type applicationRepositoryImpl struct {
	client *Client
}

func NewApplicationRepository(client *Client) application.Repository {
	return &applicationRepositoryImpl{client: client}
}

type applicationRow struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	AdminEmails json.RawMessage `json:"admin_emails,omitempty"`
	CreatedAt   string          `json:"created_at"`
	CreatedBy   string          `json:"created_by"`
}

// adminEmails tolerates both encodings: recent script builds answer a
// JSON array, raw rows carry the comma-joined cell value.
func (row applicationRow) adminEmails() []string {
	if len(row.AdminEmails) == 0 {
		return []string{}
	}
	var asList []string
	if err := json.Unmarshal(row.AdminEmails, &asList); err == nil {
		return asList
	}
	var asString string
	if err := json.Unmarshal(row.AdminEmails, &asString); err == nil {
		return splitEmails(asString)
	}
	return []string{}
}

func (row applicationRow) toDomain() application.Application {
	return application.Application{
		ID:          row.ID,
		Name:        row.Name,
		Category:    row.Category,
		Description: row.Description,
		AdminEmails: row.adminEmails(),
		CreatedAt:   parseDate(row.CreatedAt),
		CreatedBy:   row.CreatedBy,
	}
}

func (r *applicationRepositoryImpl) List(ctx context.Context) ([]application.Application, error) {
	data, err := r.client.Get(ctx, "applications", nil)
	if err != nil {
		return nil, err
	}

	var rows []applicationRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode applications: %w", err)
	}

	apps := make([]application.Application, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		apps = append(apps, row.toDomain())
	}
	return apps, nil
}

func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	apps, err := r.List(ctx)
	if err != nil {
		return application.Application{}, err
	}
	for _, app := range apps {
		if app.ID == id {
			return app, nil
		}
	}
	return application.Application{}, application.ErrApplicationNotFound
}

func (r *applicationRepositoryImpl) Create(ctx context.Context, app application.Application) (application.Application, error) {
	params := url.Values{}
	params.Set("name", app.Name)
	params.Set("category", app.Category)
	if app.Description != "" {
		params.Set("description", app.Description)
	}
	if len(app.AdminEmails) > 0 {
		params.Set("admin_emails", joinEmails(app.AdminEmails))
	}
	if app.CreatedBy != "" {
		params.Set("created_by", app.CreatedBy)
	}

	data, err := r.client.Post(ctx, "applications", params)
	if err != nil {
		return application.Application{}, err
	}

	var row applicationRow
	if err := json.Unmarshal(data, &row); err != nil {
		return application.Application{}, fmt.Errorf("decode created application: %w", err)
	}
	return row.toDomain(), nil
}

func (r *applicationRepositoryImpl) Update(ctx context.Context, update application.UpdateApplicationRequest) (application.Application, error) {
	params := url.Values{}
	params.Set("id", update.ID)
	if update.Name != nil {
		params.Set("name", *update.Name)
	}
	if update.Category != nil {
		params.Set("category", *update.Category)
	}
	if update.Description != nil {
		params.Set("description", *update.Description)
	}
	if update.AdminEmails != nil {
		params.Set("admin_emails", joinEmails(*update.AdminEmails))
	}

	data, err := r.client.Post(ctx, "applications/update", params)
	if err != nil {
		if IsNotFound(err) {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, err
	}

	var row applicationRow
	if err := json.Unmarshal(data, &row); err != nil {
		return application.Application{}, fmt.Errorf("decode updated application: %w", err)
	}
	return row.toDomain(), nil
}

func (r *applicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	params := url.Values{}
	params.Set("id", id)

	_, err := r.client.Post(ctx, "applications/delete", params)
	if IsNotFound(err) {
		return application.ErrApplicationNotFound
	}
	return err
}
