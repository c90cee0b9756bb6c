package notion

import (
	"context"
	"errors"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
)

type accessRegistryRepositoryImpl struct {
	client     *Client
	databaseID string
}

func NewAccessRegistryRepository(client *Client, databaseID string) access.GrantRepository {
	return &accessRegistryRepositoryImpl{client: client, databaseID: databaseID}
}

func grantFromPage(page Page) access.Grant {
	return access.Grant{
		ID:            page.ID,
		EmployeeID:    page.title("Employee ID"),
		ApplicationID: page.text("Application ID"),
		GrantedDate:   page.date("Granted Date"),
		GrantedBy:     page.text("Granted By"),
		Status:        access.GrantStatus(page.selectName("Status", string(access.GrantStatusActive))),
		RevokedDate:   page.datePtr("Revoked Date"),
		RevokedBy:     page.textPtr("Revoked By"),
	}
}

func (r *accessRegistryRepositoryImpl) Create(ctx context.Context, grant access.Grant) (access.Grant, error) {
	props := Properties{
		"Employee ID":    titleProp(grant.EmployeeID),
		"Application ID": textProp(grant.ApplicationID),
		"Granted Date":   dateProp(grant.GrantedDate),
		"Granted By":     textProp(grant.GrantedBy),
		"Status":         selectProp(string(grant.Status)),
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, props)
	if err != nil {
		return access.Grant{}, err
	}
	return grantFromPage(page), nil
}

func (r *accessRegistryRepositoryImpl) GetByID(ctx context.Context, id string) (access.Grant, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return access.Grant{}, access.ErrGrantNotFound
		}
		return access.Grant{}, err
	}
	if page.Archived {
		return access.Grant{}, access.ErrGrantNotFound
	}
	return grantFromPage(page), nil
}

func (r *accessRegistryRepositoryImpl) List(ctx context.Context, filter access.GrantFilter) ([]access.Grant, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID)
	if err != nil {
		return nil, err
	}

	grants := make([]access.Grant, 0, len(pages))
	for _, page := range pages {
		if page.Archived {
			continue
		}
		grant := grantFromPage(page)
		if filter.Status != nil && grant.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && grant.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.ApplicationID != nil && grant.ApplicationID != *filter.ApplicationID {
			continue
		}
		grants = append(grants, grant)
	}
	return grants, nil
}

func (r *accessRegistryRepositoryImpl) Update(ctx context.Context, update access.UpdateGrantRequest) (access.Grant, error) {
	props := Properties{}
	if update.Status != nil {
		props["Status"] = selectProp(string(*update.Status))
	}
	if update.RevokedDate != nil {
		props["Revoked Date"] = dateProp(*update.RevokedDate)
	}
	if update.RevokedBy != nil {
		props["Revoked By"] = textProp(*update.RevokedBy)
	}

	page, err := r.client.UpdatePage(ctx, update.ID, props)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return access.Grant{}, access.ErrGrantNotFound
		}
		return access.Grant{}, err
	}
	return grantFromPage(page), nil
}
