package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
)

type accessRegistryRepositoryImpl struct {
	client *Client
}

func NewAccessRegistryRepository(client *Client) access.GrantRepository {
	return &accessRegistryRepositoryImpl{client: client}
}

type accessRegistryRow struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	ApplicationID string `json:"application_id"`
	GrantedDate   string `json:"granted_date"`
	GrantedBy     string `json:"granted_by"`
	Status        string `json:"status"`
	RevokedDate   string `json:"revoked_date,omitempty"`
	RevokedBy     string `json:"revoked_by,omitempty"`
}

func (row accessRegistryRow) toDomain() access.Grant {
	status := access.GrantStatus(row.Status)
	if status == "" {
		status = access.GrantStatusActive
	}
	return access.Grant{
		ID:            row.ID,
		EmployeeID:    row.EmployeeID,
		ApplicationID: row.ApplicationID,
		GrantedDate:   parseDate(row.GrantedDate),
		GrantedBy:     row.GrantedBy,
		Status:        status,
		RevokedDate:   parseDatePtr(row.RevokedDate),
		RevokedBy:     strPtr(row.RevokedBy),
	}
}

func (r *accessRegistryRepositoryImpl) Create(ctx context.Context, grant access.Grant) (access.Grant, error) {
	params := url.Values{}
	params.Set("employee_id", grant.EmployeeID)
	params.Set("application_id", grant.ApplicationID)
	if grant.GrantedBy != "" {
		params.Set("granted_by", grant.GrantedBy)
	}

	data, err := r.client.Post(ctx, "access-registry", params)
	if err != nil {
		return access.Grant{}, err
	}

	var row accessRegistryRow
	if err := json.Unmarshal(data, &row); err != nil {
		return access.Grant{}, fmt.Errorf("decode created registry entry: %w", err)
	}
	return row.toDomain(), nil
}

func (r *accessRegistryRepositoryImpl) GetByID(ctx context.Context, id string) (access.Grant, error) {
	grants, err := r.List(ctx, access.GrantFilter{})
	if err != nil {
		return access.Grant{}, err
	}
	for _, g := range grants {
		if g.ID == id {
			return g, nil
		}
	}
	return access.Grant{}, access.ErrGrantNotFound
}

func (r *accessRegistryRepositoryImpl) List(ctx context.Context, filter access.GrantFilter) ([]access.Grant, error) {
	params := url.Values{}
	if filter.Status != nil {
		params.Set("status", string(*filter.Status))
	}
	if filter.EmployeeID != nil {
		params.Set("employee_id", *filter.EmployeeID)
	}
	if filter.ApplicationID != nil {
		params.Set("application_id", *filter.ApplicationID)
	}

	data, err := r.client.Get(ctx, "access-registry", params)
	if err != nil {
		return nil, err
	}

	var rows []accessRegistryRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode registry entries: %w", err)
	}

	grants := make([]access.Grant, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		grants = append(grants, row.toDomain())
	}
	return grants, nil
}

func (r *accessRegistryRepositoryImpl) Update(ctx context.Context, update access.UpdateGrantRequest) (access.Grant, error) {
	params := url.Values{}
	params.Set("id", update.ID)
	if update.Status != nil {
		params.Set("status", string(*update.Status))
	}
	if update.RevokedDate != nil {
		params.Set("revoked_date", formatDatePtr(update.RevokedDate))
	}
	if update.RevokedBy != nil {
		params.Set("revoked_by", *update.RevokedBy)
	}

	data, err := r.client.Post(ctx, "access-registry/update", params)
	if err != nil {
		if IsNotFound(err) {
			return access.Grant{}, access.ErrGrantNotFound
		}
		return access.Grant{}, err
	}

	var row accessRegistryRow
	if err := json.Unmarshal(data, &row); err != nil {
		return access.Grant{}, fmt.Errorf("decode updated registry entry: %w", err)
	}
	return row.toDomain(), nil
}
