package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
)

type accessRequestRepositoryImpl struct {
	client *Client
}

func NewAccessRequestRepository(client *Client) access.RequestRepository {
	return &accessRequestRepositoryImpl{client: client}
}

type accessRequestRow struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	ApplicationID string `json:"application_id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	RequestDate   string `json:"request_date"`
	ApprovedDate  string `json:"approved_date,omitempty"`
	ApprovedBy    string `json:"approved_by,omitempty"`
	AdminNotes    string `json:"admin_notes,omitempty"`
	Justification string `json:"justification"`
	AutoGenerated bool   `json:"auto_generated"`
}

func (row accessRequestRow) toDomain() access.Request {
	reqType := access.RequestType(row.Type)
	if reqType == "" {
		reqType = access.RequestTypeNew
	}
	// Legacy rows predate the status column; they are pending by definition.
	status := access.RequestStatus(row.Status)
	if status == "" {
		status = access.RequestStatusPending
	}
	return access.Request{
		ID:            row.ID,
		EmployeeID:    row.EmployeeID,
		ApplicationID: row.ApplicationID,
		Type:          reqType,
		Status:        status,
		RequestDate:   parseDate(row.RequestDate),
		ApprovedDate:  parseDatePtr(row.ApprovedDate),
		ApprovedBy:    strPtr(row.ApprovedBy),
		AdminNotes:    strPtr(row.AdminNotes),
		Justification: row.Justification,
		AutoGenerated: row.AutoGenerated,
	}
}

func (r *accessRequestRepositoryImpl) Create(ctx context.Context, req access.Request) (access.Request, error) {
	params := url.Values{}
	params.Set("employee_id", req.EmployeeID)
	params.Set("application_id", req.ApplicationID)
	params.Set("justification", req.Justification)
	params.Set("type", string(req.Type))
	params.Set("auto_generated", strconv.FormatBool(req.AutoGenerated))

	data, err := r.client.Post(ctx, "access-requests", params)
	if err != nil {
		return access.Request{}, err
	}

	var row accessRequestRow
	if err := json.Unmarshal(data, &row); err != nil {
		return access.Request{}, fmt.Errorf("decode created access request: %w", err)
	}
	return row.toDomain(), nil
}

func (r *accessRequestRepositoryImpl) GetByID(ctx context.Context, id string) (access.Request, error) {
	requests, err := r.List(ctx, access.RequestFilter{})
	if err != nil {
		return access.Request{}, err
	}
	for _, req := range requests {
		if req.ID == id {
			return req, nil
		}
	}
	return access.Request{}, access.ErrRequestNotFound
}

func (r *accessRequestRepositoryImpl) List(ctx context.Context, filter access.RequestFilter) ([]access.Request, error) {
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

	data, err := r.client.Get(ctx, "access-requests", params)
	if err != nil {
		return nil, err
	}

	var rows []accessRequestRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode access requests: %w", err)
	}

	requests := make([]access.Request, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		requests = append(requests, row.toDomain())
	}
	return requests, nil
}

func (r *accessRequestRepositoryImpl) Update(ctx context.Context, update access.UpdateRequestRequest) (access.Request, error) {
	params := url.Values{}
	params.Set("id", update.ID)
	if update.Status != nil {
		params.Set("status", string(*update.Status))
	}
	if update.ApprovedDate != nil {
		params.Set("approved_date", formatDatePtr(update.ApprovedDate))
	}
	if update.ApprovedBy != nil {
		params.Set("approved_by", *update.ApprovedBy)
	}
	if update.AdminNotes != nil {
		params.Set("admin_notes", *update.AdminNotes)
	}

	data, err := r.client.Post(ctx, "access-requests/update", params)
	if err != nil {
		if IsNotFound(err) {
			return access.Request{}, access.ErrRequestNotFound
		}
		return access.Request{}, err
	}

	var row accessRequestRow
	if err := json.Unmarshal(data, &row); err != nil {
		return access.Request{}, fmt.Errorf("decode updated access request: %w", err)
	}
	return row.toDomain(), nil
}
