package notion

import (
	"context"
	"errors"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
)

type accessRequestRepositoryImpl struct {
	client     *Client
	databaseID string
}

func NewAccessRequestRepository(client *Client, databaseID string) access.RequestRepository {
	return &accessRequestRepositoryImpl{client: client, databaseID: databaseID}
}

func requestFromPage(page Page) access.Request {
	return access.Request{
		ID:            page.ID,
		EmployeeID:    page.title("Employee ID"),
		ApplicationID: page.text("Application ID"),
		Type:          access.RequestType(page.selectName("Type", string(access.RequestTypeNew))),
		Status:        access.RequestStatus(page.selectName("Status", string(access.RequestStatusPending))),
		RequestDate:   page.date("Request Date"),
		ApprovedDate:  page.datePtr("Approved Date"),
		ApprovedBy:    page.textPtr("Approved By"),
		AdminNotes:    page.textPtr("Admin Notes"),
		Justification: page.text("Justification"),
		AutoGenerated: page.checkbox("Auto Generated"),
	}
}

func (r *accessRequestRepositoryImpl) Create(ctx context.Context, req access.Request) (access.Request, error) {
	props := Properties{
		"Employee ID":    titleProp(req.EmployeeID),
		"Application ID": textProp(req.ApplicationID),
		"Type":           selectProp(string(req.Type)),
		"Status":         selectProp(string(req.Status)),
		"Request Date":   dateProp(req.RequestDate),
		"Justification":  textProp(req.Justification),
		"Auto Generated": checkboxProp(req.AutoGenerated),
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, props)
	if err != nil {
		return access.Request{}, err
	}
	return requestFromPage(page), nil
}

func (r *accessRequestRepositoryImpl) GetByID(ctx context.Context, id string) (access.Request, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return access.Request{}, access.ErrRequestNotFound
		}
		return access.Request{}, err
	}
	if page.Archived {
		return access.Request{}, access.ErrRequestNotFound
	}
	return requestFromPage(page), nil
}

// List post-filters client-side; the query endpoint is called without a
// compound filter so one page schema serves every combination.
func (r *accessRequestRepositoryImpl) List(ctx context.Context, filter access.RequestFilter) ([]access.Request, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID)
	if err != nil {
		return nil, err
	}

	requests := make([]access.Request, 0, len(pages))
	for _, page := range pages {
		if page.Archived {
			continue
		}
		req := requestFromPage(page)
		if filter.Status != nil && req.Status != *filter.Status {
			continue
		}
		if filter.EmployeeID != nil && req.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.ApplicationID != nil && req.ApplicationID != *filter.ApplicationID {
			continue
		}
		requests = append(requests, req)
	}
	return requests, nil
}

func (r *accessRequestRepositoryImpl) Update(ctx context.Context, update access.UpdateRequestRequest) (access.Request, error) {
	props := Properties{}
	if update.Status != nil {
		props["Status"] = selectProp(string(*update.Status))
	}
	if update.ApprovedDate != nil {
		props["Approved Date"] = dateProp(*update.ApprovedDate)
	}
	if update.ApprovedBy != nil {
		props["Approved By"] = textProp(*update.ApprovedBy)
	}
	if update.AdminNotes != nil {
		props["Admin Notes"] = textProp(*update.AdminNotes)
	}

	page, err := r.client.UpdatePage(ctx, update.ID, props)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return access.Request{}, access.ErrRequestNotFound
		}
		return access.Request{}, err
	}
	return requestFromPage(page), nil
}
