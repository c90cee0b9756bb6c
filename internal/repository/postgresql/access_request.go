package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/access"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type accessRequestRepositoryImpl struct {
	db *database.DB
}

func NewAccessRequestRepository(db *database.DB) access.RequestRepository {
	return &accessRequestRepositoryImpl{db: db}
}

// WithTransaction runs fn with every repository sharing this store on a
// single transaction; the access service uses it to make approvals atomic.
func (r *accessRequestRepositoryImpl) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithTransaction(ctx, r.db, fn)
}

const accessRequestColumns = `id, employee_id, application_id, type, status, request_date,
	approved_date, approved_by, admin_notes, justification, auto_generated`

func scanAccessRequest(row pgx.Row) (access.Request, error) {
	var req access.Request
	err := row.Scan(
		&req.ID,
		&req.EmployeeID,
		&req.ApplicationID,
		&req.Type,
		&req.Status,
		&req.RequestDate,
		&req.ApprovedDate,
		&req.ApprovedBy,
		&req.AdminNotes,
		&req.Justification,
		&req.AutoGenerated,
	)
	return req, err
}

func (r *accessRequestRepositoryImpl) Create(ctx context.Context, req access.Request) (access.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO access_requests (
			id, employee_id, application_id, type, status,
			request_date, justification, auto_generated
		) VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), $5, $6)
		RETURNING ` + accessRequestColumns
	return scanAccessRequest(q.QueryRow(ctx, query,
		req.EmployeeID, req.ApplicationID, req.Type, req.Status, req.Justification, req.AutoGenerated))
}

func (r *accessRequestRepositoryImpl) GetByID(ctx context.Context, id string) (access.Request, error) {
	q := GetQuerier(ctx, r.db)

	req, err := scanAccessRequest(q.QueryRow(ctx,
		`SELECT `+accessRequestColumns+` FROM access_requests WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return access.Request{}, access.ErrRequestNotFound
	}
	return req, err
}

func (r *accessRequestRepositoryImpl) List(ctx context.Context, filter access.RequestFilter) ([]access.Request, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}
	if filter.ApplicationID != nil {
		args = append(args, *filter.ApplicationID)
		conditions = append(conditions, fmt.Sprintf("application_id = $%d", len(args)))
	}

	query := `SELECT ` + accessRequestColumns + ` FROM access_requests`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY request_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []access.Request
	for rows.Next() {
		req, err := scanAccessRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (r *accessRequestRepositoryImpl) Update(ctx context.Context, update access.UpdateRequestRequest) (access.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE access_requests SET
			status        = COALESCE($2, status),
			approved_date = COALESCE($3, approved_date),
			approved_by   = COALESCE($4, approved_by),
			admin_notes   = COALESCE($5, admin_notes)
		WHERE id = $1
		RETURNING ` + accessRequestColumns
	req, err := scanAccessRequest(q.QueryRow(ctx, query,
		update.ID, (*string)(update.Status), update.ApprovedDate, update.ApprovedBy, update.AdminNotes))
	if errors.Is(err, pgx.ErrNoRows) {
		return access.Request{}, access.ErrRequestNotFound
	}
	return req, err
}
