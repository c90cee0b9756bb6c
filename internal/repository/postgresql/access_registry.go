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

type accessRegistryRepositoryImpl struct {
	db *database.DB
}

func NewAccessRegistryRepository(db *database.DB) access.GrantRepository {
	return &accessRegistryRepositoryImpl{db: db}
}

const accessRegistryColumns = `id, employee_id, application_id, granted_date, granted_by,
	status, revoked_date, revoked_by`

func scanGrant(row pgx.Row) (access.Grant, error) {
	var g access.Grant
	err := row.Scan(
		&g.ID,
		&g.EmployeeID,
		&g.ApplicationID,
		&g.GrantedDate,
		&g.GrantedBy,
		&g.Status,
		&g.RevokedDate,
		&g.RevokedBy,
	)
	return g, err
}

func (r *accessRegistryRepositoryImpl) Create(ctx context.Context, grant access.Grant) (access.Grant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO access_registry (
			id, employee_id, application_id, granted_date, granted_by, status
		) VALUES (gen_random_uuid(), $1, $2, NOW(), $3, $4)
		RETURNING ` + accessRegistryColumns
	return scanGrant(q.QueryRow(ctx, query,
		grant.EmployeeID, grant.ApplicationID, grant.GrantedBy, grant.Status))
}

func (r *accessRegistryRepositoryImpl) GetByID(ctx context.Context, id string) (access.Grant, error) {
	q := GetQuerier(ctx, r.db)

	g, err := scanGrant(q.QueryRow(ctx,
		`SELECT `+accessRegistryColumns+` FROM access_registry WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return access.Grant{}, access.ErrGrantNotFound
	}
	return g, err
}

func (r *accessRegistryRepositoryImpl) List(ctx context.Context, filter access.GrantFilter) ([]access.Grant, error) {
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

	query := `SELECT ` + accessRegistryColumns + ` FROM access_registry`
	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}
	query += ` ORDER BY granted_date DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []access.Grant
	for rows.Next() {
		g, err := scanGrant(rows)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

func (r *accessRegistryRepositoryImpl) Update(ctx context.Context, update access.UpdateGrantRequest) (access.Grant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE access_registry SET
			status       = COALESCE($2, status),
			revoked_date = COALESCE($3, revoked_date),
			revoked_by   = COALESCE($4, revoked_by)
		WHERE id = $1
		RETURNING ` + accessRegistryColumns
	g, err := scanGrant(q.QueryRow(ctx, query,
		update.ID, (*string)(update.Status), update.RevokedDate, update.RevokedBy))
	if errors.Is(err, pgx.ErrNoRows) {
		return access.Grant{}, access.ErrGrantNotFound
	}
	return g, err
}
