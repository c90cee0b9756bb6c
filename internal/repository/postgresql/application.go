package postgresql

import (
	"context"
	"errors"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/application"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type applicationRepositoryImpl struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.Repository {
	return &applicationRepositoryImpl{db: db}
}

const applicationColumns = `id, name, category, description, admin_emails, created_at, created_by`

func scanApplication(row pgx.Row) (application.Application, error) {
	var app application.Application
	err := row.Scan(
		&app.ID,
		&app.Name,
		&app.Category,
		&app.Description,
		&app.AdminEmails,
		&app.CreatedAt,
		&app.CreatedBy,
	)
	return app, err
}

func (r *applicationRepositoryImpl) List(ctx context.Context) ([]application.Application, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepositoryImpl) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	app, err := scanApplication(q.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, err
}

func (r *applicationRepositoryImpl) Create(ctx context.Context, app application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	emails := app.AdminEmails
	if emails == nil {
		emails = []string{}
	}
	query := `
		INSERT INTO applications (id, name, category, description, admin_emails, created_at, created_by)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), $5)
		RETURNING ` + applicationColumns
	return scanApplication(q.QueryRow(ctx, query,
		app.Name, app.Category, app.Description, emails, app.CreatedBy))
}

func (r *applicationRepositoryImpl) Update(ctx context.Context, update application.UpdateApplicationRequest) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	var emails []string
	if update.AdminEmails != nil {
		emails = *update.AdminEmails
	}
	query := `
		UPDATE applications SET
			name         = COALESCE($2, name),
			category     = COALESCE($3, category),
			description  = COALESCE($4, description),
			admin_emails = CASE WHEN $5::boolean THEN $6::text[] ELSE admin_emails END
		WHERE id = $1
		RETURNING ` + applicationColumns
	app, err := scanApplication(q.QueryRow(ctx, query,
		update.ID, update.Name, update.Category, update.Description,
		update.AdminEmails != nil, emails))
	if errors.Is(err, pgx.ErrNoRows) {
		return application.Application{}, application.ErrApplicationNotFound
	}
	return app, err
}

func (r *applicationRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return application.ErrApplicationNotFound
	}
	return nil
}
