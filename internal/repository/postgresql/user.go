package postgresql

import (
	"context"
	"errors"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
	"github.com/aryamhrt/internal-access-management-tools/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, name, email, role, status, join_date, offboard_date, invited_by, created_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.Role,
		&u.Status,
		&u.JoinDate,
		&u.OffboardDate,
		&u.InvitedBy,
		&u.CreatedAt,
	)
	return u, err
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (id, name, email, role, status, join_date, invited_by, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW())
		RETURNING ` + userColumns
	return scanUser(q.QueryRow(ctx, query, u.Name, u.Email, u.Role, u.Status, u.JoinDate, u.InvitedBy))
}

func (r *userRepositoryImpl) Update(ctx context.Context, update user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			name          = COALESCE($2, name),
			role          = COALESCE($3, role),
			status        = COALESCE($4, status),
			offboard_date = COALESCE($5, offboard_date),
			invited_by    = COALESCE($6, invited_by)
		WHERE id = $1
		RETURNING ` + userColumns
	u, err := scanUser(q.QueryRow(ctx, query,
		update.ID, update.Name, update.Role, update.Status, update.OffboardDate, update.InvitedBy))
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrUserNotFound
	}
	return u, err
}
