package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
)

type userRepositoryImpl struct {
	client *Client
}

func NewUserRepository(client *Client) user.Repository {
	return &userRepositoryImpl{client: client}
}

type userRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	Status       string `json:"status"`
	JoinDate     string `json:"join_date"`
	OffboardDate string `json:"offboard_date,omitempty"`
	InvitedBy    string `json:"invited_by,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (row userRow) toDomain() user.User {
	role := user.Role(row.Role)
	if role == "" {
		role = user.RoleEmployee
	}
	status := user.Status(row.Status)
	if status == "" {
		status = user.StatusActive
	}
	return user.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		Role:         role,
		Status:       status,
		JoinDate:     parseDate(row.JoinDate),
		OffboardDate: parseDatePtr(row.OffboardDate),
		InvitedBy:    strPtr(row.InvitedBy),
		CreatedAt:    parseDate(row.CreatedAt),
	}
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	data, err := r.client.Get(ctx, "users", nil)
	if err != nil {
		return nil, err
	}

	var rows []userRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]user.User, 0, len(rows))
	for _, row := range rows {
		if row.ID == "" {
			continue
		}
		users = append(users, row.toDomain())
	}
	return users, nil
}

// GetByID scans the full sheet client-side; the script exposes no
// row-by-id read.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return user.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	params := url.Values{}
	params.Set("name", u.Name)
	params.Set("email", u.Email)
	params.Set("role", string(u.Role))
	if u.InvitedBy != nil {
		params.Set("invited_by", *u.InvitedBy)
	}

	data, err := r.client.Post(ctx, "users", params)
	if err != nil {
		return user.User{}, err
	}

	var row userRow
	if err := json.Unmarshal(data, &row); err != nil {
		return user.User{}, fmt.Errorf("decode created user: %w", err)
	}
	return row.toDomain(), nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, update user.UpdateUserRequest) (user.User, error) {
	params := url.Values{}
	params.Set("id", update.ID)
	if update.Name != nil {
		params.Set("name", *update.Name)
	}
	if update.Role != nil {
		params.Set("role", *update.Role)
	}
	if update.Status != nil {
		params.Set("status", *update.Status)
	}
	if update.OffboardDate != nil {
		params.Set("offboard_date", formatDatePtr(update.OffboardDate))
	}
	if update.InvitedBy != nil {
		params.Set("invited_by", *update.InvitedBy)
	}

	data, err := r.client.Post(ctx, "users/update", params)
	if err != nil {
		if IsNotFound(err) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	var row userRow
	if err := json.Unmarshal(data, &row); err != nil {
		return user.User{}, fmt.Errorf("decode updated user: %w", err)
	}
	return row.toDomain(), nil
}
