package notion

import (
	"context"
	"errors"
	"strings"

	"github.com/aryamhrt/internal-access-management-tools/internal/domain/user"
)

type userRepositoryImpl struct {
	client     *Client
	databaseID string
}

func NewUserRepository(client *Client, databaseID string) user.Repository {
	return &userRepositoryImpl{client: client, databaseID: databaseID}
}

func userFromPage(page Page) user.User {
	return user.User{
		ID:           page.ID,
		Name:         page.title("Name"),
		Email:        page.email("Email"),
		Role:         user.Role(page.selectName("Role", string(user.RoleEmployee))),
		Status:       user.Status(page.selectName("Status", string(user.StatusActive))),
		JoinDate:     page.date("Join Date"),
		OffboardDate: page.datePtr("Offboard Date"),
		InvitedBy:    page.textPtr("Invited By"),
		CreatedAt:    page.CreatedTime,
	}
}

func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	pages, err := r.client.QueryDatabase(ctx, r.databaseID)
	if err != nil {
		return nil, err
	}

	users := make([]user.User, 0, len(pages))
	for _, page := range pages {
		if page.Archived {
			continue
		}
		users = append(users, userFromPage(page))
	}
	return users, nil
}

func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	page, err := r.client.GetPage(ctx, id)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	if page.Archived {
		return user.User{}, user.ErrUserNotFound
	}
	return userFromPage(page), nil
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
	props := Properties{
		"Name":      titleProp(u.Name),
		"Email":     emailProp(u.Email),
		"Role":      selectProp(string(u.Role)),
		"Status":    selectProp(string(u.Status)),
		"Join Date": dateProp(u.JoinDate),
	}
	if u.InvitedBy != nil {
		props["Invited By"] = textProp(*u.InvitedBy)
	}

	page, err := r.client.CreatePage(ctx, r.databaseID, props)
	if err != nil {
		return user.User{}, err
	}
	return userFromPage(page), nil
}

func (r *userRepositoryImpl) Update(ctx context.Context, update user.UpdateUserRequest) (user.User, error) {
	props := Properties{}
	if update.Name != nil {
		props["Name"] = titleProp(*update.Name)
	}
	if update.Role != nil {
		props["Role"] = selectProp(*update.Role)
	}
	if update.Status != nil {
		props["Status"] = selectProp(*update.Status)
	}
	if update.OffboardDate != nil {
		props["Offboard Date"] = dateProp(*update.OffboardDate)
	}
	if update.InvitedBy != nil {
		props["Invited By"] = textProp(*update.InvitedBy)
	}

	page, err := r.client.UpdatePage(ctx, update.ID, props)
	if err != nil {
		if errors.Is(err, ErrPageNotFound) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return userFromPage(page), nil
}
