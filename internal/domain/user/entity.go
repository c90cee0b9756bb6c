package user

import (
	"strings"
	"time"
)

type Role string

const (
	RoleSuperAdmin Role = "super_admin" // Unrestricted authority over all entities
	RoleAppAdmin   Role = "app_admin"   // Can approve/reject for applications they administer
	RoleEmployee   Role = "employee"    // Regular employee, may request access for themselves
)

type Status string

const (
	StatusActive   Status = "active"
	StatusOffboard Status = "offboard"
)

type User struct {
	ID           string
	Name         string
	Email        string
	Role         Role
	Status       Status
	JoinDate     time.Time
	OffboardDate *time.Time
	InvitedBy    *string
	CreatedAt    time.Time
}

// IsSuperAdmin checks if user has unrestricted authority
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsAdmin checks if user is app admin or super admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAppAdmin || u.Role == RoleSuperAdmin
}

// IsActive checks if the user may authenticate
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// AdministersEmails reports whether the user's email appears in the given
// admin email list. Comparison is case-insensitive, consistent with the
// login email match.
func (u *User) AdministersEmails(adminEmails []string) bool {
	for _, e := range adminEmails {
		if strings.EqualFold(e, u.Email) {
			return true
		}
	}
	return false
}
