package application

import "time"

// Application is a manageable resource employees can request access to.
// AdminEmails carries per-application approval authority for app_admin
// users; the persistence encoding (comma-joined string, multi-select)
// never leaks past the repository layer.
type Application struct {
	ID          string
	Name        string
	Category    string
	Description string
	AdminEmails []string
	CreatedAt   time.Time
	CreatedBy   string
}
