package model

type UserRole string

const (
	RoleAdmin    UserRole = "Admin"
	RoleManager  UserRole = "Manager"
	RoleEmployee UserRole = "Employee"
)

// User is the current-session identity record. Login is a stub: any email is
// accepted and no credential store backs it, so this must never be treated as
// a security boundary.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email" validate:"required,email"`
	Role  UserRole `json:"role"`
}
