package user

import "time"

type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager" // Can approve time, tasks and leave
	RoleAdmin    Role = "admin"   // Manager rights plus user administration
)

// RoleLabels maps stored role tokens to display text. The stored token is
// the stable wire value; only the label may change.
var RoleLabels = map[Role]string{
	RoleEmployee: "Employee",
	RoleManager:  "Manager",
	RoleAdmin:    "Administrator",
}

type User struct {
	ID           string
	Username     string
	FullName     string
	Email        string
	Department   string
	Role         Role
	IsActive     bool
	PasswordHash string
	CreatedAt    time.Time
}

// IsManager checks if the user holds manager or admin rights.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanApprove checks if the user can approve time entries, tasks and leave.
func (u *User) CanApprove() bool {
	return u.IsManager()
}

// IsAdmin checks if the user can administer accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
