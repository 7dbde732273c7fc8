package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Sees the aggregated roster, manages users
	RoleEmployee Role = "employee" // Submits workload reports
)

type User struct {
	ID             string
	Username       string
	PasswordHash   string
	Role           Role
	DepartmentName string
	CreatedAt      time.Time
}

// IsManager checks if user is a manager
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsEmployee checks if user is a regular employee
func (u *User) IsEmployee() bool {
	return u.Role == RoleEmployee
}

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleManager || r == RoleEmployee
}
