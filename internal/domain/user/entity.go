package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Company administrator - full access
	RoleManager  Role = "manager"  // Can manage shifts and attendance
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID              string
	CompanyID       *string
	Email           string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// DTO / Join
	EmployeeID *string
}

// IsAdmin checks if user is company administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if user is manager or administrator
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// CanManageCompany checks if user can manage company settings
func (u *User) CanManageCompany() bool {
	return u.IsAdmin()
}

// CanManageShifts checks if user can manage shifts and rotations
func (u *User) CanManageShifts() bool {
	return u.IsManager()
}
