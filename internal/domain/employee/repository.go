package employee

import "context"

// EmployeeRepository defines data access for employees.
// All methods include companyID parameter to prevent cross-company data access.
// Reads join department/position/level names as read-through projections.
type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter ListFilter, companyID string) ([]Employee, int64, error)
	Update(ctx context.Context, e Employee) error

	// Deactivate soft-deletes an employee; rows with attendance history
	// are never removed.
	Deactivate(ctx context.Context, id string, companyID string) error

	// ListActiveByDepartment retrieves active employees of a department,
	// used when materializing department-targeted shift assignments.
	ListActiveByDepartment(ctx context.Context, departmentID string, companyID string) ([]Employee, error)

	// ListActiveByTeam retrieves active employees of a team, used when
	// materializing team-targeted shift assignments.
	ListActiveByTeam(ctx context.Context, teamID string, companyID string) ([]Employee, error)
}
