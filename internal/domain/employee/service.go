package employee

import "context"

type EmployeeService interface {
	// Create provisions an employee together with their login account
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// Get retrieves an employee of the caller's company
	Get(ctx context.Context, id string) (Employee, error)

	// GetMyProfile retrieves the authenticated employee's own record
	GetMyProfile(ctx context.Context) (Employee, error)

	// List retrieves employees with filtering and pagination
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)

	// Update modifies an employee
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)

	// Deactivate soft-deletes an employee and ends their active shifts
	Deactivate(ctx context.Context, id string) error
}
