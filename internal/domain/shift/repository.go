package shift

import (
	"context"
	"time"
)

// ShiftRepository defines data access for shifts.
// All methods include companyID parameter to prevent cross-company data access.
type ShiftRepository interface {
	Create(ctx context.Context, s Shift) (Shift, error)
	GetByID(ctx context.Context, id string, companyID string) (Shift, error)

	// ListByCompany returns the company's shifts in creation order, which is
	// the rotation order.
	ListByCompany(ctx context.Context, companyID string) ([]Shift, error)

	Update(ctx context.Context, s Shift) error
	Delete(ctx context.Context, id string, companyID string) error
}

// AssignmentRepository defines data access for shift assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string, companyID string) (Assignment, error)
	List(ctx context.Context, companyID string) ([]Assignment, error)
	Update(ctx context.Context, a Assignment) error
	Delete(ctx context.Context, id string, companyID string) error

	// ListAutoRotating returns all auto-rotating assignments across
	// companies whose date range covers the given day. The rotation driver
	// decides per assignment whether rotation is due.
	ListAutoRotating(ctx context.Context, day time.Time) ([]Assignment, error)
}

// UserShiftRepository defines data access for materialized user shifts.
type UserShiftRepository interface {
	Create(ctx context.Context, us UserShift) (UserShift, error)

	// ListActiveByEmployee returns the employee's active user shifts whose
	// date range covers the given day, with the Shift joined in.
	ListActiveByEmployee(ctx context.Context, employeeID string, day time.Time, companyID string) ([]UserShift, error)

	// ListByEmployee returns all user shifts of an employee, newest first.
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]UserShift, error)

	// ListActiveByAssignment returns the assignment's active user shifts.
	ListActiveByAssignment(ctx context.Context, assignmentID string, companyID string) ([]UserShift, error)

	// ListActiveByShift returns active user shifts on a shift with employee
	// names joined in.
	ListActiveByShift(ctx context.Context, shiftID string, companyID string) ([]UserShift, error)

	// DeactivateByAssignment closes the assignment's active user shifts,
	// stamping endDate and clearing is_active.
	DeactivateByAssignment(ctx context.Context, assignmentID string, endDate time.Time, companyID string) error

	// DeactivateByEmployee closes all of the employee's active user shifts,
	// used when an employee is deactivated.
	DeactivateByEmployee(ctx context.Context, employeeID string, endDate time.Time, companyID string) error
}
