package shift

import (
	"context"
	"time"
)

// ShiftService defines business logic for shifts, assignments and rotation
type ShiftService interface {
	CreateShift(ctx context.Context, req CreateShiftRequest) (Shift, error)
	GetShift(ctx context.Context, id string) (Shift, error)
	ListShifts(ctx context.Context) ([]Shift, error)
	UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) (Shift, error)
	DeleteShift(ctx context.Context, id string) error

	// CreateAssignment creates an assignment and materializes its user
	// shifts. A PartialMaterializationError reports skipped employees
	// alongside a successful result.
	CreateAssignment(ctx context.Context, req CreateAssignmentRequest) (Assignment, error)
	GetAssignment(ctx context.Context, id string) (Assignment, error)
	ListAssignments(ctx context.Context) ([]Assignment, error)
	UpdateAssignment(ctx context.Context, id string, req UpdateAssignmentRequest) (Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error

	// ListMyShifts retrieves the authenticated employee's user shifts
	ListMyShifts(ctx context.Context) ([]UserShift, error)

	// GetCurrentShift resolves the authenticated employee's shift right now
	GetCurrentShift(ctx context.Context) (UserShift, error)

	// ListShiftUsers retrieves active user shifts on a shift (admin/manager)
	ListShiftUsers(ctx context.Context, shiftID string) ([]UserShift, error)

	// RunDueRotations advances every auto-rotating assignment that is due on
	// the given day. Used by the daily cron job and the admin trigger.
	RunDueRotations(ctx context.Context, today time.Time) (RotationReport, error)
}
