package attendance

import (
	"context"
	"time"
)

// RecordRepository defines data access for attendance records.
// All methods include companyID parameter to prevent cross-company data access.
type RecordRepository interface {
	Create(ctx context.Context, r Record) (Record, error)
	Update(ctx context.Context, r Record) error
	GetByID(ctx context.Context, id string, companyID string) (Record, error)

	// GetOpenSession returns the employee's open record (check_out null) on
	// the local date, or ErrRecordNotFound.
	GetOpenSession(ctx context.Context, employeeID string, date time.Time, companyID string) (Record, error)

	// GetLast returns the employee's most recent record by check-in time.
	GetLast(ctx context.Context, employeeID string, companyID string) (Record, error)

	// List returns records matching the filter with employee and shift
	// names joined in, plus the total count.
	List(ctx context.Context, filter HistoryFilter, companyID string) ([]Record, int64, error)

	// HasWorkedShift reports whether the employee already has a non-leave
	// record for the shift on the local date. Drives the overtime branch.
	HasWorkedShift(ctx context.Context, employeeID string, shiftID string, date time.Time, companyID string) (bool, error)
}

// LogRepository defines data access for attendance audit logs.
type LogRepository interface {
	Create(ctx context.Context, l Log) (Log, error)
	ListByEmployee(ctx context.Context, employeeID string, companyID string, limit int) ([]Log, error)
}
