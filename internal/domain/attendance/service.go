package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Mark resolves one attendance invocation end to end: geofence check,
	// face verification, shift detection, status classification and the
	// check-in/check-out session toggle.
	Mark(ctx context.Context, req MarkRequest) (MarkResult, error)

	// GetLast retrieves the authenticated employee's most recent record
	GetLast(ctx context.Context) (Record, error)

	// GetMyHistory retrieves records for the authenticated employee
	GetMyHistory(ctx context.Context, filter HistoryFilter) ([]Record, int64, error)

	// List retrieves company-wide records with filters (admin/manager)
	List(ctx context.Context, filter HistoryFilter) ([]Record, int64, error)

	// GetMyLogs retrieves recent audit logs for the authenticated employee
	GetMyLogs(ctx context.Context, limit int) ([]Log, error)
}
