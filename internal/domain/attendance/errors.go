package attendance

import "errors"

// Attendance domain errors
var (
	ErrMissingLocation = errors.New("latitude and longitude are required to mark attendance")
	ErrRecordNotFound  = errors.New("attendance record not found")
	ErrNoAttendanceYet = errors.New("no attendance recorded yet")
	ErrUnauthorized    = errors.New("unauthorized to access this attendance record")
)
