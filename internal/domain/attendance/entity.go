package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent  Status = "present"
	StatusAbsent   Status = "absent"
	StatusLate     Status = "late"
	StatusLeave    Status = "leave"
	StatusOvertime Status = "overtime"
)

// Record is one check-in session for an employee on a local date. An
// employee can have several records per day, but at most one open one
// (check_out still null).
type Record struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time // local calendar date

	CheckIn           time.Time
	CheckOut          *time.Time
	CheckInLatitude   float64
	CheckInLongitude  float64
	CheckOutLatitude  *float64
	CheckOutLongitude *float64

	ShiftID             *string
	Status              Status
	MinutesLate         *int
	WorkDurationMinutes *int

	LocationVerified     bool
	FaceVerified         bool
	BlinkDetected        bool
	VerifiedLocationName *string
	FaceImagePath        *string
	DeviceInfo           map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	EmployeeName *string
	ShiftName    *string
}

// IsOpen reports whether the session has not been checked out yet.
func (r *Record) IsOpen() bool {
	return r.CheckOut == nil
}

// Log is one immutable audit row per resolver invocation.
type Log struct {
	ID         string
	EmployeeID string
	CompanyID  string
	RecordID   *string
	Timestamp  time.Time

	Latitude  *float64
	Longitude *float64

	FaceVerified     bool
	LocationVerified bool
	BlinkDetected    bool
	DeviceInfo       map[string]any
	Message          string

	CreatedAt time.Time
}
