package shift

import (
	"time"
)

// minutesPerDay is the time-of-day wrap boundary for overnight windows.
const minutesPerDay = 24 * 60

// DefaultRotationDays is used when an assignment does not set its own cadence.
const DefaultRotationDays = 15

// Weekdays is a bitmask of active days, Monday = bit 0 .. Sunday = bit 6.
type Weekdays uint8

const (
	Monday Weekdays = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	AllWeekdays = Monday | Tuesday | Wednesday | Thursday | Friday | Saturday | Sunday
)

// Contains reports whether the given calendar weekday is in the set.
func (w Weekdays) Contains(day time.Weekday) bool {
	// time.Weekday counts Sunday=0; the mask counts Monday=bit 0.
	shift := (int(day) + 6) % 7
	return w&(1<<shift) != 0
}

// Names returns the active day names in Monday-first order.
func (w Weekdays) Names() []string {
	all := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
	var names []string
	for i, name := range all {
		if w&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return names
}

// Shift is a company-scoped named daily time window. Start and End are
// minutes since local midnight; End < Start means the window crosses
// midnight. Rotation order across a company's shifts is creation order,
// which UUIDv7 ids preserve.
type Shift struct {
	ID           string
	CompanyID    string
	Name         string
	StartMinutes int
	EndMinutes   int
	Weekdays     Weekdays
	GraceMinutes *int // overrides the global grace period when set
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsOvernight reports whether the window crosses midnight.
func (s *Shift) IsOvernight() bool {
	return s.EndMinutes < s.StartMinutes
}

// WindowContains reports whether the minute-of-day falls inside the window,
// inclusive at both ends. Overnight windows contain minutes at or after
// Start, or at or before End.
func (s *Shift) WindowContains(minuteOfDay int) bool {
	if s.IsOvernight() {
		return minuteOfDay >= s.StartMinutes || minuteOfDay <= s.EndMinutes
	}
	return minuteOfDay >= s.StartMinutes && minuteOfDay <= s.EndMinutes
}

// DurationMinutes returns the window length, overnight-aware.
func (s *Shift) DurationMinutes() int {
	if s.IsOvernight() {
		return minutesPerDay - s.StartMinutes + s.EndMinutes
	}
	return s.EndMinutes - s.StartMinutes
}

type TargetKind string

const (
	TargetDepartment TargetKind = "department"
	TargetTeam       TargetKind = "team"
	TargetIndividual TargetKind = "individual"
)

// Target names the population an assignment covers: exactly one department,
// team, or individual employee.
type Target struct {
	Kind TargetKind
	ID   string
}

// Assignment binds a shift to a target population over a date range.
// Auto-rotating assignments are advanced circularly through the company's
// shifts every RotationDays by the rotation driver.
type Assignment struct {
	ID               string
	ShiftID          string
	CompanyID        string
	Target           Target
	StartDate        time.Time
	EndDate          *time.Time // nil = open-ended
	AutoRotate       bool
	RotationDays     int
	LastRotationDate *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Covers reports whether the assignment's date range contains the given day.
func (a *Assignment) Covers(day time.Time) bool {
	d := DateOnly(day)
	if d.Before(DateOnly(a.StartDate)) {
		return false
	}
	if a.EndDate != nil && d.After(DateOnly(*a.EndDate)) {
		return false
	}
	return true
}

// RotationDue reports whether the assignment should rotate on the given day.
// Never-rotated assignments are due immediately.
func (a *Assignment) RotationDue(day time.Time) bool {
	if !a.AutoRotate {
		return false
	}
	if a.LastRotationDate == nil {
		return true
	}
	elapsed := DateOnly(day).Sub(DateOnly(*a.LastRotationDate))
	return elapsed >= time.Duration(a.RotationDays)*24*time.Hour
}

// UserShift is the materialized per-employee copy of an assignment, with a
// snapshot of the employee's org placement taken at materialization time.
type UserShift struct {
	ID           string
	EmployeeID   string
	ShiftID      string
	CompanyID    string
	AssignmentID *string

	// Snapshots at materialization time
	DepartmentID    *string
	PositionID      *string
	PositionLevelID *string
	Role            string

	StartDate time.Time
	EndDate   *time.Time
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	Shift        *Shift
	EmployeeName *string
}

// DateOnly truncates a time to its calendar date, keeping the location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// datesOverlap reports whether two date ranges intersect; nil end = open.
func datesOverlap(aStart time.Time, aEnd *time.Time, bStart time.Time, bEnd *time.Time) bool {
	if aEnd != nil && DateOnly(*aEnd).Before(DateOnly(bStart)) {
		return false
	}
	if bEnd != nil && DateOnly(*bEnd).Before(DateOnly(aStart)) {
		return false
	}
	return true
}

// windowsOverlap reports whether two time-of-day windows intersect when both
// are normalized to minutes past midnight, overnight ends pushed past 1440.
func windowsOverlap(a, b *Shift) bool {
	aStart, aEnd := a.StartMinutes, a.EndMinutes
	if a.IsOvernight() {
		aEnd += minutesPerDay
	}
	bStart, bEnd := b.StartMinutes, b.EndMinutes
	if b.IsOvernight() {
		bEnd += minutesPerDay
	}

	if aStart <= bEnd && bStart <= aEnd {
		return true
	}
	// An overnight window also occupies the early minutes of the next day,
	// so compare it shifted back by a day against the other window.
	if a.IsOvernight() && aStart-minutesPerDay <= bEnd && bStart <= aEnd-minutesPerDay {
		return true
	}
	if b.IsOvernight() && bStart-minutesPerDay <= aEnd && aStart <= bEnd-minutesPerDay {
		return true
	}
	return false
}

// Conflicts reports whether two user shifts for the same employee collide:
// their date ranges intersect and their shift windows overlap in time of day.
// Both must carry their joined Shift.
func Conflicts(a, b UserShift) bool {
	if a.Shift == nil || b.Shift == nil {
		return false
	}
	if !datesOverlap(a.StartDate, a.EndDate, b.StartDate, b.EndDate) {
		return false
	}
	if a.Shift.Weekdays&b.Shift.Weekdays == 0 {
		return false
	}
	return windowsOverlap(a.Shift, b.Shift)
}
