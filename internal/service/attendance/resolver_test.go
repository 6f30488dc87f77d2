package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/workforce-backend-go/internal/domain/attendance"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
)

// localTime builds a Monday timestamp at the given clock time.
// 2026-01-05 is a Monday.
func localTime(hour, minute int) time.Time {
	return time.Date(2026, time.January, 5, hour, minute, 0, 0, time.UTC)
}

func dayShift(name string, startHour, endHour int) *shift.Shift {
	return &shift.Shift{
		ID:           name,
		Name:         name,
		StartMinutes: startHour * 60,
		EndMinutes:   endHour * 60,
		Weekdays:     shift.AllWeekdays,
	}
}

func activeUserShift(s *shift.Shift) shift.UserShift {
	return shift.UserShift{ShiftID: s.ID, IsActive: true, Shift: s}
}

func TestVerifyLocation_PrimaryWins(t *testing.T) {
	primary := &geofence{Name: "HQ", Latitude: -6.2, Longitude: 106.816666, RadiusMeters: 100}
	fallbacks := []geofence{
		{Name: "Branch", Latitude: -6.3, Longitude: 106.9, RadiusMeters: 100},
	}

	out := verifyLocation(-6.2, 106.816666, primary, fallbacks)

	assert.True(t, out.Verified)
	require.NotNil(t, out.Name)
	assert.Equal(t, "HQ", *out.Name)
	require.NotNil(t, out.MinDistance)
	assert.Equal(t, 0.0, *out.MinDistance)
}

func TestVerifyLocation_FallbackWhenOutsidePrimary(t *testing.T) {
	primary := &geofence{Name: "HQ", Latitude: -6.2, Longitude: 106.816666, RadiusMeters: 100}
	fallbacks := []geofence{
		{Name: "HQ", Latitude: -6.2, Longitude: 106.816666, RadiusMeters: 100}, // duplicate of primary, skipped
		{Name: "Branch", Latitude: -6.3, Longitude: 106.9, RadiusMeters: 100},
	}

	out := verifyLocation(-6.3, 106.9, primary, fallbacks)

	assert.True(t, out.Verified)
	require.NotNil(t, out.Name)
	assert.Equal(t, "Branch", *out.Name)
}

func TestVerifyLocation_NowhereInside(t *testing.T) {
	primary := &geofence{Name: "HQ", Latitude: -6.2, Longitude: 106.816666, RadiusMeters: 100}
	fallbacks := []geofence{
		{Name: "Branch", Latitude: -6.3, Longitude: 106.9, RadiusMeters: 100},
	}

	out := verifyLocation(-7.0, 110.0, primary, fallbacks)

	assert.False(t, out.Verified)
	assert.Nil(t, out.Name)
	// The smallest distance is still reported for diagnostics.
	require.NotNil(t, out.MinDistance)
	assert.Greater(t, *out.MinDistance, 100.0)
}

func TestVerifyLocation_NoPrimary(t *testing.T) {
	fallbacks := []geofence{
		{Name: "Branch", Latitude: -6.3, Longitude: 106.9, RadiusMeters: 100},
	}

	out := verifyLocation(-6.3, 106.9, nil, fallbacks)

	assert.True(t, out.Verified)
	require.NotNil(t, out.Name)
	assert.Equal(t, "Branch", *out.Name)
}

func TestResolveShift_InWindow(t *testing.T) {
	shifts := []shift.UserShift{activeUserShift(dayShift("Morning", 9, 17))}

	res := resolveShift(shifts, localTime(10, 0))

	assert.Equal(t, relationInWindow, res.Relation)
	require.NotNil(t, res.UserShift)
	assert.Equal(t, "Morning", res.UserShift.Shift.Name)
}

func TestResolveShift_EarliestInWindowWins(t *testing.T) {
	shifts := []shift.UserShift{
		activeUserShift(dayShift("Late", 9, 17)),
		activeUserShift(dayShift("Early", 8, 16)),
	}

	res := resolveShift(shifts, localTime(10, 0))

	assert.Equal(t, relationInWindow, res.Relation)
	assert.Equal(t, "Early", res.UserShift.Shift.Name)
}

func TestResolveShift_NearestFutureWins(t *testing.T) {
	shifts := []shift.UserShift{
		activeUserShift(dayShift("Afternoon", 12, 20)),
		activeUserShift(dayShift("Morning", 9, 17)),
	}

	res := resolveShift(shifts, localTime(7, 0))

	assert.Equal(t, relationFuture, res.Relation)
	assert.Equal(t, "Morning", res.UserShift.Shift.Name)
}

func TestResolveShift_MostRecentlyEndedPastWins(t *testing.T) {
	shifts := []shift.UserShift{
		activeUserShift(dayShift("Early", 6, 12)),
		activeUserShift(dayShift("Day", 9, 17)),
	}

	res := resolveShift(shifts, localTime(21, 30))

	assert.Equal(t, relationPast, res.Relation)
	assert.Equal(t, "Day", res.UserShift.Shift.Name)
}

func TestResolveShift_WeekdayFiltered(t *testing.T) {
	tuesdayOnly := dayShift("Tuesday", 9, 17)
	tuesdayOnly.Weekdays = shift.Tuesday

	res := resolveShift([]shift.UserShift{activeUserShift(tuesdayOnly)}, localTime(10, 0))

	assert.Equal(t, relationNone, res.Relation)
	assert.Nil(t, res.UserShift)
}

func TestResolveShift_Overnight(t *testing.T) {
	night := &shift.Shift{
		ID:           "Night",
		Name:         "Night",
		StartMinutes: 22 * 60,
		EndMinutes:   6 * 60,
		Weekdays:     shift.AllWeekdays,
	}
	shifts := []shift.UserShift{activeUserShift(night)}

	res := resolveShift(shifts, localTime(23, 0))
	assert.Equal(t, relationInWindow, res.Relation)

	res = resolveShift(shifts, localTime(5, 0))
	assert.Equal(t, relationInWindow, res.Relation)

	// At noon the night shift has not started yet today.
	res = resolveShift(shifts, localTime(12, 0))
	assert.Equal(t, relationFuture, res.Relation)
}

func TestResolveShift_MissingJoinIgnored(t *testing.T) {
	res := resolveShift([]shift.UserShift{{ShiftID: "orphan", IsActive: true}}, localTime(10, 0))
	assert.Equal(t, relationNone, res.Relation)
}

func TestMinutesSinceShiftStart(t *testing.T) {
	day := dayShift("Day", 9, 17)
	assert.Equal(t, 20, minutesSinceShiftStart(day, 9*60+20))
	assert.Equal(t, 0, minutesSinceShiftStart(day, 9*60))

	night := &shift.Shift{StartMinutes: 22 * 60, EndMinutes: 6 * 60}
	// 01:00 is three hours past a 22:00 start.
	assert.Equal(t, 180, minutesSinceShiftStart(night, 60))
}

func TestClassify_NoShift(t *testing.T) {
	status, minutesLate := classify(shiftResolution{Relation: relationNone}, 10*60, 15, false)
	assert.Equal(t, attendance.StatusPresent, status)
	assert.Nil(t, minutesLate)
}

func TestClassify_FutureShift(t *testing.T) {
	us := activeUserShift(dayShift("Day", 9, 17))
	status, minutesLate := classify(shiftResolution{UserShift: &us, Relation: relationFuture}, 7*60, 15, false)
	assert.Equal(t, attendance.StatusPresent, status)
	assert.Nil(t, minutesLate)
}

func TestClassify_InWindowWithinGrace(t *testing.T) {
	us := activeUserShift(dayShift("Day", 9, 17))
	status, minutesLate := classify(shiftResolution{UserShift: &us, Relation: relationInWindow}, 9*60+10, 15, false)
	assert.Equal(t, attendance.StatusPresent, status)
	assert.Nil(t, minutesLate)
}

func TestClassify_InWindowPastGrace(t *testing.T) {
	us := activeUserShift(dayShift("Day", 9, 17))
	status, minutesLate := classify(shiftResolution{UserShift: &us, Relation: relationInWindow}, 9*60+20, 15, false)
	assert.Equal(t, attendance.StatusLate, status)
	require.NotNil(t, minutesLate)
	assert.Equal(t, 20, *minutesLate)
}

func TestClassify_ShiftGraceOverridesDefault(t *testing.T) {
	grace := 30
	s := dayShift("Day", 9, 17)
	s.GraceMinutes = &grace
	us := activeUserShift(s)

	status, minutesLate := classify(shiftResolution{UserShift: &us, Relation: relationInWindow}, 9*60+20, 15, false)
	assert.Equal(t, attendance.StatusPresent, status)
	assert.Nil(t, minutesLate)
}

func TestClassify_PastShiftAlreadyWorked(t *testing.T) {
	us := activeUserShift(dayShift("Day", 9, 17))
	status, minutesLate := classify(shiftResolution{UserShift: &us, Relation: relationPast}, 18*60, 15, true)
	assert.Equal(t, attendance.StatusOvertime, status)
	assert.Nil(t, minutesLate)
}

func TestClassify_PastShiftNotWorked(t *testing.T) {
	us := activeUserShift(dayShift("Day", 9, 17))
	status, minutesLate := classify(shiftResolution{UserShift: &us, Relation: relationPast}, 18*60, 15, false)
	assert.Equal(t, attendance.StatusLate, status)
	require.NotNil(t, minutesLate)
	assert.Equal(t, 9*60, *minutesLate)
}

func TestBuildMarkMessage(t *testing.T) {
	twenty := 20
	ten := 10

	assert.Equal(t, "Checked out successfully",
		buildMarkMessage(attendance.OutcomeCheckedOut, attendance.StatusPresent, nil, 15))

	assert.Equal(t, "Checked in successfully",
		buildMarkMessage(attendance.OutcomeCheckedIn, attendance.StatusPresent, nil, 15))

	assert.Equal(t, "Checked in late: 20 minutes after shift start (5 past the grace period)",
		buildMarkMessage(attendance.OutcomeCheckedIn, attendance.StatusLate, &twenty, 15))

	assert.Equal(t, "Checked in late: 10 minutes after shift start",
		buildMarkMessage(attendance.OutcomeCheckedIn, attendance.StatusLate, &ten, 15))

	assert.Equal(t, "Checked in late",
		buildMarkMessage(attendance.OutcomeCheckedIn, attendance.StatusLate, nil, 15))

	assert.Equal(t, "Checked in for overtime",
		buildMarkMessage(attendance.OutcomeCheckedIn, attendance.StatusOvertime, nil, 15))
}
