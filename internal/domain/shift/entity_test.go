package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekdays_Contains(t *testing.T) {
	assert.True(t, Monday.Contains(time.Monday))
	assert.False(t, Monday.Contains(time.Sunday))
	assert.False(t, Monday.Contains(time.Tuesday))

	assert.True(t, Sunday.Contains(time.Sunday))
	assert.False(t, Sunday.Contains(time.Saturday))

	weekdays := Monday | Tuesday | Wednesday | Thursday | Friday
	assert.True(t, weekdays.Contains(time.Friday))
	assert.False(t, weekdays.Contains(time.Saturday))
	assert.False(t, weekdays.Contains(time.Sunday))

	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.True(t, AllWeekdays.Contains(d))
	}
}

func TestWeekdaysFromNames(t *testing.T) {
	assert.Equal(t, Monday|Wednesday, WeekdaysFromNames([]string{"monday", "wednesday"}))
	assert.Equal(t, AllWeekdays, WeekdaysFromNames([]string{
		"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	}))
	// Unknown names contribute nothing; Validate reports them.
	assert.Equal(t, Weekdays(0), WeekdaysFromNames([]string{"funday"}))
}

func TestWeekdays_Names(t *testing.T) {
	assert.Equal(t, []string{"monday", "friday"}, (Monday | Friday).Names())
	assert.Nil(t, Weekdays(0).Names())
}

func TestShift_WindowContains_DayShift(t *testing.T) {
	s := Shift{StartMinutes: 9 * 60, EndMinutes: 17 * 60}

	assert.False(t, s.IsOvernight())
	assert.True(t, s.WindowContains(9*60))  // inclusive start
	assert.True(t, s.WindowContains(17*60)) // inclusive end
	assert.True(t, s.WindowContains(12*60))
	assert.False(t, s.WindowContains(9*60-1))
	assert.False(t, s.WindowContains(17*60+1))
}

func TestShift_WindowContains_Overnight(t *testing.T) {
	s := Shift{StartMinutes: 22 * 60, EndMinutes: 6 * 60}

	assert.True(t, s.IsOvernight())
	assert.True(t, s.WindowContains(23*60))
	assert.True(t, s.WindowContains(0))
	assert.True(t, s.WindowContains(5*60))
	assert.True(t, s.WindowContains(22*60)) // inclusive start
	assert.True(t, s.WindowContains(6*60))  // inclusive end
	assert.False(t, s.WindowContains(12*60))
	assert.False(t, s.WindowContains(6*60+1))
}

func TestShift_DurationMinutes(t *testing.T) {
	day := Shift{StartMinutes: 9 * 60, EndMinutes: 17 * 60}
	assert.Equal(t, 8*60, day.DurationMinutes())

	overnight := Shift{StartMinutes: 22 * 60, EndMinutes: 6 * 60}
	assert.Equal(t, 8*60, overnight.DurationMinutes())
}

func TestAssignment_Covers(t *testing.T) {
	end := date(2026, time.March, 31)
	a := Assignment{StartDate: date(2026, time.March, 1), EndDate: &end}

	assert.False(t, a.Covers(date(2026, time.February, 28)))
	assert.True(t, a.Covers(date(2026, time.March, 1)))
	assert.True(t, a.Covers(date(2026, time.March, 15)))
	assert.True(t, a.Covers(date(2026, time.March, 31)))
	assert.False(t, a.Covers(date(2026, time.April, 1)))

	openEnded := Assignment{StartDate: date(2026, time.March, 1)}
	assert.True(t, openEnded.Covers(date(2030, time.January, 1)))
}

func TestAssignment_RotationDue(t *testing.T) {
	today := date(2026, time.August, 30)

	manual := Assignment{AutoRotate: false}
	assert.False(t, manual.RotationDue(today))

	neverRotated := Assignment{AutoRotate: true, RotationDays: 15}
	assert.True(t, neverRotated.RotationDue(today))

	fifteenAgo := date(2026, time.August, 15)
	due := Assignment{AutoRotate: true, RotationDays: 15, LastRotationDate: &fifteenAgo}
	assert.True(t, due.RotationDue(today))

	fourteenAgo := date(2026, time.August, 16)
	notDue := Assignment{AutoRotate: true, RotationDays: 15, LastRotationDate: &fourteenAgo}
	assert.False(t, notDue.RotationDue(today))
}

func userShiftOn(s *Shift, start time.Time, end *time.Time) UserShift {
	return UserShift{StartDate: start, EndDate: end, IsActive: true, Shift: s}
}

func TestConflicts(t *testing.T) {
	morning := &Shift{Name: "Morning", StartMinutes: 6 * 60, EndMinutes: 14 * 60, Weekdays: AllWeekdays}
	afternoon := &Shift{Name: "Afternoon", StartMinutes: 14*60 + 30, EndMinutes: 22 * 60, Weekdays: AllWeekdays}
	overlapping := &Shift{Name: "Overlap", StartMinutes: 12 * 60, EndMinutes: 20 * 60, Weekdays: AllWeekdays}
	night := &Shift{Name: "Night", StartMinutes: 22 * 60, EndMinutes: 6 * 60, Weekdays: AllWeekdays}

	start := date(2026, time.March, 1)

	t.Run("overlapping windows on overlapping dates", func(t *testing.T) {
		a := userShiftOn(morning, start, nil)
		b := userShiftOn(overlapping, start, nil)
		assert.True(t, Conflicts(a, b))
		assert.True(t, Conflicts(b, a))
	})

	t.Run("disjoint windows do not conflict", func(t *testing.T) {
		a := userShiftOn(morning, start, nil)
		b := userShiftOn(afternoon, start, nil)
		assert.False(t, Conflicts(a, b))
	})

	t.Run("disjoint date ranges do not conflict", func(t *testing.T) {
		aEnd := date(2026, time.March, 10)
		a := userShiftOn(morning, start, &aEnd)
		b := userShiftOn(overlapping, date(2026, time.March, 11), nil)
		assert.False(t, Conflicts(a, b))
	})

	t.Run("disjoint weekdays do not conflict", func(t *testing.T) {
		weekday := &Shift{StartMinutes: 9 * 60, EndMinutes: 17 * 60, Weekdays: Monday | Tuesday}
		weekend := &Shift{StartMinutes: 9 * 60, EndMinutes: 17 * 60, Weekdays: Saturday | Sunday}
		a := userShiftOn(weekday, start, nil)
		b := userShiftOn(weekend, start, nil)
		assert.False(t, Conflicts(a, b))
	})

	t.Run("overnight tail overlaps an early shift", func(t *testing.T) {
		early := &Shift{Name: "Early", StartMinutes: 5 * 60, EndMinutes: 9 * 60, Weekdays: AllWeekdays}
		a := userShiftOn(night, start, nil)
		b := userShiftOn(early, start, nil)
		assert.True(t, Conflicts(a, b))
		assert.True(t, Conflicts(b, a))
	})

	t.Run("missing joined shift never conflicts", func(t *testing.T) {
		a := userShiftOn(nil, start, nil)
		b := userShiftOn(morning, start, nil)
		assert.False(t, Conflicts(a, b))
	})
}

func TestDateOnly(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Jakarta")
	ts := time.Date(2026, time.August, 30, 23, 45, 12, 999, loc)

	d := DateOnly(ts)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.August, d.Month())
	assert.Equal(t, 30, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, loc, d.Location())
}
