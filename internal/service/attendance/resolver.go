package attendance

import (
	"fmt"
	"time"

	"github.com/worklens/workforce-backend-go/internal/domain/attendance"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/pkg/utils"
)

// geofence is one candidate fence during location verification.
type geofence struct {
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

type locationOutcome struct {
	Verified bool
	Name     *string
	// MinDistance is the smallest distance to any candidate fence center,
	// kept for diagnostics whether or not verification succeeded.
	MinDistance *float64
}

// verifyLocation checks the point against the primary fence first, then
// falls back to scanning the remaining fences; the first containing fence
// wins. The outcome is advisory and never blocks a mark.
func verifyLocation(lat, lon float64, primary *geofence, fallbacks []geofence) locationOutcome {
	var out locationOutcome

	track := func(d float64) {
		if out.MinDistance == nil || d < *out.MinDistance {
			out.MinDistance = &d
		}
	}

	if primary != nil {
		within, d := utils.WithinRadius(lat, lon, primary.Latitude, primary.Longitude, primary.RadiusMeters)
		track(d)
		if within {
			name := primary.Name
			out.Verified = true
			out.Name = &name
			return out
		}
	}

	for i := range fallbacks {
		f := &fallbacks[i]
		if primary != nil && f.Name == primary.Name {
			continue
		}
		within, d := utils.WithinRadius(lat, lon, f.Latitude, f.Longitude, f.RadiusMeters)
		track(d)
		if within {
			name := f.Name
			out.Verified = true
			out.Name = &name
			return out
		}
	}

	return out
}

type shiftRelation int

const (
	relationNone shiftRelation = iota
	relationInWindow
	relationFuture
	relationPast
)

type shiftResolution struct {
	UserShift *shift.UserShift
	Relation  shiftRelation
}

// resolveShift picks the shift a mark belongs to from the employee's active
// user shifts on the local day. In-window shifts win, earliest start first;
// otherwise the nearest future shift today; otherwise the most recently
// ended past shift. Shifts not scheduled for today's weekday are ignored.
func resolveShift(userShifts []shift.UserShift, nowLocal time.Time) shiftResolution {
	minute := nowLocal.Hour()*60 + nowLocal.Minute()
	weekday := nowLocal.Weekday()

	var inWindow, future, past []*shift.UserShift
	for i := range userShifts {
		us := &userShifts[i]
		if us.Shift == nil || !us.Shift.Weekdays.Contains(weekday) {
			continue
		}
		switch {
		case us.Shift.WindowContains(minute):
			inWindow = append(inWindow, us)
		case us.Shift.StartMinutes > minute:
			future = append(future, us)
		default:
			past = append(past, us)
		}
	}

	if len(inWindow) > 0 {
		best := inWindow[0]
		for _, us := range inWindow[1:] {
			if us.Shift.StartMinutes < best.Shift.StartMinutes {
				best = us
			}
		}
		return shiftResolution{UserShift: best, Relation: relationInWindow}
	}

	if len(future) > 0 {
		best := future[0]
		for _, us := range future[1:] {
			if us.Shift.StartMinutes < best.Shift.StartMinutes {
				best = us
			}
		}
		return shiftResolution{UserShift: best, Relation: relationFuture}
	}

	if len(past) > 0 {
		best := past[0]
		for _, us := range past[1:] {
			if us.Shift.EndMinutes > best.Shift.EndMinutes {
				best = us
			}
		}
		return shiftResolution{UserShift: best, Relation: relationPast}
	}

	return shiftResolution{Relation: relationNone}
}

// minutesSinceShiftStart measures how far past the shift start the mark is,
// wrapping across midnight for overnight windows.
func minutesSinceShiftStart(s *shift.Shift, minuteOfDay int) int {
	return ((minuteOfDay - s.StartMinutes) + 24*60) % (24 * 60)
}

// classify turns a shift resolution into a record status. workedShiftToday
// only matters for the past-shift branch: a second mark against a shift the
// employee already worked counts as overtime, a first one is just late.
func classify(res shiftResolution, minuteOfDay int, defaultGraceMinutes int, workedShiftToday bool) (attendance.Status, *int) {
	switch res.Relation {
	case relationNone, relationFuture:
		// No shift, or checking in early for an upcoming one.
		return attendance.StatusPresent, nil

	case relationInWindow:
		grace := defaultGraceMinutes
		if res.UserShift.Shift.GraceMinutes != nil {
			grace = *res.UserShift.Shift.GraceMinutes
		}
		since := minutesSinceShiftStart(res.UserShift.Shift, minuteOfDay)
		if since > grace {
			return attendance.StatusLate, &since
		}
		return attendance.StatusPresent, nil

	default: // relationPast
		if workedShiftToday {
			return attendance.StatusOvertime, nil
		}
		since := minutesSinceShiftStart(res.UserShift.Shift, minuteOfDay)
		return attendance.StatusLate, &since
	}
}

// buildMarkMessage words the outcome for the client, including how far past
// the grace period a late mark landed.
func buildMarkMessage(outcome attendance.MarkOutcome, status attendance.Status, minutesLate *int, graceMinutes int) string {
	if outcome == attendance.OutcomeCheckedOut {
		return "Checked out successfully"
	}

	switch status {
	case attendance.StatusLate:
		if minutesLate != nil {
			pastGrace := *minutesLate - graceMinutes
			if pastGrace > 0 {
				return fmt.Sprintf("Checked in late: %d minutes after shift start (%d past the grace period)", *minutesLate, pastGrace)
			}
			return fmt.Sprintf("Checked in late: %d minutes after shift start", *minutesLate)
		}
		return "Checked in late"
	case attendance.StatusOvertime:
		return "Checked in for overtime"
	default:
		return "Checked in successfully"
	}
}
