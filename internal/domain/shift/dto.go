package shift

import (
	"github.com/worklens/workforce-backend-go/internal/pkg/validator"
)

var validWeekdayNames = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekdaysFromNames builds a Weekdays mask from lowercase day names.
// Unknown names are reported by Validate, not here.
func WeekdaysFromNames(names []string) Weekdays {
	var w Weekdays
	for _, name := range names {
		for i, known := range validWeekdayNames {
			if name == known {
				w |= 1 << i
			}
		}
	}
	return w
}

type CreateShiftRequest struct {
	Name         string   `json:"name"`
	StartTime    string   `json:"start_time"` // "HH:MM"
	EndTime      string   `json:"end_time"`   // "HH:MM"; before start = overnight
	Weekdays     []string `json:"weekdays"`
	GraceMinutes *int     `json:"grace_minutes"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, startOK := validator.IsValidTimeOfDay(r.StartTime)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	end, endOK := validator.IsValidTimeOfDay(r.EndTime)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if startOK && endOK && start == end {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must differ from start_time",
		})
	}

	if len(r.Weekdays) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekdays",
			Message: "at least one weekday is required",
		})
	}
	for _, day := range r.Weekdays {
		if !validator.IsInSlice(day, validWeekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekdays",
				Message: "unknown weekday: " + day,
			})
			break
		}
	}

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateShiftRequest struct {
	Name         *string  `json:"name"`
	StartTime    *string  `json:"start_time"`
	EndTime      *string  `json:"end_time"`
	Weekdays     []string `json:"weekdays"`
	GraceMinutes *int     `json:"grace_minutes"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.StartTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.StartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
	}

	if r.EndTime != nil {
		if _, ok := validator.IsValidTimeOfDay(*r.EndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
	}

	for _, day := range r.Weekdays {
		if !validator.IsInSlice(day, validWeekdayNames) {
			errs = append(errs, validator.ValidationError{
				Field:   "weekdays",
				Message: "unknown weekday: " + day,
			})
			break
		}
	}

	if r.GraceMinutes != nil && *r.GraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "grace_minutes",
			Message: "grace_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

var validTargetKinds = []string{
	string(TargetDepartment), string(TargetTeam), string(TargetIndividual),
}

type CreateAssignmentRequest struct {
	ShiftID      string  `json:"shift_id"`
	TargetKind   string  `json:"target_kind"`
	TargetID     string  `json:"target_id"`
	StartDate    string  `json:"start_date"`         // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"` // nil = open-ended
	AutoRotate   bool    `json:"auto_rotate"`
	RotationDays *int    `json:"rotation_days"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ShiftID) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_id",
			Message: "shift_id is required",
		})
	}

	if !validator.IsInSlice(r.TargetKind, validTargetKinds) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_kind",
			Message: "target_kind must be one of: department, team, individual",
		})
	}

	if validator.IsEmpty(r.TargetID) {
		errs = append(errs, validator.ValidationError{
			Field:   "target_id",
			Message: "target_id is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}

	if r.RotationDays != nil && *r.RotationDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "rotation_days",
			Message: "rotation_days must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAssignmentRequest struct {
	ShiftID      *string `json:"shift_id"`
	EndDate      *string `json:"end_date"`
	AutoRotate   *bool   `json:"auto_rotate"`
	RotationDays *int    `json:"rotation_days"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.RotationDays != nil && *r.RotationDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "rotation_days",
			Message: "rotation_days must be at least 1",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RotationReport summarizes one rotation driver run.
type RotationReport struct {
	Checked  int      `json:"checked"`
	Rotated  int      `json:"rotated"`
	Skipped  int      `json:"skipped"`
	Failures []string `json:"failures,omitempty"`
}
