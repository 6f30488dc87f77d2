package attendance

import (
	"time"

	"github.com/worklens/workforce-backend-go/internal/pkg/validator"
)

// MarkOutcome tells which side of the session toggle a mark landed on.
type MarkOutcome string

const (
	OutcomeCheckedIn  MarkOutcome = "checked_in"
	OutcomeCheckedOut MarkOutcome = "checked_out"
)

// LocationDefault requests verification against the employee's default
// geofence instead of a specific allowed location.
const LocationDefault = "default"

type MarkRequest struct {
	Latitude        *float64       `json:"latitude"`
	Longitude       *float64       `json:"longitude"`
	ImageBase64     string         `json:"image"`
	LocationID      string         `json:"location_id"` // "default", "" or an allowed location id
	BlinkDetected   bool           `json:"blink_detected"`
	DeviceInfo      map[string]any `json:"device_info"`
	ForceNewSession bool           `json:"force_new_session"`
}

func (r *MarkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Latitude == nil || r.Longitude == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude are required",
		})
	} else {
		if !validator.IsValidLatitude(*r.Latitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "latitude",
				Message: "latitude must be between -90 and 90",
			})
		}
		if !validator.IsValidLongitude(*r.Longitude) {
			errs = append(errs, validator.ValidationError{
				Field:   "longitude",
				Message: "longitude must be between -180 and 180",
			})
		}
	}

	if validator.IsEmpty(r.ImageBase64) {
		errs = append(errs, validator.ValidationError{
			Field:   "image",
			Message: "image is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MarkResult is what the resolver reports back for one invocation.
type MarkResult struct {
	Outcome MarkOutcome `json:"outcome"`
	Record  Record      `json:"record"`
	Message string      `json:"message"`

	LocationVerified     bool     `json:"location_verified"`
	VerifiedLocationName *string  `json:"verified_location_name,omitempty"`
	DistanceMeters       *float64 `json:"distance_meters,omitempty"`
	FaceVerified         bool     `json:"face_verified"`
	FaceConfidence       float64  `json:"face_confidence"`

	Status      Status `json:"status"`
	MinutesLate *int   `json:"minutes_late,omitempty"`
	ShiftID     *string `json:"shift_id,omitempty"`
	ShiftName   *string `json:"shift_name,omitempty"`
}

type HistoryFilter struct {
	EmployeeID string
	DateFrom   *time.Time
	DateTo     *time.Time
	Status     string
	Page       int
	PerPage    int
}

func (f *HistoryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}
