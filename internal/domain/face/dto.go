package face

import (
	"github.com/worklens/workforce-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	ImageBase64  string   `json:"image"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	RadiusMeters *float64 `json:"radius_meters"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ImageBase64) {
		errs = append(errs, validator.ValidationError{
			Field:   "image",
			Message: "image is required",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be provided together",
		})
	}

	if r.RadiusMeters != nil && *r.RadiusMeters <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompareRequest struct {
	ImageBase64 string `json:"image"`
}

func (r *CompareRequest) Validate() error {
	var errs validator.ValidationErrors

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

type CompareResult struct {
	Match      bool    `json:"match"`
	Distance   float64 `json:"distance"`
	Confidence float64 `json:"confidence"`
}

type StatusResponse struct {
	Registered          bool     `json:"registered"`
	HasDefaultGeofence  bool     `json:"has_default_geofence"`
	DefaultLatitude     *float64 `json:"default_latitude,omitempty"`
	DefaultLongitude    *float64 `json:"default_longitude,omitempty"`
	DefaultRadiusMeters *float64 `json:"default_radius_meters,omitempty"`
}
