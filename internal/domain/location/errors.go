package location

import "errors"

// Location domain errors
var (
	ErrLocationNotFound      = errors.New("allowed location not found")
	ErrLocationNameTaken     = errors.New("a location with this name already exists for the employee")
	ErrGeofenceNotConfigured = errors.New("no default geofence configured for this employee")
)
