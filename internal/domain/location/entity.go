package location

import "time"

// AllowedLocation is a named geofence an employee may mark attendance from.
// An employee can have several; names are unique per employee.
type AllowedLocation struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	IsActive     bool
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
