package face

import (
	"context"
	"time"
)

// DefaultGeofenceRadiusMeters is used when registration does not supply one.
const DefaultGeofenceRadiusMeters = 100.0

// FaceProfile holds the biometric enrollment of an employee. One profile per
// employee; re-registration overwrites it. The default geofence, when set,
// is the fence attendance marks verify against unless a specific allowed
// location is requested.
type FaceProfile struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Encoding   []float64 // opaque encoder vector, stored as JSONB
	ImagePath  string

	DefaultLatitude     *float64
	DefaultLongitude    *float64
	DefaultRadiusMeters float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasDefaultGeofence reports whether the profile carries a usable fence.
func (p *FaceProfile) HasDefaultGeofence() bool {
	return p.DefaultLatitude != nil && p.DefaultLongitude != nil && p.DefaultRadiusMeters > 0
}

// Encoder turns a face image into an encoding vector and measures the
// distance between two encodings. The production implementation is an HTTP
// client to the face-recognition sidecar.
type Encoder interface {
	Encode(ctx context.Context, image []byte, contentType string) ([]float64, error)
	Distance(a, b []float64) float64
}
