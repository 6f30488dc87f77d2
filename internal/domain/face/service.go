package face

import (
	"context"
	"io"
)

// FaceService defines business logic for face enrollment and verification
type FaceService interface {
	// Register enrolls (or re-enrolls) the authenticated employee's face
	// and optional default geofence
	Register(ctx context.Context, req RegisterRequest) (FaceProfile, error)

	// Compare verifies a captured image against the stored profile
	Compare(ctx context.Context, req CompareRequest) (CompareResult, error)

	// Status reports whether the authenticated employee is enrolled
	Status(ctx context.Context) (StatusResponse, error)

	// GetImage streams the stored enrollment image
	GetImage(ctx context.Context) (io.ReadCloser, error)
}
