package face

import "context"

// FaceProfileRepository defines data access for face profiles.
// All methods include companyID parameter to prevent cross-company data access.
type FaceProfileRepository interface {
	// Upsert inserts the profile, replacing an existing one for the same
	// employee (re-registration overwrites).
	Upsert(ctx context.Context, p FaceProfile) (FaceProfile, error)

	// GetByEmployee retrieves the profile of an employee
	GetByEmployee(ctx context.Context, employeeID string, companyID string) (FaceProfile, error)

	// Delete removes the profile of an employee
	Delete(ctx context.Context, employeeID string, companyID string) error
}
