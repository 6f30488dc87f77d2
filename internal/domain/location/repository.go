package location

import "context"

// LocationRepository defines data access for allowed locations.
// All methods include companyID parameter to prevent cross-company data access.
type LocationRepository interface {
	Create(ctx context.Context, l AllowedLocation) (AllowedLocation, error)
	GetByID(ctx context.Context, id string, companyID string) (AllowedLocation, error)
	ListByEmployee(ctx context.Context, employeeID string, companyID string, activeOnly bool) ([]AllowedLocation, error)
	Update(ctx context.Context, l AllowedLocation) error
	Delete(ctx context.Context, id string, companyID string) error
}
