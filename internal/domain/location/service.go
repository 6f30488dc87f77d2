package location

import "context"

type LocationService interface {
	// Create registers a named geofence for an employee
	Create(ctx context.Context, employeeID string, req CreateLocationRequest) (AllowedLocation, error)

	// ListForEmployee retrieves an employee's geofences, including
	// inactive ones
	ListForEmployee(ctx context.Context, employeeID string) ([]AllowedLocation, error)

	// ListMine retrieves the authenticated employee's active geofences
	ListMine(ctx context.Context) ([]AllowedLocation, error)

	// Update modifies a geofence
	Update(ctx context.Context, id string, req UpdateLocationRequest) (AllowedLocation, error)

	// Delete removes a geofence
	Delete(ctx context.Context, id string) error
}
