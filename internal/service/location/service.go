package location

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
	"github.com/worklens/workforce-backend-go/internal/domain/location"
)

type LocationServiceImpl struct {
	location.LocationRepository
	employees employee.EmployeeRepository
}

func NewLocationService(
	locationRepository location.LocationRepository,
	employeeRepository employee.EmployeeRepository,
) location.LocationService {
	return &LocationServiceImpl{
		LocationRepository: locationRepository,
		employees:          employeeRepository,
	}
}

func claimsFromContext(ctx context.Context) (userID string, companyID string, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	companyID, ok = claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, _ = claims["employee_id"].(string)

	return userID, companyID, employeeID, nil
}

// Create implements location.LocationService.
func (s *LocationServiceImpl) Create(ctx context.Context, employeeID string, req location.CreateLocationRequest) (location.AllowedLocation, error) {
	if err := req.Validate(); err != nil {
		return location.AllowedLocation{}, err
	}

	userID, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return location.AllowedLocation{}, err
	}

	emp, err := s.employees.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return location.AllowedLocation{}, err
	}
	if !emp.IsActive {
		return location.AllowedLocation{}, employee.ErrEmployeeInactive
	}

	return s.LocationRepository.Create(ctx, location.AllowedLocation{
		EmployeeID:   emp.ID,
		CompanyID:    companyID,
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
		IsActive:     true,
		CreatedBy:    userID,
	})
}

// ListForEmployee implements location.LocationService.
func (s *LocationServiceImpl) ListForEmployee(ctx context.Context, employeeID string) ([]location.AllowedLocation, error) {
	_, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.employees.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	return s.LocationRepository.ListByEmployee(ctx, employeeID, companyID, false)
}

// ListMine implements location.LocationService.
func (s *LocationServiceImpl) ListMine(ctx context.Context) ([]location.AllowedLocation, error) {
	_, companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		return nil, employee.ErrEmployeeNotFound
	}

	return s.LocationRepository.ListByEmployee(ctx, employeeID, companyID, true)
}

// Update implements location.LocationService.
func (s *LocationServiceImpl) Update(ctx context.Context, id string, req location.UpdateLocationRequest) (location.AllowedLocation, error) {
	if err := req.Validate(); err != nil {
		return location.AllowedLocation{}, err
	}

	_, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return location.AllowedLocation{}, err
	}

	current, err := s.LocationRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return location.AllowedLocation{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Latitude != nil {
		current.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		current.Longitude = *req.Longitude
	}
	if req.RadiusMeters != nil {
		current.RadiusMeters = *req.RadiusMeters
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	if err := s.LocationRepository.Update(ctx, current); err != nil {
		return location.AllowedLocation{}, err
	}

	return current, nil
}

// Delete implements location.LocationService.
func (s *LocationServiceImpl) Delete(ctx context.Context, id string) error {
	_, companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.LocationRepository.Delete(ctx, id, companyID)
}
