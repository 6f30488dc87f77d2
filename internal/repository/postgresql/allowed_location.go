package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/location"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type locationRepositoryImpl struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepositoryImpl{db: db}
}

// Create implements location.LocationRepository.
func (r *locationRepositoryImpl) Create(ctx context.Context, l location.AllowedLocation) (location.AllowedLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allowed_locations (
			id, employee_id, company_id, name, latitude, longitude,
			radius_meters, is_active, created_by
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.CompanyID, l.Name, l.Latitude, l.Longitude,
		l.RadiusMeters, l.IsActive, l.CreatedBy,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return location.AllowedLocation{}, location.ErrLocationNameTaken
		}
		return location.AllowedLocation{}, fmt.Errorf("failed to create allowed location: %w", err)
	}

	return l, nil
}

// GetByID implements location.LocationRepository.
func (r *locationRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (location.AllowedLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, name, latitude, longitude,
		       radius_meters, is_active, created_by, created_at, updated_at
		FROM allowed_locations
		WHERE id = $1 AND company_id = $2
	`

	var l location.AllowedLocation
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&l.ID, &l.EmployeeID, &l.CompanyID, &l.Name, &l.Latitude, &l.Longitude,
		&l.RadiusMeters, &l.IsActive, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return location.AllowedLocation{}, location.ErrLocationNotFound
		}
		return location.AllowedLocation{}, fmt.Errorf("failed to get allowed location: %w", err)
	}

	return l, nil
}

// ListByEmployee implements location.LocationRepository.
func (r *locationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string, activeOnly bool) ([]location.AllowedLocation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, name, latitude, longitude,
		       radius_meters, is_active, created_by, created_at, updated_at
		FROM allowed_locations
		WHERE employee_id = $1 AND company_id = $2
	`
	if activeOnly {
		query += " AND is_active = TRUE"
	}
	query += " ORDER BY name"

	rows, err := q.Query(ctx, query, employeeID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowed locations: %w", err)
	}
	defer rows.Close()

	var locations []location.AllowedLocation
	for rows.Next() {
		var l location.AllowedLocation
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.Name, &l.Latitude, &l.Longitude,
			&l.RadiusMeters, &l.IsActive, &l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan allowed location: %w", err)
		}
		locations = append(locations, l)
	}

	return locations, rows.Err()
}

// Update implements location.LocationRepository.
func (r *locationRepositoryImpl) Update(ctx context.Context, l location.AllowedLocation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE allowed_locations
		SET name = $3, latitude = $4, longitude = $5, radius_meters = $6,
		    is_active = $7, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		l.ID, l.CompanyID, l.Name, l.Latitude, l.Longitude, l.RadiusMeters, l.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return location.ErrLocationNameTaken
		}
		return fmt.Errorf("failed to update allowed location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}

// Delete implements location.LocationRepository.
func (r *locationRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM allowed_locations WHERE id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete allowed location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return location.ErrLocationNotFound
	}

	return nil
}
