package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/face"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type faceProfileRepositoryImpl struct {
	db *database.DB
}

func NewFaceProfileRepository(db *database.DB) face.FaceProfileRepository {
	return &faceProfileRepositoryImpl{db: db}
}

// Upsert implements face.FaceProfileRepository. The encoding column is JSONB;
// pgx marshals the []float64 directly.
func (r *faceProfileRepositoryImpl) Upsert(ctx context.Context, p face.FaceProfile) (face.FaceProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO face_profiles (
			id, employee_id, company_id, encoding, image_path,
			default_latitude, default_longitude, default_radius_meters
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id) DO UPDATE SET
			encoding = EXCLUDED.encoding,
			image_path = EXCLUDED.image_path,
			default_latitude = EXCLUDED.default_latitude,
			default_longitude = EXCLUDED.default_longitude,
			default_radius_meters = EXCLUDED.default_radius_meters,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.CompanyID, p.Encoding, p.ImagePath,
		p.DefaultLatitude, p.DefaultLongitude, p.DefaultRadiusMeters,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return face.FaceProfile{}, fmt.Errorf("failed to upsert face profile: %w", err)
	}

	return p, nil
}

// GetByEmployee implements face.FaceProfileRepository.
func (r *faceProfileRepositoryImpl) GetByEmployee(ctx context.Context, employeeID string, companyID string) (face.FaceProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, encoding, image_path,
		       default_latitude, default_longitude, default_radius_meters,
		       created_at, updated_at
		FROM face_profiles
		WHERE employee_id = $1 AND company_id = $2
	`

	var p face.FaceProfile
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(
		&p.ID, &p.EmployeeID, &p.CompanyID, &p.Encoding, &p.ImagePath,
		&p.DefaultLatitude, &p.DefaultLongitude, &p.DefaultRadiusMeters,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return face.FaceProfile{}, face.ErrNoBiometricProfile
		}
		return face.FaceProfile{}, fmt.Errorf("failed to get face profile: %w", err)
	}

	return p, nil
}

// Delete implements face.FaceProfileRepository.
func (r *faceProfileRepositoryImpl) Delete(ctx context.Context, employeeID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		DELETE FROM face_profiles WHERE employee_id = $1 AND company_id = $2
	`, employeeID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete face profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return face.ErrNoBiometricProfile
	}

	return nil
}
