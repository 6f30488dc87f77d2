package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type assignmentRepositoryImpl struct {
	db *database.DB
}

func NewAssignmentRepository(db *database.DB) shift.AssignmentRepository {
	return &assignmentRepositoryImpl{db: db}
}

func scanAssignment(row pgx.Row) (shift.Assignment, error) {
	var a shift.Assignment
	var kind string
	err := row.Scan(
		&a.ID, &a.ShiftID, &a.CompanyID, &kind, &a.Target.ID,
		&a.StartDate, &a.EndDate, &a.AutoRotate, &a.RotationDays,
		&a.LastRotationDate, &a.CreatedAt, &a.UpdatedAt,
	)
	a.Target.Kind = shift.TargetKind(kind)
	return a, err
}

const assignmentColumns = `
	id, shift_id, company_id, target_kind, target_id,
	start_date, end_date, auto_rotate, rotation_days,
	last_rotation_date, created_at, updated_at`

// Create implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Create(ctx context.Context, a shift.Assignment) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_assignments (
			id, shift_id, company_id, target_kind, target_id,
			start_date, end_date, auto_rotate, rotation_days, last_rotation_date
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ShiftID, a.CompanyID, string(a.Target.Kind), a.Target.ID,
		a.StartDate, a.EndDate, a.AutoRotate, a.RotationDays, a.LastRotationDate,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return shift.Assignment{}, fmt.Errorf("failed to create shift assignment: %w", err)
	}

	return a, nil
}

// GetByID implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM shift_assignments WHERE id = $1 AND company_id = $2`

	a, err := scanAssignment(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Assignment{}, shift.ErrAssignmentNotFound
		}
		return shift.Assignment{}, fmt.Errorf("failed to get shift assignment: %w", err)
	}

	return a, nil
}

// List implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) List(ctx context.Context, companyID string) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + assignmentColumns + ` FROM shift_assignments WHERE company_id = $1 ORDER BY id`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}

// Update implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Update(ctx context.Context, a shift.Assignment) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shift_assignments
		SET shift_id = $3, end_date = $4, auto_rotate = $5, rotation_days = $6,
		    last_rotation_date = $7, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		a.ID, a.CompanyID, a.ShiftID, a.EndDate, a.AutoRotate, a.RotationDays, a.LastRotationDate,
	)
	if err != nil {
		return fmt.Errorf("failed to update shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

// Delete implements shift.AssignmentRepository.
func (r *assignmentRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM shift_assignments WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete shift assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shift.ErrAssignmentNotFound
	}

	return nil
}

// ListAutoRotating implements shift.AssignmentRepository. Cross-company on
// purpose: the rotation driver sweeps every tenant in one run.
func (r *assignmentRepositoryImpl) ListAutoRotating(ctx context.Context, day time.Time) ([]shift.Assignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM shift_assignments
		WHERE auto_rotate = TRUE
		  AND start_date <= $1
		  AND (end_date IS NULL OR end_date >= $1)
		ORDER BY company_id, id
	`

	rows, err := q.Query(ctx, query, shift.DateOnly(day))
	if err != nil {
		return nil, fmt.Errorf("failed to list auto-rotating assignments: %w", err)
	}
	defer rows.Close()

	var assignments []shift.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
