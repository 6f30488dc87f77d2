package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type userShiftRepositoryImpl struct {
	db *database.DB
}

func NewUserShiftRepository(db *database.DB) shift.UserShiftRepository {
	return &userShiftRepositoryImpl{db: db}
}

// Create implements shift.UserShiftRepository.
func (r *userShiftRepositoryImpl) Create(ctx context.Context, us shift.UserShift) (shift.UserShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_shifts (
			id, employee_id, shift_id, company_id, assignment_id,
			department_id, position_id, position_level_id, role,
			start_date, end_date, is_active
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		us.EmployeeID, us.ShiftID, us.CompanyID, us.AssignmentID,
		us.DepartmentID, us.PositionID, us.PositionLevelID, us.Role,
		us.StartDate, us.EndDate, us.IsActive,
	).Scan(&us.ID, &us.CreatedAt, &us.UpdatedAt)

	if err != nil {
		return shift.UserShift{}, fmt.Errorf("failed to create user shift: %w", err)
	}

	return us, nil
}

const userShiftColumns = `
	us.id, us.employee_id, us.shift_id, us.company_id, us.assignment_id,
	us.department_id, us.position_id, us.position_level_id, us.role,
	us.start_date, us.end_date, us.is_active, us.created_at, us.updated_at,
	s.id, s.company_id, s.name, s.start_minutes, s.end_minutes, s.weekdays,
	s.grace_minutes, s.created_at, s.updated_at`

func scanUserShift(row pgx.Row) (shift.UserShift, error) {
	var us shift.UserShift
	var s shift.Shift
	var weekdays int
	err := row.Scan(
		&us.ID, &us.EmployeeID, &us.ShiftID, &us.CompanyID, &us.AssignmentID,
		&us.DepartmentID, &us.PositionID, &us.PositionLevelID, &us.Role,
		&us.StartDate, &us.EndDate, &us.IsActive, &us.CreatedAt, &us.UpdatedAt,
		&s.ID, &s.CompanyID, &s.Name, &s.StartMinutes, &s.EndMinutes, &weekdays,
		&s.GraceMinutes, &s.CreatedAt, &s.UpdatedAt,
	)
	s.Weekdays = shift.Weekdays(weekdays)
	us.Shift = &s
	return us, err
}

func (r *userShiftRepositoryImpl) queryUserShifts(ctx context.Context, query string, args ...interface{}) ([]shift.UserShift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query user shifts: %w", err)
	}
	defer rows.Close()

	var userShifts []shift.UserShift
	for rows.Next() {
		us, err := scanUserShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user shift: %w", err)
		}
		userShifts = append(userShifts, us)
	}

	return userShifts, rows.Err()
}

// ListActiveByEmployee implements shift.UserShiftRepository.
func (r *userShiftRepositoryImpl) ListActiveByEmployee(ctx context.Context, employeeID string, day time.Time, companyID string) ([]shift.UserShift, error) {
	query := `
		SELECT ` + userShiftColumns + `
		FROM user_shifts us
		JOIN shifts s ON s.id = us.shift_id
		WHERE us.employee_id = $1
		  AND us.company_id = $2
		  AND us.is_active = TRUE
		  AND us.start_date <= $3
		  AND (us.end_date IS NULL OR us.end_date >= $3)
		ORDER BY s.start_minutes
	`

	return r.queryUserShifts(ctx, query, employeeID, companyID, shift.DateOnly(day))
}

// ListByEmployee implements shift.UserShiftRepository.
func (r *userShiftRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]shift.UserShift, error) {
	query := `
		SELECT ` + userShiftColumns + `
		FROM user_shifts us
		JOIN shifts s ON s.id = us.shift_id
		WHERE us.employee_id = $1 AND us.company_id = $2
		ORDER BY us.id DESC
	`

	return r.queryUserShifts(ctx, query, employeeID, companyID)
}

// ListActiveByAssignment implements shift.UserShiftRepository.
func (r *userShiftRepositoryImpl) ListActiveByAssignment(ctx context.Context, assignmentID string, companyID string) ([]shift.UserShift, error) {
	query := `
		SELECT ` + userShiftColumns + `
		FROM user_shifts us
		JOIN shifts s ON s.id = us.shift_id
		WHERE us.assignment_id = $1 AND us.company_id = $2 AND us.is_active = TRUE
		ORDER BY us.id
	`

	return r.queryUserShifts(ctx, query, assignmentID, companyID)
}

// ListActiveByShift implements shift.UserShiftRepository.
func (r *userShiftRepositoryImpl) ListActiveByShift(ctx context.Context, shiftID string, companyID string) ([]shift.UserShift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + userShiftColumns + `, e.name AS employee_name
		FROM user_shifts us
		JOIN shifts s ON s.id = us.shift_id
		LEFT JOIN employees e ON e.id = us.employee_id
		WHERE us.shift_id = $1 AND us.company_id = $2 AND us.is_active = TRUE
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, shiftID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user shifts by shift: %w", err)
	}
	defer rows.Close()

	var userShifts []shift.UserShift
	for rows.Next() {
		var us shift.UserShift
		var s shift.Shift
		var weekdays int
		if err := rows.Scan(
			&us.ID, &us.EmployeeID, &us.ShiftID, &us.CompanyID, &us.AssignmentID,
			&us.DepartmentID, &us.PositionID, &us.PositionLevelID, &us.Role,
			&us.StartDate, &us.EndDate, &us.IsActive, &us.CreatedAt, &us.UpdatedAt,
			&s.ID, &s.CompanyID, &s.Name, &s.StartMinutes, &s.EndMinutes, &weekdays,
			&s.GraceMinutes, &s.CreatedAt, &s.UpdatedAt,
			&us.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user shift: %w", err)
		}
		s.Weekdays = shift.Weekdays(weekdays)
		us.Shift = &s
		userShifts = append(userShifts, us)
	}

	return userShifts, rows.Err()
}

// DeactivateByAssignment implements shift.UserShiftRepository.
func (r *userShiftRepositoryImpl) DeactivateByAssignment(ctx context.Context, assignmentID string, endDate time.Time, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE user_shifts
		SET end_date = $3, is_active = FALSE, updated_at = NOW()
		WHERE assignment_id = $1 AND company_id = $2 AND is_active = TRUE
	`

	if _, err := q.Exec(ctx, query, assignmentID, companyID, shift.DateOnly(endDate)); err != nil {
		return fmt.Errorf("failed to deactivate user shifts: %w", err)
	}

	return nil
}

// DeactivateByEmployee implements shift.UserShiftRepository.
func (r *userShiftRepositoryImpl) DeactivateByEmployee(ctx context.Context, employeeID string, endDate time.Time, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE user_shifts
		SET end_date = $3, is_active = FALSE, updated_at = NOW()
		WHERE employee_id = $1 AND company_id = $2 AND is_active = TRUE
	`

	if _, err := q.Exec(ctx, query, employeeID, companyID, shift.DateOnly(endDate)); err != nil {
		return fmt.Errorf("failed to deactivate user shifts: %w", err)
	}

	return nil
}
