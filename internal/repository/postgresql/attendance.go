package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/attendance"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type recordRepositoryImpl struct {
	db *database.DB
}

func NewRecordRepository(db *database.DB) attendance.RecordRepository {
	return &recordRepositoryImpl{db: db}
}

const recordColumns = `
	a.id, a.employee_id, a.company_id, a.date,
	a.check_in, a.check_out, a.check_in_latitude, a.check_in_longitude,
	a.check_out_latitude, a.check_out_longitude,
	a.shift_id, a.status, a.minutes_late, a.work_duration_minutes,
	a.location_verified, a.face_verified, a.blink_detected,
	a.verified_location_name, a.face_image_path, a.device_info,
	a.created_at, a.updated_at`

func scanRecord(row pgx.Row) (attendance.Record, error) {
	var rec attendance.Record
	err := row.Scan(
		&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
		&rec.CheckIn, &rec.CheckOut, &rec.CheckInLatitude, &rec.CheckInLongitude,
		&rec.CheckOutLatitude, &rec.CheckOutLongitude,
		&rec.ShiftID, &rec.Status, &rec.MinutesLate, &rec.WorkDurationMinutes,
		&rec.LocationVerified, &rec.FaceVerified, &rec.BlinkDetected,
		&rec.VerifiedLocationName, &rec.FaceImagePath, &rec.DeviceInfo,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

// Create implements attendance.RecordRepository.
func (r *recordRepositoryImpl) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (
			id, employee_id, company_id, date,
			check_in, check_in_latitude, check_in_longitude,
			shift_id, status, minutes_late,
			location_verified, face_verified, blink_detected,
			verified_location_name, face_image_path, device_info
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.EmployeeID, rec.CompanyID, rec.Date,
		rec.CheckIn, rec.CheckInLatitude, rec.CheckInLongitude,
		rec.ShiftID, rec.Status, rec.MinutesLate,
		rec.LocationVerified, rec.FaceVerified, rec.BlinkDetected,
		rec.VerifiedLocationName, rec.FaceImagePath, rec.DeviceInfo,
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)

	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return rec, nil
}

// Update implements attendance.RecordRepository.
func (r *recordRepositoryImpl) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_out = $3, check_out_latitude = $4, check_out_longitude = $5,
		    status = $6, minutes_late = $7, work_duration_minutes = $8,
		    location_verified = $9, face_verified = $10, blink_detected = $11,
		    verified_location_name = $12, device_info = $13, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		rec.ID, rec.CompanyID, rec.CheckOut, rec.CheckOutLatitude, rec.CheckOutLongitude,
		rec.Status, rec.MinutesLate, rec.WorkDurationMinutes,
		rec.LocationVerified, rec.FaceVerified, rec.BlinkDetected,
		rec.VerifiedLocationName, rec.DeviceInfo,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// GetByID implements attendance.RecordRepository.
func (r *recordRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.id = $1 AND a.company_id = $2
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

// GetOpenSession implements attendance.RecordRepository.
func (r *recordRepositoryImpl) GetOpenSession(ctx context.Context, employeeID string, date time.Time, companyID string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1
		  AND a.company_id = $2
		  AND a.date = $3
		  AND a.check_out IS NULL
		ORDER BY a.check_in DESC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, companyID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return rec, nil
}

// GetLast implements attendance.RecordRepository.
func (r *recordRepositoryImpl) GetLast(ctx context.Context, employeeID string, companyID string) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM attendance_records a
		WHERE a.employee_id = $1 AND a.company_id = $2
		ORDER BY a.check_in DESC
		LIMIT 1
	`

	rec, err := scanRecord(q.QueryRow(ctx, query, employeeID, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrNoAttendanceYet
		}
		return attendance.Record{}, fmt.Errorf("failed to get last attendance: %w", err)
	}

	return rec, nil
}

// List implements attendance.RecordRepository.
func (r *recordRepositoryImpl) List(ctx context.Context, filter attendance.HistoryFilter, companyID string) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "a.company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, filter.EmployeeID)
		argIdx++
	}

	if filter.DateFrom != nil {
		baseWhere += fmt.Sprintf(" AND a.date >= $%d", argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}

	if filter.DateTo != nil {
		baseWhere += fmt.Sprintf(" AND a.date <= $%d", argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	if filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND a.status = $%d", argIdx)
		args = append(args, filter.Status)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_records a WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s, e.name AS employee_name, s.name AS shift_name
		FROM attendance_records a
		LEFT JOIN employees e ON e.id = a.employee_id
		LEFT JOIN shifts s ON s.id = a.shift_id
		WHERE %s
		ORDER BY a.check_in DESC
		LIMIT $%d OFFSET $%d
	`, recordColumns, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.CompanyID, &rec.Date,
			&rec.CheckIn, &rec.CheckOut, &rec.CheckInLatitude, &rec.CheckInLongitude,
			&rec.CheckOutLatitude, &rec.CheckOutLongitude,
			&rec.ShiftID, &rec.Status, &rec.MinutesLate, &rec.WorkDurationMinutes,
			&rec.LocationVerified, &rec.FaceVerified, &rec.BlinkDetected,
			&rec.VerifiedLocationName, &rec.FaceImagePath, &rec.DeviceInfo,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.ShiftName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, rows.Err()
}

// HasWorkedShift implements attendance.RecordRepository. Leave-status rows
// do not count; an on-leave employee marking within a past shift window is
// late, not on overtime.
func (r *recordRepositoryImpl) HasWorkedShift(ctx context.Context, employeeID string, shiftID string, date time.Time, companyID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM attendance_records
			WHERE employee_id = $1
			  AND shift_id = $2
			  AND date = $3
			  AND company_id = $4
			  AND status <> $5
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, shiftID, date, companyID, attendance.StatusLeave).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check worked shift: %w", err)
	}

	return exists, nil
}

type logRepositoryImpl struct {
	db *database.DB
}

func NewLogRepository(db *database.DB) attendance.LogRepository {
	return &logRepositoryImpl{db: db}
}

// Create implements attendance.LogRepository.
func (r *logRepositoryImpl) Create(ctx context.Context, l attendance.Log) (attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (
			id, employee_id, company_id, record_id, timestamp,
			latitude, longitude, face_verified, location_verified,
			blink_detected, device_info, message
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.CompanyID, l.RecordID, l.Timestamp,
		l.Latitude, l.Longitude, l.FaceVerified, l.LocationVerified,
		l.BlinkDetected, l.DeviceInfo, l.Message,
	).Scan(&l.ID, &l.CreatedAt)

	if err != nil {
		return attendance.Log{}, fmt.Errorf("failed to create attendance log: %w", err)
	}

	return l, nil
}

// ListByEmployee implements attendance.LogRepository.
func (r *logRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, companyID string, limit int) ([]attendance.Log, error) {
	q := GetQuerier(ctx, r.db)

	if limit < 1 || limit > 500 {
		limit = 50
	}

	query := `
		SELECT id, employee_id, company_id, record_id, timestamp,
		       latitude, longitude, face_verified, location_verified,
		       blink_detected, device_info, message, created_at
		FROM attendance_logs
		WHERE employee_id = $1 AND company_id = $2
		ORDER BY timestamp DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance logs: %w", err)
	}
	defer rows.Close()

	var logs []attendance.Log
	for rows.Next() {
		var l attendance.Log
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.RecordID, &l.Timestamp,
			&l.Latitude, &l.Longitude, &l.FaceVerified, &l.LocationVerified,
			&l.BlinkDetected, &l.DeviceInfo, &l.Message, &l.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance log: %w", err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
