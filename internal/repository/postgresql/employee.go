package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Department, position and level names are joined here so callers always see
// current names without the employee row carrying copies.
const employeeSelectColumns = `
	e.id, e.user_id, e.company_id, e.name, e.email, e.phone,
	e.department_id, e.position_id, e.position_level_id, e.role,
	e.hire_date, e.base_salary, e.employment_status, e.is_active,
	e.created_at, e.updated_at,
	d.name AS department_name, p.name AS position_name, pl.name AS position_level_name`

const employeeJoins = `
	LEFT JOIN departments d ON d.id = e.department_id
	LEFT JOIN positions p ON p.id = e.position_id
	LEFT JOIN position_levels pl ON pl.id = e.position_level_id`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.UserID, &e.CompanyID, &e.Name, &e.Email, &e.Phone,
		&e.DepartmentID, &e.PositionID, &e.PositionLevelID, &e.Role,
		&e.HireDate, &e.BaseSalary, &e.EmploymentStatus, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
		&e.DepartmentName, &e.PositionName, &e.PositionLevelName,
	)
	return e, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			id, user_id, company_id, name, email, phone,
			department_id, position_id, position_level_id, role,
			hire_date, base_salary, employment_status, is_active
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		e.UserID, e.CompanyID, e.Name, e.Email, e.Phone,
		e.DepartmentID, e.PositionID, e.PositionLevelID, e.Role,
		e.HireDate, e.BaseSalary, e.EmploymentStatus, e.IsActive,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailAlreadyAssigned
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return e, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeSelectColumns + `
		FROM employees e` + employeeJoins + `
		WHERE e.id = $1 AND e.company_id = $2
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return e, nil
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeSelectColumns + `
		FROM employees e` + employeeJoins + `
		WHERE e.user_id = $1
	`

	e, err := scanEmployee(q.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by user ID: %w", err)
	}

	return e, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter, companyID string) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "e.company_id = $1"
	args := []interface{}{companyID}
	argIdx := 2

	if filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.name ILIKE $%d OR e.email ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+filter.Search+"%")
		argIdx++
	}

	if filter.DepartmentID != "" {
		baseWhere += fmt.Sprintf(" AND e.department_id = $%d", argIdx)
		args = append(args, filter.DepartmentID)
		argIdx++
	}

	if filter.PositionID != "" {
		baseWhere += fmt.Sprintf(" AND e.position_id = $%d", argIdx)
		args = append(args, filter.PositionID)
		argIdx++
	}

	if filter.IsActive != nil {
		baseWhere += fmt.Sprintf(" AND e.is_active = $%d", argIdx)
		args = append(args, *filter.IsActive)
		argIdx++
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM employees e WHERE " + baseWhere
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM employees e%s
		WHERE %s
		ORDER BY e.name
		LIMIT $%d OFFSET $%d
	`, employeeSelectColumns, employeeJoins, baseWhere, argIdx, argIdx+1)
	args = append(args, filter.PerPage, (filter.Page-1)*filter.PerPage)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, total, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE employees
		SET name = $3, phone = $4, department_id = $5, position_id = $6,
		    position_level_id = $7, role = $8, base_salary = $9,
		    employment_status = $10, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query,
		e.ID, e.CompanyID, e.Name, e.Phone, e.DepartmentID, e.PositionID,
		e.PositionLevelID, e.Role, e.BaseSalary, e.EmploymentStatus,
	)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// Deactivate implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Deactivate(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE employees SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to deactivate employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// ListActiveByDepartment implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveByDepartment(ctx context.Context, departmentID string, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeSelectColumns + `
		FROM employees e` + employeeJoins + `
		WHERE e.department_id = $1 AND e.company_id = $2 AND e.is_active = TRUE
		ORDER BY e.name
	`

	return r.queryEmployees(ctx, q, query, departmentID, companyID)
}

// ListActiveByTeam implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListActiveByTeam(ctx context.Context, teamID string, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeSelectColumns + `
		FROM employees e
		JOIN team_members tm ON tm.employee_id = e.id` + employeeJoins + `
		WHERE tm.team_id = $1 AND e.company_id = $2 AND e.is_active = TRUE
		ORDER BY e.name
	`

	return r.queryEmployees(ctx, q, query, teamID, companyID)
}

func (r *employeeRepositoryImpl) queryEmployees(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]employee.Employee, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, rows.Err()
}
