package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type orgRepositoryImpl struct {
	db *database.DB
}

func NewOrgRepository(db *database.DB) company.OrgRepository {
	return &orgRepositoryImpl{db: db}
}

// ---------- departments ----------

func (r *orgRepositoryImpl) CreateDepartment(ctx context.Context, d company.Department) (company.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO departments (id, company_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, d.CompanyID, d.Name).
		Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return company.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return d, nil
}

func (r *orgRepositoryImpl) ListDepartments(ctx context.Context, companyID string) ([]company.Department, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, created_at, updated_at
		FROM departments
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var out []company.Department
	for rows.Next() {
		var d company.Department
		if err := rows.Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		out = append(out, d)
	}

	return out, rows.Err()
}

func (r *orgRepositoryImpl) GetDepartment(ctx context.Context, id string, companyID string) (company.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d company.Department
	err := q.QueryRow(ctx, `
		SELECT id, company_id, name, created_at, updated_at
		FROM departments
		WHERE id = $1 AND company_id = $2
	`, id, companyID).Scan(&d.ID, &d.CompanyID, &d.Name, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Department{}, company.ErrDepartmentNotFound
		}
		return company.Department{}, fmt.Errorf("failed to get department: %w", err)
	}

	return d, nil
}

func (r *orgRepositoryImpl) UpdateDepartment(ctx context.Context, d company.Department) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE departments SET name = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, d.ID, d.CompanyID, d.Name)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrDepartmentNotFound
	}

	return nil
}

func (r *orgRepositoryImpl) DeleteDepartment(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM departments WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrDepartmentNotFound
	}

	return nil
}

// ---------- positions ----------

func (r *orgRepositoryImpl) CreatePosition(ctx context.Context, p company.Position) (company.Position, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO positions (id, company_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, p.CompanyID, p.Name).
		Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return company.Position{}, fmt.Errorf("failed to create position: %w", err)
	}

	return p, nil
}

func (r *orgRepositoryImpl) ListPositions(ctx context.Context, companyID string) ([]company.Position, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, company_id, name, created_at, updated_at
		FROM positions
		WHERE company_id = $1
		ORDER BY name
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	defer rows.Close()

	var out []company.Position
	for rows.Next() {
		var p company.Position
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}

func (r *orgRepositoryImpl) GetPosition(ctx context.Context, id string, companyID string) (company.Position, error) {
	q := GetQuerier(ctx, r.db)

	var p company.Position
	err := q.QueryRow(ctx, `
		SELECT id, company_id, name, created_at, updated_at
		FROM positions
		WHERE id = $1 AND company_id = $2
	`, id, companyID).Scan(&p.ID, &p.CompanyID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Position{}, company.ErrPositionNotFound
		}
		return company.Position{}, fmt.Errorf("failed to get position: %w", err)
	}

	return p, nil
}

func (r *orgRepositoryImpl) UpdatePosition(ctx context.Context, p company.Position) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE positions SET name = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, p.ID, p.CompanyID, p.Name)
	if err != nil {
		return fmt.Errorf("failed to update position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrPositionNotFound
	}

	return nil
}

func (r *orgRepositoryImpl) DeletePosition(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM positions WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete position: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrPositionNotFound
	}

	return nil
}

// ---------- position levels ----------

func (r *orgRepositoryImpl) CreatePositionLevel(ctx context.Context, l company.PositionLevel) (company.PositionLevel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO position_levels (id, company_id, name, rank)
		VALUES (uuidv7(), $1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, l.CompanyID, l.Name, l.Rank).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return company.PositionLevel{}, fmt.Errorf("failed to create position level: %w", err)
	}

	return l, nil
}

func (r *orgRepositoryImpl) ListPositionLevels(ctx context.Context, companyID string) ([]company.PositionLevel, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, company_id, name, rank, created_at, updated_at
		FROM position_levels
		WHERE company_id = $1
		ORDER BY rank, name
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list position levels: %w", err)
	}
	defer rows.Close()

	var out []company.PositionLevel
	for rows.Next() {
		var l company.PositionLevel
		if err := rows.Scan(&l.ID, &l.CompanyID, &l.Name, &l.Rank, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan position level: %w", err)
		}
		out = append(out, l)
	}

	return out, rows.Err()
}

func (r *orgRepositoryImpl) GetPositionLevel(ctx context.Context, id string, companyID string) (company.PositionLevel, error) {
	q := GetQuerier(ctx, r.db)

	var l company.PositionLevel
	err := q.QueryRow(ctx, `
		SELECT id, company_id, name, rank, created_at, updated_at
		FROM position_levels
		WHERE id = $1 AND company_id = $2
	`, id, companyID).Scan(&l.ID, &l.CompanyID, &l.Name, &l.Rank, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.PositionLevel{}, company.ErrPositionLevelNotFound
		}
		return company.PositionLevel{}, fmt.Errorf("failed to get position level: %w", err)
	}

	return l, nil
}

func (r *orgRepositoryImpl) UpdatePositionLevel(ctx context.Context, l company.PositionLevel) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `
		UPDATE position_levels SET name = $3, rank = $4, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`, l.ID, l.CompanyID, l.Name, l.Rank)
	if err != nil {
		return fmt.Errorf("failed to update position level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrPositionLevelNotFound
	}

	return nil
}

func (r *orgRepositoryImpl) DeletePositionLevel(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM position_levels WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete position level: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrPositionLevelNotFound
	}

	return nil
}
