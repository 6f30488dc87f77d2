package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
)

type teamRepositoryImpl struct {
	db *database.DB
}

func NewTeamRepository(db *database.DB) company.TeamRepository {
	return &teamRepositoryImpl{db: db}
}

// Create implements company.TeamRepository.
func (r *teamRepositoryImpl) Create(ctx context.Context, t company.Team) (company.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO teams (id, company_id, name)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, t.CompanyID, t.Name).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return company.Team{}, fmt.Errorf("failed to create team: %w", err)
	}

	return t, nil
}

// GetByID implements company.TeamRepository.
func (r *teamRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (company.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.company_id, t.name, t.created_at, t.updated_at,
		       COUNT(tm.id)::int AS member_count
		FROM teams t
		LEFT JOIN team_members tm ON tm.team_id = t.id
		WHERE t.id = $1 AND t.company_id = $2
		GROUP BY t.id
	`

	var t company.Team
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.MemberCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Team{}, company.ErrTeamNotFound
		}
		return company.Team{}, fmt.Errorf("failed to get team by ID: %w", err)
	}

	return t, nil
}

// List implements company.TeamRepository.
func (r *teamRepositoryImpl) List(ctx context.Context, companyID string) ([]company.Team, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.company_id, t.name, t.created_at, t.updated_at,
		       COUNT(tm.id)::int AS member_count
		FROM teams t
		LEFT JOIN team_members tm ON tm.team_id = t.id
		WHERE t.company_id = $1
		GROUP BY t.id
		ORDER BY t.name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []company.Team
	for rows.Next() {
		var t company.Team
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.Name, &t.CreatedAt, &t.UpdatedAt, &t.MemberCount); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}

	return teams, rows.Err()
}

// Update implements company.TeamRepository.
func (r *teamRepositoryImpl) Update(ctx context.Context, t company.Team) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE teams
		SET name = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
	`

	tag, err := q.Exec(ctx, query, t.ID, t.CompanyID, t.Name)
	if err != nil {
		return fmt.Errorf("failed to update team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrTeamNotFound
	}

	return nil
}

// Delete implements company.TeamRepository.
func (r *teamRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM teams WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrTeamNotFound
	}

	return nil
}

// AddMember implements company.TeamRepository.
func (r *teamRepositoryImpl) AddMember(ctx context.Context, m company.TeamMember) (company.TeamMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO team_members (id, team_id, employee_id)
		VALUES (uuidv7(), $1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, m.TeamID, m.EmployeeID).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return company.TeamMember{}, company.ErrTeamMemberExists
		}
		return company.TeamMember{}, fmt.Errorf("failed to add team member: %w", err)
	}

	return m, nil
}

// RemoveMember implements company.TeamRepository.
func (r *teamRepositoryImpl) RemoveMember(ctx context.Context, teamID string, employeeID string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM team_members tm
		USING teams t
		WHERE tm.team_id = t.id
		  AND tm.team_id = $1 AND tm.employee_id = $2 AND t.company_id = $3
	`

	tag, err := q.Exec(ctx, query, teamID, employeeID, companyID)
	if err != nil {
		return fmt.Errorf("failed to remove team member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return company.ErrTeamMemberNotFound
	}

	return nil
}

// ListMembers implements company.TeamRepository.
func (r *teamRepositoryImpl) ListMembers(ctx context.Context, teamID string, companyID string) ([]company.TeamMember, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT tm.id, tm.team_id, tm.employee_id, tm.created_at,
		       e.name AS employee_name
		FROM team_members tm
		JOIN teams t ON t.id = tm.team_id
		LEFT JOIN employees e ON e.id = tm.employee_id
		WHERE tm.team_id = $1 AND t.company_id = $2
		ORDER BY e.name
	`

	rows, err := q.Query(ctx, query, teamID, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []company.TeamMember
	for rows.Next() {
		var m company.TeamMember
		if err := rows.Scan(&m.ID, &m.TeamID, &m.EmployeeID, &m.CreatedAt, &m.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}

	return members, rows.Err()
}
