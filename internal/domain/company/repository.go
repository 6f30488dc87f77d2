package company

import "context"

type CompanyRepository interface {
	// Create creates a new company
	Create(ctx context.Context, c Company) (Company, error)

	// GetByID retrieves a company by ID
	GetByID(ctx context.Context, id string) (Company, error)

	// GetByUsername retrieves a company by username
	GetByUsername(ctx context.Context, username string) (Company, error)

	// Update updates a company
	Update(ctx context.Context, c Company) error
}

// TeamRepository defines data access for teams and memberships.
// All methods include companyID parameter to prevent cross-company data access.
type TeamRepository interface {
	Create(ctx context.Context, t Team) (Team, error)
	GetByID(ctx context.Context, id string, companyID string) (Team, error)
	List(ctx context.Context, companyID string) ([]Team, error)
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, id string, companyID string) error

	AddMember(ctx context.Context, m TeamMember) (TeamMember, error)
	RemoveMember(ctx context.Context, teamID string, employeeID string, companyID string) error
	ListMembers(ctx context.Context, teamID string, companyID string) ([]TeamMember, error)
}

// OrgRepository defines data access for departments, positions and levels.
type OrgRepository interface {
	CreateDepartment(ctx context.Context, d Department) (Department, error)
	ListDepartments(ctx context.Context, companyID string) ([]Department, error)
	GetDepartment(ctx context.Context, id string, companyID string) (Department, error)
	UpdateDepartment(ctx context.Context, d Department) error
	DeleteDepartment(ctx context.Context, id string, companyID string) error

	CreatePosition(ctx context.Context, p Position) (Position, error)
	ListPositions(ctx context.Context, companyID string) ([]Position, error)
	GetPosition(ctx context.Context, id string, companyID string) (Position, error)
	UpdatePosition(ctx context.Context, p Position) error
	DeletePosition(ctx context.Context, id string, companyID string) error

	CreatePositionLevel(ctx context.Context, l PositionLevel) (PositionLevel, error)
	ListPositionLevels(ctx context.Context, companyID string) ([]PositionLevel, error)
	GetPositionLevel(ctx context.Context, id string, companyID string) (PositionLevel, error)
	UpdatePositionLevel(ctx context.Context, l PositionLevel) error
	DeletePositionLevel(ctx context.Context, id string, companyID string) error
}
