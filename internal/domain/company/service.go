package company

import "context"

// CompanyService covers the company profile plus the org structure under it
// (teams, departments, positions, position levels).
type CompanyService interface {
	GetMyCompany(ctx context.Context) (Company, error)
	UpdateMyCompany(ctx context.Context, req UpdateCompanyRequest) (Company, error)

	CreateTeam(ctx context.Context, req CreateTeamRequest) (Team, error)
	ListTeams(ctx context.Context) ([]Team, error)
	GetTeam(ctx context.Context, id string) (Team, error)
	UpdateTeam(ctx context.Context, id string, req CreateTeamRequest) (Team, error)
	DeleteTeam(ctx context.Context, id string) error
	AddTeamMember(ctx context.Context, teamID string, req AddTeamMemberRequest) (TeamMember, error)
	RemoveTeamMember(ctx context.Context, teamID string, employeeID string) error
	ListTeamMembers(ctx context.Context, teamID string) ([]TeamMember, error)

	CreateDepartment(ctx context.Context, req CreateNamedRequest) (Department, error)
	ListDepartments(ctx context.Context) ([]Department, error)
	UpdateDepartment(ctx context.Context, id string, req CreateNamedRequest) (Department, error)
	DeleteDepartment(ctx context.Context, id string) error

	CreatePosition(ctx context.Context, req CreateNamedRequest) (Position, error)
	ListPositions(ctx context.Context) ([]Position, error)
	UpdatePosition(ctx context.Context, id string, req CreateNamedRequest) (Position, error)
	DeletePosition(ctx context.Context, id string) error

	CreatePositionLevel(ctx context.Context, req CreatePositionLevelRequest) (PositionLevel, error)
	ListPositionLevels(ctx context.Context) ([]PositionLevel, error)
	UpdatePositionLevel(ctx context.Context, id string, req CreatePositionLevelRequest) (PositionLevel, error)
	DeletePositionLevel(ctx context.Context, id string) error
}
