package company

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
	teams     company.TeamRepository
	org       company.OrgRepository
	employees employee.EmployeeRepository
}

func NewCompanyService(
	companyRepository company.CompanyRepository,
	teamRepository company.TeamRepository,
	orgRepository company.OrgRepository,
	employeeRepository employee.EmployeeRepository,
) company.CompanyService {
	return &CompanyServiceImpl{
		CompanyRepository: companyRepository,
		teams:             teamRepository,
		org:               orgRepository,
		employees:         employeeRepository,
	}
}

func claimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// GetMyCompany implements company.CompanyService.
func (s *CompanyServiceImpl) GetMyCompany(ctx context.Context) (company.Company, error) {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Company{}, err
	}
	return s.CompanyRepository.GetByID(ctx, companyID)
}

// UpdateMyCompany implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateMyCompany(ctx context.Context, req company.UpdateCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Company{}, err
	}

	current, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.Company{}, err
	}

	current.Name = req.Name
	current.Timezone = req.Timezone
	if err := s.CompanyRepository.Update(ctx, current); err != nil {
		return company.Company{}, err
	}

	return current, nil
}

// CreateTeam implements company.CompanyService.
func (s *CompanyServiceImpl) CreateTeam(ctx context.Context, req company.CreateTeamRequest) (company.Team, error) {
	if err := req.Validate(); err != nil {
		return company.Team{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Team{}, err
	}

	return s.teams.Create(ctx, company.Team{CompanyID: companyID, Name: req.Name})
}

// ListTeams implements company.CompanyService.
func (s *CompanyServiceImpl) ListTeams(ctx context.Context) ([]company.Team, error) {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.teams.List(ctx, companyID)
}

// GetTeam implements company.CompanyService.
func (s *CompanyServiceImpl) GetTeam(ctx context.Context, id string) (company.Team, error) {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Team{}, err
	}
	return s.teams.GetByID(ctx, id, companyID)
}

// UpdateTeam implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateTeam(ctx context.Context, id string, req company.CreateTeamRequest) (company.Team, error) {
	if err := req.Validate(); err != nil {
		return company.Team{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Team{}, err
	}

	team, err := s.teams.GetByID(ctx, id, companyID)
	if err != nil {
		return company.Team{}, err
	}

	team.Name = req.Name
	if err := s.teams.Update(ctx, team); err != nil {
		return company.Team{}, err
	}

	return team, nil
}

// DeleteTeam implements company.CompanyService.
func (s *CompanyServiceImpl) DeleteTeam(ctx context.Context, id string) error {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.teams.Delete(ctx, id, companyID)
}

// AddTeamMember implements company.CompanyService. The employee must exist,
// be active and belong to the same company.
func (s *CompanyServiceImpl) AddTeamMember(ctx context.Context, teamID string, req company.AddTeamMemberRequest) (company.TeamMember, error) {
	if err := req.Validate(); err != nil {
		return company.TeamMember{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.TeamMember{}, err
	}

	if _, err := s.teams.GetByID(ctx, teamID, companyID); err != nil {
		return company.TeamMember{}, err
	}

	emp, err := s.employees.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return company.TeamMember{}, err
	}
	if !emp.IsActive {
		return company.TeamMember{}, employee.ErrEmployeeNotFound
	}

	member, err := s.teams.AddMember(ctx, company.TeamMember{TeamID: teamID, EmployeeID: emp.ID})
	if err != nil {
		return company.TeamMember{}, err
	}

	member.EmployeeName = &emp.Name
	return member, nil
}

// RemoveTeamMember implements company.CompanyService.
func (s *CompanyServiceImpl) RemoveTeamMember(ctx context.Context, teamID string, employeeID string) error {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.teams.RemoveMember(ctx, teamID, employeeID, companyID)
}

// ListTeamMembers implements company.CompanyService.
func (s *CompanyServiceImpl) ListTeamMembers(ctx context.Context, teamID string) ([]company.TeamMember, error) {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.teams.GetByID(ctx, teamID, companyID); err != nil {
		return nil, err
	}

	return s.teams.ListMembers(ctx, teamID, companyID)
}

// CreateDepartment implements company.CompanyService.
func (s *CompanyServiceImpl) CreateDepartment(ctx context.Context, req company.CreateNamedRequest) (company.Department, error) {
	if err := req.Validate(); err != nil {
		return company.Department{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Department{}, err
	}

	return s.org.CreateDepartment(ctx, company.Department{CompanyID: companyID, Name: req.Name})
}

// ListDepartments implements company.CompanyService.
func (s *CompanyServiceImpl) ListDepartments(ctx context.Context) ([]company.Department, error) {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.org.ListDepartments(ctx, companyID)
}

// UpdateDepartment implements company.CompanyService.
func (s *CompanyServiceImpl) UpdateDepartment(ctx context.Context, id string, req company.CreateNamedRequest) (company.Department, error) {
	if err := req.Validate(); err != nil {
		return company.Department{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Department{}, err
	}

	dept, err := s.org.GetDepartment(ctx, id, companyID)
	if err != nil {
		return company.Department{}, err
	}

	dept.Name = req.Name
	if err := s.org.UpdateDepartment(ctx, dept); err != nil {
		return company.Department{}, err
	}

	return dept, nil
}

// DeleteDepartment implements company.CompanyService.
func (s *CompanyServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.org.DeleteDepartment(ctx, id, companyID)
}

// CreatePosition implements company.CompanyService.
func (s *CompanyServiceImpl) CreatePosition(ctx context.Context, req company.CreateNamedRequest) (company.Position, error) {
	if err := req.Validate(); err != nil {
		return company.Position{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Position{}, err
	}

	return s.org.CreatePosition(ctx, company.Position{CompanyID: companyID, Name: req.Name})
}

// ListPositions implements company.CompanyService.
func (s *CompanyServiceImpl) ListPositions(ctx context.Context) ([]company.Position, error) {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.org.ListPositions(ctx, companyID)
}

// UpdatePosition implements company.CompanyService.
func (s *CompanyServiceImpl) UpdatePosition(ctx context.Context, id string, req company.CreateNamedRequest) (company.Position, error) {
	if err := req.Validate(); err != nil {
		return company.Position{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.Position{}, err
	}

	pos, err := s.org.GetPosition(ctx, id, companyID)
	if err != nil {
		return company.Position{}, err
	}

	pos.Name = req.Name
	if err := s.org.UpdatePosition(ctx, pos); err != nil {
		return company.Position{}, err
	}

	return pos, nil
}

// DeletePosition implements company.CompanyService.
func (s *CompanyServiceImpl) DeletePosition(ctx context.Context, id string) error {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.org.DeletePosition(ctx, id, companyID)
}

// CreatePositionLevel implements company.CompanyService.
func (s *CompanyServiceImpl) CreatePositionLevel(ctx context.Context, req company.CreatePositionLevelRequest) (company.PositionLevel, error) {
	if err := req.Validate(); err != nil {
		return company.PositionLevel{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.PositionLevel{}, err
	}

	return s.org.CreatePositionLevel(ctx, company.PositionLevel{
		CompanyID: companyID,
		Name:      req.Name,
		Rank:      req.Rank,
	})
}

// ListPositionLevels implements company.CompanyService.
func (s *CompanyServiceImpl) ListPositionLevels(ctx context.Context) ([]company.PositionLevel, error) {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.org.ListPositionLevels(ctx, companyID)
}

// UpdatePositionLevel implements company.CompanyService.
func (s *CompanyServiceImpl) UpdatePositionLevel(ctx context.Context, id string, req company.CreatePositionLevelRequest) (company.PositionLevel, error) {
	if err := req.Validate(); err != nil {
		return company.PositionLevel{}, err
	}

	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return company.PositionLevel{}, err
	}

	level, err := s.org.GetPositionLevel(ctx, id, companyID)
	if err != nil {
		return company.PositionLevel{}, err
	}

	level.Name = req.Name
	level.Rank = req.Rank
	if err := s.org.UpdatePositionLevel(ctx, level); err != nil {
		return company.PositionLevel{}, err
	}

	return level, nil
}

// DeletePositionLevel implements company.CompanyService.
func (s *CompanyServiceImpl) DeletePositionLevel(ctx context.Context, id string) error {
	companyID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.org.DeletePositionLevel(ctx, id, companyID)
}
