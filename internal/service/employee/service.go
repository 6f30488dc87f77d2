package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/domain/user"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
	"github.com/worklens/workforce-backend-go/internal/pkg/validator"
	"github.com/worklens/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	users      user.UserRepository
	org        company.OrgRepository
	userShifts shift.UserShiftRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	userRepository user.UserRepository,
	orgRepository company.OrgRepository,
	userShiftRepository shift.UserShiftRepository,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		users:              userRepository,
		org:                orgRepository,
		userShifts:         userShiftRepository,
	}
}

func claimsFromContext(ctx context.Context) (companyID string, employeeID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	// employee_id may be absent for accounts without an employee record
	employeeID, _ = claims["employee_id"].(string)

	return companyID, employeeID, nil
}

// Create implements employee.EmployeeService. The login account and the
// employee record are created in one transaction.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return employee.Employee{}, user.ErrEmailAlreadyTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.checkOrgRefs(ctx, companyID, req.DepartmentID, req.PositionID, req.PositionLevelID); err != nil {
		return employee.Employee{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashed := string(hash)

	var hireDate *time.Time
	if req.HireDate != "" {
		d, _ := validator.IsValidDate(req.HireDate)
		hireDate = &d
	}

	baseSalary := decimal.Zero
	if req.BaseSalary != "" {
		baseSalary, _ = decimal.NewFromString(req.BaseSalary)
	}

	status := employee.StatusFullTime
	if req.EmploymentStatus != "" {
		status = employee.EmploymentStatus(req.EmploymentStatus)
	}

	var created employee.Employee
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		newUser, err := s.users.Create(txCtx, user.User{
			CompanyID:    &companyID,
			Email:        req.Email,
			PasswordHash: &hashed,
			Role:         user.Role(req.Role),
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		created, err = s.EmployeeRepository.Create(txCtx, employee.Employee{
			UserID:           newUser.ID,
			CompanyID:        companyID,
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			DepartmentID:     req.DepartmentID,
			PositionID:       req.PositionID,
			PositionLevelID:  req.PositionLevelID,
			Role:             req.Role,
			HireDate:         hireDate,
			BaseSalary:       baseSalary,
			EmploymentStatus: status,
			IsActive:         true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee: %w", err)
		}

		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByID(ctx, id, companyID)
}

// GetMyProfile implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetMyProfile(ctx context.Context) (employee.Employee, error) {
	companyID, employeeID, err := claimsFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	if employeeID == "" {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.Normalize()
	return s.EmployeeRepository.List(ctx, filter, companyID)
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	current, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.Employee{}, err
	}

	if err := s.checkOrgRefs(ctx, companyID, req.DepartmentID, req.PositionID, req.PositionLevelID); err != nil {
		return employee.Employee{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Phone != nil {
		current.Phone = req.Phone
	}
	if req.DepartmentID != nil {
		current.DepartmentID = req.DepartmentID
	}
	if req.PositionID != nil {
		current.PositionID = req.PositionID
	}
	if req.PositionLevelID != nil {
		current.PositionLevelID = req.PositionLevelID
	}
	if req.Role != nil {
		current.Role = *req.Role
	}
	if req.BaseSalary != nil {
		current.BaseSalary, _ = decimal.NewFromString(*req.BaseSalary)
	}
	if req.EmploymentStatus != nil {
		current.EmploymentStatus = employee.EmploymentStatus(*req.EmploymentStatus)
	}

	if err := s.EmployeeRepository.Update(ctx, current); err != nil {
		return employee.Employee{}, err
	}

	return s.EmployeeRepository.GetByID(ctx, id, companyID)
}

// Deactivate implements employee.EmployeeService. The employee's user shifts
// end today so the rotation driver stops materializing for them.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, id string) error {
	companyID, _, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, id, companyID); err != nil {
		return err
	}

	today := shift.DateOnly(time.Now().UTC())

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.EmployeeRepository.Deactivate(txCtx, id, companyID); err != nil {
			return err
		}
		return s.userShifts.DeactivateByEmployee(txCtx, id, today, companyID)
	})
}

// checkOrgRefs verifies referenced departments, positions and levels exist
// in the caller's company.
func (s *EmployeeServiceImpl) checkOrgRefs(ctx context.Context, companyID string, departmentID, positionID, positionLevelID *string) error {
	if departmentID != nil {
		if _, err := s.org.GetDepartment(ctx, *departmentID, companyID); err != nil {
			return err
		}
	}
	if positionID != nil {
		if _, err := s.org.GetPosition(ctx, *positionID, companyID); err != nil {
			return err
		}
	}
	if positionLevelID != nil {
		if _, err := s.org.GetPositionLevel(ctx, *positionLevelID, companyID); err != nil {
			return err
		}
	}
	return nil
}
