package shift

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
	"github.com/worklens/workforce-backend-go/internal/pkg/validator"
	"github.com/worklens/workforce-backend-go/internal/repository/postgresql"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
	assignments shift.AssignmentRepository
	userShifts  shift.UserShiftRepository
	employees   employee.EmployeeRepository
}

func NewShiftService(
	db *database.DB,
	shifts shift.ShiftRepository,
	assignments shift.AssignmentRepository,
	userShifts shift.UserShiftRepository,
	employees employee.EmployeeRepository,
) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shifts,
		assignments:     assignments,
		userShifts:      userShifts,
		employees:       employees,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	// employee_id may be absent for company-level admin operations
	employeeID, _ = claims["employee_id"].(string)

	return employeeID, companyID, nil
}

// CreateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return shift.Shift{}, err
	}

	start, _ := validator.IsValidTimeOfDay(req.StartTime)
	end, _ := validator.IsValidTimeOfDay(req.EndTime)

	return s.ShiftRepository.Create(ctx, shift.Shift{
		CompanyID:    companyID,
		Name:         req.Name,
		StartMinutes: start,
		EndMinutes:   end,
		Weekdays:     shift.WeekdaysFromNames(req.Weekdays),
		GraceMinutes: req.GraceMinutes,
	})
}

// GetShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetShift(ctx context.Context, id string) (shift.Shift, error) {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return shift.Shift{}, err
	}
	return s.ShiftRepository.GetByID(ctx, id, companyID)
}

// ListShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShifts(ctx context.Context) ([]shift.Shift, error) {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.ShiftRepository.ListByCompany(ctx, companyID)
}

// UpdateShift implements shift.ShiftService.
func (s *ShiftServiceImpl) UpdateShift(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.Shift, error) {
	if err := req.Validate(); err != nil {
		return shift.Shift{}, err
	}

	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return shift.Shift{}, err
	}

	existing, err := s.ShiftRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.Shift{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.StartTime != nil {
		start, _ := validator.IsValidTimeOfDay(*req.StartTime)
		existing.StartMinutes = start
	}
	if req.EndTime != nil {
		end, _ := validator.IsValidTimeOfDay(*req.EndTime)
		existing.EndMinutes = end
	}
	if len(req.Weekdays) > 0 {
		existing.Weekdays = shift.WeekdaysFromNames(req.Weekdays)
	}
	if req.GraceMinutes != nil {
		existing.GraceMinutes = req.GraceMinutes
	}

	if err := s.ShiftRepository.Update(ctx, existing); err != nil {
		return shift.Shift{}, err
	}

	return existing, nil
}

// DeleteShift implements shift.ShiftService.
func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, id string) error {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	return s.ShiftRepository.Delete(ctx, id, companyID)
}

// CreateAssignment implements shift.ShiftService.
func (s *ShiftServiceImpl) CreateAssignment(ctx context.Context, req shift.CreateAssignmentRequest) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}

	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return shift.Assignment{}, err
	}

	target := shift.Target{Kind: shift.TargetKind(req.TargetKind), ID: req.TargetID}
	startDate, _ := validator.IsValidDate(req.StartDate)

	var endDate *time.Time
	if req.EndDate != nil {
		d, _ := validator.IsValidDate(*req.EndDate)
		endDate = &d
	}

	rotationDays := shift.DefaultRotationDays
	if req.RotationDays != nil {
		rotationDays = *req.RotationDays
	}

	// The shift must belong to the same company.
	if _, err := s.ShiftRepository.GetByID(ctx, req.ShiftID, companyID); err != nil {
		return shift.Assignment{}, err
	}

	assignment := shift.Assignment{
		ShiftID:      req.ShiftID,
		CompanyID:    companyID,
		Target:       target,
		StartDate:    startDate,
		EndDate:      endDate,
		AutoRotate:   req.AutoRotate,
		RotationDays: rotationDays,
	}

	var materializeErr error
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		assignment, err = s.assignments.Create(txCtx, assignment)
		if err != nil {
			return err
		}
		materializeErr = s.materializeAssignment(txCtx, assignment, startDate)
		if materializeErr != nil {
			// Only a complete failure aborts; a partial report commits.
			if _, partial := materializeErr.(*shift.PartialMaterializationError); !partial {
				return materializeErr
			}
		}
		return nil
	})
	if err != nil {
		return shift.Assignment{}, err
	}

	return assignment, materializeErr
}

// materializeAssignment resolves the assignment's population, snapshots each
// employee's org placement and inserts user shift rows. Employees whose new
// shift would collide with an existing active one are skipped and reported.
func (s *ShiftServiceImpl) materializeAssignment(ctx context.Context, a shift.Assignment, startDate time.Time) error {
	population, err := s.resolvePopulation(ctx, a)
	if err != nil {
		return err
	}
	if len(population) == 0 {
		return shift.ErrNoShiftsMaterialized
	}

	assignedShift, err := s.ShiftRepository.GetByID(ctx, a.ShiftID, a.CompanyID)
	if err != nil {
		return err
	}

	var skipped []shift.SkippedEmployee
	created := 0

	for _, emp := range population {
		candidate := shift.UserShift{
			EmployeeID:      emp.ID,
			ShiftID:         a.ShiftID,
			CompanyID:       a.CompanyID,
			AssignmentID:    &a.ID,
			DepartmentID:    emp.DepartmentID,
			PositionID:      emp.PositionID,
			PositionLevelID: emp.PositionLevelID,
			Role:            emp.Role,
			StartDate:       shift.DateOnly(startDate),
			EndDate:         a.EndDate,
			IsActive:        true,
			Shift:           &assignedShift,
		}

		existing, err := s.userShifts.ListByEmployee(ctx, emp.ID, a.CompanyID)
		if err != nil {
			return err
		}

		conflict := false
		for i := range existing {
			if existing[i].IsActive && shift.Conflicts(candidate, existing[i]) {
				conflict = true
				break
			}
		}
		if conflict {
			skipped = append(skipped, shift.SkippedEmployee{EmployeeID: emp.ID, Reason: shift.ErrShiftOverlap})
			continue
		}

		if _, err := s.userShifts.Create(ctx, candidate); err != nil {
			return err
		}
		created++
	}

	if created == 0 {
		return shift.ErrNoShiftsMaterialized
	}
	if len(skipped) > 0 {
		return &shift.PartialMaterializationError{Skipped: skipped}
	}
	return nil
}

func (s *ShiftServiceImpl) resolvePopulation(ctx context.Context, a shift.Assignment) ([]employee.Employee, error) {
	switch a.Target.Kind {
	case shift.TargetDepartment:
		return s.employees.ListActiveByDepartment(ctx, a.Target.ID, a.CompanyID)
	case shift.TargetTeam:
		return s.employees.ListActiveByTeam(ctx, a.Target.ID, a.CompanyID)
	case shift.TargetIndividual:
		emp, err := s.employees.GetByID(ctx, a.Target.ID, a.CompanyID)
		if err != nil {
			return nil, err
		}
		if !emp.IsActive {
			return nil, nil
		}
		return []employee.Employee{emp}, nil
	default:
		return nil, fmt.Errorf("unknown assignment target kind: %s", a.Target.Kind)
	}
}

// GetAssignment implements shift.ShiftService.
func (s *ShiftServiceImpl) GetAssignment(ctx context.Context, id string) (shift.Assignment, error) {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return shift.Assignment{}, err
	}
	return s.assignments.GetByID(ctx, id, companyID)
}

// ListAssignments implements shift.ShiftService.
func (s *ShiftServiceImpl) ListAssignments(ctx context.Context) ([]shift.Assignment, error) {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.assignments.List(ctx, companyID)
}

// UpdateAssignment implements shift.ShiftService. Changing the shift
// re-materializes the assignment from today.
func (s *ShiftServiceImpl) UpdateAssignment(ctx context.Context, id string, req shift.UpdateAssignmentRequest) (shift.Assignment, error) {
	if err := req.Validate(); err != nil {
		return shift.Assignment{}, err
	}

	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return shift.Assignment{}, err
	}

	a, err := s.assignments.GetByID(ctx, id, companyID)
	if err != nil {
		return shift.Assignment{}, err
	}

	shiftChanged := false
	if req.ShiftID != nil && *req.ShiftID != a.ShiftID {
		if _, err := s.ShiftRepository.GetByID(ctx, *req.ShiftID, companyID); err != nil {
			return shift.Assignment{}, err
		}
		a.ShiftID = *req.ShiftID
		shiftChanged = true
	}
	if req.EndDate != nil {
		d, _ := validator.IsValidDate(*req.EndDate)
		a.EndDate = &d
	}
	if req.AutoRotate != nil {
		a.AutoRotate = *req.AutoRotate
	}
	if req.RotationDays != nil {
		a.RotationDays = *req.RotationDays
	}

	today := shift.DateOnly(time.Now())

	var materializeErr error
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.assignments.Update(txCtx, a); err != nil {
			return err
		}
		if shiftChanged {
			if err := s.userShifts.DeactivateByAssignment(txCtx, a.ID, today, companyID); err != nil {
				return err
			}
			materializeErr = s.materializeAssignment(txCtx, a, today)
			if materializeErr != nil {
				if _, partial := materializeErr.(*shift.PartialMaterializationError); !partial {
					return materializeErr
				}
			}
		}
		return nil
	})
	if err != nil {
		return shift.Assignment{}, err
	}

	return a, materializeErr
}

// DeleteAssignment implements shift.ShiftService. Its active user shifts are
// closed, not removed.
func (s *ShiftServiceImpl) DeleteAssignment(ctx context.Context, id string) error {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}

	today := shift.DateOnly(time.Now())

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.userShifts.DeactivateByAssignment(txCtx, id, today, companyID); err != nil {
			return err
		}
		return s.assignments.Delete(txCtx, id, companyID)
	})
}

// ListMyShifts implements shift.ShiftService.
func (s *ShiftServiceImpl) ListMyShifts(ctx context.Context) ([]shift.UserShift, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if employeeID == "" {
		return nil, fmt.Errorf("employee_id claim is missing or invalid")
	}
	return s.userShifts.ListByEmployee(ctx, employeeID, companyID)
}

// GetCurrentShift implements shift.ShiftService.
func (s *ShiftServiceImpl) GetCurrentShift(ctx context.Context) (shift.UserShift, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return shift.UserShift{}, err
	}
	if employeeID == "" {
		return shift.UserShift{}, fmt.Errorf("employee_id claim is missing or invalid")
	}

	now := time.Now()
	active, err := s.userShifts.ListActiveByEmployee(ctx, employeeID, now, companyID)
	if err != nil {
		return shift.UserShift{}, err
	}

	minute := now.Hour()*60 + now.Minute()
	for i := range active {
		us := &active[i]
		if us.Shift != nil && us.Shift.Weekdays.Contains(now.Weekday()) && us.Shift.WindowContains(minute) {
			return *us, nil
		}
	}

	return shift.UserShift{}, shift.ErrUserShiftNotFound
}

// ListShiftUsers implements shift.ShiftService.
func (s *ShiftServiceImpl) ListShiftUsers(ctx context.Context, shiftID string) ([]shift.UserShift, error) {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.ShiftRepository.GetByID(ctx, shiftID, companyID); err != nil {
		return nil, err
	}

	return s.userShifts.ListActiveByShift(ctx, shiftID, companyID)
}

func logPartialMaterialization(err error) {
	if partial, ok := err.(*shift.PartialMaterializationError); ok {
		slog.Warn("Materialization skipped employees", "skipped", len(partial.Skipped), "detail", partial.Error())
	}
}
