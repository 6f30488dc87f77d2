package shift

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
)

const (
	rotCompanyID  = "01890a5d-ac96-774b-bcce-b30209000010"
	rotEmployeeID = "01890a5d-ac96-774b-bcce-b30209000011"
)

// --- fakes ---

type fakeShiftRepo struct {
	shifts []shift.Shift
}

func (f *fakeShiftRepo) Create(_ context.Context, s shift.Shift) (shift.Shift, error) {
	f.shifts = append(f.shifts, s)
	return s, nil
}

func (f *fakeShiftRepo) GetByID(_ context.Context, id string, companyID string) (shift.Shift, error) {
	for _, s := range f.shifts {
		if s.ID == id && s.CompanyID == companyID {
			return s, nil
		}
	}
	return shift.Shift{}, shift.ErrShiftNotFound
}

func (f *fakeShiftRepo) ListByCompany(_ context.Context, companyID string) ([]shift.Shift, error) {
	var out []shift.Shift
	for _, s := range f.shifts {
		if s.CompanyID == companyID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeShiftRepo) Update(_ context.Context, _ shift.Shift) error {
	return nil
}

func (f *fakeShiftRepo) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

type fakeAssignmentRepo struct {
	assignments []shift.Assignment
}

func (f *fakeAssignmentRepo) Create(_ context.Context, a shift.Assignment) (shift.Assignment, error) {
	f.assignments = append(f.assignments, a)
	return a, nil
}

func (f *fakeAssignmentRepo) GetByID(_ context.Context, id string, companyID string) (shift.Assignment, error) {
	for _, a := range f.assignments {
		if a.ID == id && a.CompanyID == companyID {
			return a, nil
		}
	}
	return shift.Assignment{}, shift.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) List(_ context.Context, companyID string) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for _, a := range f.assignments {
		if a.CompanyID == companyID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Update(_ context.Context, a shift.Assignment) error {
	for i := range f.assignments {
		if f.assignments[i].ID == a.ID {
			f.assignments[i] = a
			return nil
		}
	}
	return shift.ErrAssignmentNotFound
}

func (f *fakeAssignmentRepo) Delete(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeAssignmentRepo) ListAutoRotating(_ context.Context, day time.Time) ([]shift.Assignment, error) {
	var out []shift.Assignment
	for i := range f.assignments {
		a := f.assignments[i]
		if a.AutoRotate && a.Covers(day) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeRotationUserShiftRepo struct {
	seq  int
	rows []shift.UserShift
}

func (f *fakeRotationUserShiftRepo) Create(_ context.Context, us shift.UserShift) (shift.UserShift, error) {
	f.seq++
	us.ID = fmt.Sprintf("user-shift-%d", f.seq)
	f.rows = append(f.rows, us)
	return us, nil
}

func (f *fakeRotationUserShiftRepo) ListActiveByEmployee(_ context.Context, employeeID string, _ time.Time, companyID string) ([]shift.UserShift, error) {
	var out []shift.UserShift
	for _, us := range f.rows {
		if us.EmployeeID == employeeID && us.CompanyID == companyID && us.IsActive {
			out = append(out, us)
		}
	}
	return out, nil
}

func (f *fakeRotationUserShiftRepo) ListByEmployee(_ context.Context, employeeID string, companyID string) ([]shift.UserShift, error) {
	var out []shift.UserShift
	for _, us := range f.rows {
		if us.EmployeeID == employeeID && us.CompanyID == companyID {
			out = append(out, us)
		}
	}
	return out, nil
}

func (f *fakeRotationUserShiftRepo) ListActiveByAssignment(_ context.Context, assignmentID string, companyID string) ([]shift.UserShift, error) {
	var out []shift.UserShift
	for _, us := range f.rows {
		if us.AssignmentID != nil && *us.AssignmentID == assignmentID && us.CompanyID == companyID && us.IsActive {
			out = append(out, us)
		}
	}
	return out, nil
}

func (f *fakeRotationUserShiftRepo) ListActiveByShift(_ context.Context, shiftID string, companyID string) ([]shift.UserShift, error) {
	var out []shift.UserShift
	for _, us := range f.rows {
		if us.ShiftID == shiftID && us.CompanyID == companyID && us.IsActive {
			out = append(out, us)
		}
	}
	return out, nil
}

func (f *fakeRotationUserShiftRepo) DeactivateByAssignment(_ context.Context, assignmentID string, endDate time.Time, companyID string) error {
	for i := range f.rows {
		us := &f.rows[i]
		if us.AssignmentID != nil && *us.AssignmentID == assignmentID && us.CompanyID == companyID && us.IsActive {
			us.IsActive = false
			d := endDate
			us.EndDate = &d
		}
	}
	return nil
}

func (f *fakeRotationUserShiftRepo) DeactivateByEmployee(_ context.Context, employeeID string, endDate time.Time, companyID string) error {
	for i := range f.rows {
		us := &f.rows[i]
		if us.EmployeeID == employeeID && us.CompanyID == companyID && us.IsActive {
			us.IsActive = false
			d := endDate
			us.EndDate = &d
		}
	}
	return nil
}

func (f *fakeRotationUserShiftRepo) activeRows() []shift.UserShift {
	var out []shift.UserShift
	for _, us := range f.rows {
		if us.IsActive {
			out = append(out, us)
		}
	}
	return out
}

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, e)
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id && e.CompanyID == companyID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.ListFilter, _ string) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.Employee) error {
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeEmployeeRepo) ListActiveByDepartment(_ context.Context, departmentID string, companyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.CompanyID == companyID && e.IsActive && e.DepartmentID != nil && *e.DepartmentID == departmentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActiveByTeam(_ context.Context, _ string, _ string) ([]employee.Employee, error) {
	return nil, nil
}

// --- fixtures ---

type rotationFixture struct {
	svc         shift.ShiftService
	shifts      *fakeShiftRepo
	assignments *fakeAssignmentRepo
	userShifts  *fakeRotationUserShiftRepo
	employees   *fakeEmployeeRepo
}

func newRotationFixture() *rotationFixture {
	f := &rotationFixture{
		shifts:      &fakeShiftRepo{},
		assignments: &fakeAssignmentRepo{},
		userShifts:  &fakeRotationUserShiftRepo{},
		employees:   &fakeEmployeeRepo{},
	}
	f.svc = NewShiftService(nil, f.shifts, f.assignments, f.userShifts, f.employees)
	return f
}

func rotationShift(id, name string, startHour, endHour int) shift.Shift {
	return shift.Shift{
		ID:           id,
		CompanyID:    rotCompanyID,
		Name:         name,
		StartMinutes: startHour * 60,
		EndMinutes:   endHour * 60,
		Weekdays:     shift.AllWeekdays,
	}
}

func activeEmployee(id string) employee.Employee {
	return employee.Employee{
		ID:         id,
		CompanyID:  rotCompanyID,
		Name:       "Employee " + id,
		Role:       "employee",
		BaseSalary: decimal.Zero,
		IsActive:   true,
	}
}

func daysAgo(today time.Time, n int) *time.Time {
	d := shift.DateOnly(today.AddDate(0, 0, -n))
	return &d
}

// --- tests ---

func TestNextShift(t *testing.T) {
	shifts := []shift.Shift{
		{ID: "shift-a"},
		{ID: "shift-b"},
		{ID: "shift-c"},
	}

	assert.Equal(t, "shift-b", nextShift(shifts, "shift-a").ID)
	assert.Equal(t, "shift-c", nextShift(shifts, "shift-b").ID)
	// Wraps at the end.
	assert.Equal(t, "shift-a", nextShift(shifts, "shift-c").ID)
	// A current shift no longer in the list restarts at the first.
	assert.Equal(t, "shift-a", nextShift(shifts, "deleted").ID)
}

func TestRunDueRotations_AdvancesDueAssignment(t *testing.T) {
	f := newRotationFixture()
	today := shift.DateOnly(time.Now().UTC())

	f.shifts.shifts = []shift.Shift{
		rotationShift("shift-a", "Morning", 6, 14),
		rotationShift("shift-b", "Afternoon", 15, 23),
	}
	f.employees.employees = []employee.Employee{activeEmployee(rotEmployeeID)}

	assignmentID := "assignment-1"
	f.assignments.assignments = []shift.Assignment{{
		ID:               assignmentID,
		ShiftID:          "shift-a",
		CompanyID:        rotCompanyID,
		Target:           shift.Target{Kind: shift.TargetIndividual, ID: rotEmployeeID},
		StartDate:        today.AddDate(0, 0, -30),
		AutoRotate:       true,
		RotationDays:     15,
		LastRotationDate: daysAgo(today, 16),
	}}

	morning := f.shifts.shifts[0]
	f.userShifts.rows = []shift.UserShift{{
		ID:           "user-shift-old",
		EmployeeID:   rotEmployeeID,
		ShiftID:      "shift-a",
		CompanyID:    rotCompanyID,
		AssignmentID: &assignmentID,
		StartDate:    today.AddDate(0, 0, -16),
		IsActive:     true,
		Shift:        &morning,
	}}

	report, err := f.svc.RunDueRotations(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 1, report.Rotated)
	assert.Equal(t, 0, report.Skipped)
	assert.Empty(t, report.Failures)

	// Assignment advanced to the next shift and stamped.
	updated := f.assignments.assignments[0]
	assert.Equal(t, "shift-b", updated.ShiftID)
	require.NotNil(t, updated.LastRotationDate)
	assert.True(t, updated.LastRotationDate.Equal(today))

	// Old user shift closed, a fresh one materialized on the new shift.
	assert.False(t, f.userShifts.rows[0].IsActive)
	require.NotNil(t, f.userShifts.rows[0].EndDate)

	active := f.userShifts.activeRows()
	require.Len(t, active, 1)
	assert.Equal(t, "shift-b", active[0].ShiftID)
	assert.Equal(t, rotEmployeeID, active[0].EmployeeID)
	require.NotNil(t, active[0].AssignmentID)
	assert.Equal(t, assignmentID, *active[0].AssignmentID)
	assert.True(t, active[0].StartDate.Equal(today))
}

func TestRunDueRotations_SingleShiftCompanySkipped(t *testing.T) {
	f := newRotationFixture()
	today := shift.DateOnly(time.Now().UTC())

	f.shifts.shifts = []shift.Shift{rotationShift("shift-a", "Morning", 6, 14)}
	f.assignments.assignments = []shift.Assignment{{
		ID:           "assignment-1",
		ShiftID:      "shift-a",
		CompanyID:    rotCompanyID,
		Target:       shift.Target{Kind: shift.TargetIndividual, ID: rotEmployeeID},
		StartDate:    today.AddDate(0, 0, -30),
		AutoRotate:   true,
		RotationDays: 15,
	}}

	report, err := f.svc.RunDueRotations(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 0, report.Rotated)
	assert.Equal(t, 1, report.Skipped)
	assert.Empty(t, report.Failures)

	// Nothing moved.
	assert.Equal(t, "shift-a", f.assignments.assignments[0].ShiftID)
	assert.Nil(t, f.assignments.assignments[0].LastRotationDate)
}

func TestRunDueRotations_NotDueUntouched(t *testing.T) {
	f := newRotationFixture()
	today := shift.DateOnly(time.Now().UTC())

	f.shifts.shifts = []shift.Shift{
		rotationShift("shift-a", "Morning", 6, 14),
		rotationShift("shift-b", "Afternoon", 15, 23),
	}
	f.assignments.assignments = []shift.Assignment{{
		ID:               "assignment-1",
		ShiftID:          "shift-a",
		CompanyID:        rotCompanyID,
		Target:           shift.Target{Kind: shift.TargetIndividual, ID: rotEmployeeID},
		StartDate:        today.AddDate(0, 0, -30),
		AutoRotate:       true,
		RotationDays:     15,
		LastRotationDate: daysAgo(today, 1),
	}}

	report, err := f.svc.RunDueRotations(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 0, report.Rotated)
	assert.Equal(t, "shift-a", f.assignments.assignments[0].ShiftID)
	assert.Empty(t, f.userShifts.rows)
}

func TestRunDueRotations_NeverRotatedIsDue(t *testing.T) {
	f := newRotationFixture()
	today := shift.DateOnly(time.Now().UTC())

	f.shifts.shifts = []shift.Shift{
		rotationShift("shift-a", "Morning", 6, 14),
		rotationShift("shift-b", "Afternoon", 15, 23),
	}
	f.employees.employees = []employee.Employee{activeEmployee(rotEmployeeID)}
	f.assignments.assignments = []shift.Assignment{{
		ID:           "assignment-1",
		ShiftID:      "shift-a",
		CompanyID:    rotCompanyID,
		Target:       shift.Target{Kind: shift.TargetIndividual, ID: rotEmployeeID},
		StartDate:    today,
		AutoRotate:   true,
		RotationDays: 15,
	}}

	report, err := f.svc.RunDueRotations(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Rotated)
	assert.Equal(t, "shift-b", f.assignments.assignments[0].ShiftID)
}

func TestRunDueRotations_ConflictingEmployeeSkippedButRotationLands(t *testing.T) {
	f := newRotationFixture()
	today := shift.DateOnly(time.Now().UTC())

	departmentID := "department-1"
	f.shifts.shifts = []shift.Shift{
		rotationShift("shift-a", "Morning", 6, 14),
		rotationShift("shift-b", "Afternoon", 15, 23),
	}

	clear := activeEmployee("employee-clear")
	clear.DepartmentID = &departmentID
	busy := activeEmployee("employee-busy")
	busy.DepartmentID = &departmentID
	f.employees.employees = []employee.Employee{clear, busy}

	assignmentID := "assignment-1"
	f.assignments.assignments = []shift.Assignment{{
		ID:               assignmentID,
		ShiftID:          "shift-a",
		CompanyID:        rotCompanyID,
		Target:           shift.Target{Kind: shift.TargetDepartment, ID: departmentID},
		StartDate:        today.AddDate(0, 0, -30),
		AutoRotate:       true,
		RotationDays:     15,
		LastRotationDate: daysAgo(today, 15),
	}}

	// The busy employee already holds an evening shift from elsewhere that
	// collides with the rotation target window.
	evening := rotationShift("shift-other", "Evening", 16, 23)
	otherAssignment := "assignment-other"
	f.userShifts.rows = []shift.UserShift{{
		ID:           "user-shift-busy",
		EmployeeID:   "employee-busy",
		ShiftID:      "shift-other",
		CompanyID:    rotCompanyID,
		AssignmentID: &otherAssignment,
		StartDate:    today.AddDate(0, 0, -10),
		IsActive:     true,
		Shift:        &evening,
	}}

	report, err := f.svc.RunDueRotations(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Rotated)
	assert.Empty(t, report.Failures)
	assert.Equal(t, "shift-b", f.assignments.assignments[0].ShiftID)

	// Only the unencumbered employee got a new row; the busy one kept
	// their existing shift untouched.
	var materialized []shift.UserShift
	for _, us := range f.userShifts.activeRows() {
		if us.AssignmentID != nil && *us.AssignmentID == assignmentID {
			materialized = append(materialized, us)
		}
	}
	require.Len(t, materialized, 1)
	assert.Equal(t, "employee-clear", materialized[0].EmployeeID)
	assert.True(t, f.userShifts.rows[0].IsActive)
}

func TestRunDueRotations_EmptyPopulationIsFailure(t *testing.T) {
	f := newRotationFixture()
	today := shift.DateOnly(time.Now().UTC())

	f.shifts.shifts = []shift.Shift{
		rotationShift("shift-a", "Morning", 6, 14),
		rotationShift("shift-b", "Afternoon", 15, 23),
	}
	f.assignments.assignments = []shift.Assignment{{
		ID:           "assignment-1",
		ShiftID:      "shift-a",
		CompanyID:    rotCompanyID,
		Target:       shift.Target{Kind: shift.TargetDepartment, ID: "empty-department"},
		StartDate:    today,
		AutoRotate:   true,
		RotationDays: 15,
	}}

	report, err := f.svc.RunDueRotations(context.Background(), time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 0, report.Rotated)
	require.Len(t, report.Failures, 1)
	assert.Contains(t, report.Failures[0], "assignment-1")
}
