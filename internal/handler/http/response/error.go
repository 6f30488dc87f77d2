package response

import (
	"errors"
	"net/http"

	"github.com/worklens/workforce-backend-go/internal/domain/attendance"
	"github.com/worklens/workforce-backend-go/internal/domain/auth"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/domain/employee"
	"github.com/worklens/workforce-backend-go/internal/domain/face"
	"github.com/worklens/workforce-backend-go/internal/domain/location"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/domain/user"
	"github.com/worklens/workforce-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth / user domain errors
	case errors.Is(err, user.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidRefreshToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrOAuthEmailNotFound):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailAlreadyTaken):
		Conflict(w, "Email is already registered")

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrUsernameAlreadyTaken):
		Conflict(w, "Company username is already taken")
	case errors.Is(err, company.ErrTeamNotFound):
		NotFound(w, "Team not found")
	case errors.Is(err, company.ErrTeamMemberExists):
		Conflict(w, "Employee is already a member of this team")
	case errors.Is(err, company.ErrTeamMemberNotFound):
		NotFound(w, "Team member not found")
	case errors.Is(err, company.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, company.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, company.ErrPositionLevelNotFound):
		NotFound(w, "Position level not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is deactivated")
	case errors.Is(err, employee.ErrEmailAlreadyAssigned):
		Conflict(w, "Email is already assigned to another employee")

	// Face domain errors
	case errors.Is(err, face.ErrNoBiometricProfile):
		NotFound(w, "No face profile registered")
	case errors.Is(err, face.ErrEncoderUnavailable):
		ServiceUnavailable(w, "Face encoding service is unavailable")
	case errors.Is(err, face.ErrBiometricProcessing):
		UnprocessableEntity(w, "BIOMETRIC_ERROR", err.Error())

	// Location domain errors
	case errors.Is(err, location.ErrLocationNotFound):
		NotFound(w, "Allowed location not found")
	case errors.Is(err, location.ErrLocationNameTaken):
		Conflict(w, "A location with this name already exists for the employee")
	case errors.Is(err, location.ErrGeofenceNotConfigured):
		BadRequest(w, "No geofence configured for this employee", nil)

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameTaken):
		Conflict(w, "A shift with this name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is referenced by assignments and cannot be deleted")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Shift assignment not found")
	case errors.Is(err, shift.ErrUserShiftNotFound):
		NotFound(w, "No shift found for this employee")
	case errors.Is(err, shift.ErrShiftOverlap):
		Conflict(w, "Employee already has an overlapping shift")
	case errors.Is(err, shift.ErrNoShiftsMaterialized):
		UnprocessableEntity(w, "NO_SHIFTS_MATERIALIZED", "No user shifts could be created for this assignment")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrMissingLocation):
		BadRequest(w, "Latitude and longitude are required to mark attendance", nil)
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoAttendanceYet):
		NotFound(w, "No attendance recorded yet")
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, "Not allowed to access this attendance record")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
