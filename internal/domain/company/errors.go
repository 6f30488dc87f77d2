package company

import "errors"

// Company domain errors
var (
	ErrCompanyNotFound       = errors.New("company not found")
	ErrUsernameAlreadyTaken  = errors.New("company username is already taken")
	ErrTeamNotFound          = errors.New("team not found")
	ErrTeamMemberExists      = errors.New("employee is already a member of this team")
	ErrTeamMemberNotFound    = errors.New("team member not found")
	ErrDepartmentNotFound    = errors.New("department not found")
	ErrPositionNotFound      = errors.New("position not found")
	ErrPositionLevelNotFound = errors.New("position level not found")
)
