package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrEmployeeInactive     = errors.New("employee is deactivated")
	ErrEmailAlreadyAssigned = errors.New("email is already assigned to another employee")
)
