package user

import "errors"

// User domain errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyTaken  = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
