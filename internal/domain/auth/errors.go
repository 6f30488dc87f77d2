package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrOAuthStateMismatch  = errors.New("oauth state mismatch")
	ErrOAuthEmailNotFound  = errors.New("no account registered for this google account")
)
