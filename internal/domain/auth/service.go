package auth

import (
	"context"
)

type AuthService interface {
	// Register bootstraps a company with its admin account and logs the
	// admin in
	Register(ctx context.Context, req RegisterRequest) (AuthSession, error)

	// Login authenticates with email and password
	Login(ctx context.Context, req LoginRequest) (AuthSession, error)

	// Refresh exchanges a valid refresh token for a new access token
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// GoogleAuthURL builds the Google consent URL and the state to pin
	// in a cookie
	GoogleAuthURL(userAgent string) (url string, state string)

	// GoogleCallback finishes the OAuth flow. Only existing accounts may
	// log in this way
	GoogleCallback(ctx context.Context, state string, expectedState string, code string) (AuthSession, error)
}
