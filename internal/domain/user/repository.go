package user

import "context"

type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, u User) (User, error)

	// GetByID retrieves a user by ID, with the linked employee ID joined in
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// GetByOAuth retrieves a user by OAuth provider identity
	GetByOAuth(ctx context.Context, provider string, providerID string) (User, error)

	// Update updates an existing user
	Update(ctx context.Context, u User) error
}
