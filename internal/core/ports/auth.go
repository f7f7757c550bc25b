package ports

import (
	"context"

	"github.com/edukit/coursehub/internal/core/domain"
)

// AuthService defines the business logic for authentication.
type AuthService interface {
	// Register creates a user from the given input and returns a signed
	// access token for the new account.
	Register(ctx context.Context, in domain.RegisterInput) (string, error)
	// Login validates credentials and returns a signed access token.
	Login(ctx context.Context, creds domain.Credentials) (string, error)
	// Authenticate verifies a bearer token and resolves its subject.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// UserRepository defines the persistence layer for users.
type UserRepository interface {
	// Create persists a new user. A duplicate email yields domain.ErrEmailTaken.
	Create(ctx context.Context, user domain.User) error
	// GetByEmail retrieves a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByID retrieves a user by their ID.
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}
