package ports

import (
	"context"

	"github.com/estately/apartments-api/internal/core/domain"
)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// AuthService issues and validates bearer tokens and resolves callers.
type AuthService interface {
	// Register creates an account and mints a token for it, so a new user
	// is signed in immediately.
	Register(ctx context.Context, input RegisterInput) (*domain.User, string, error)

	// Login verifies credentials and mints a token. Unknown email and wrong
	// password both return domain.ErrInvalidCredentials — the response never
	// reveals which one it was.
	Login(ctx context.Context, email, password string) (string, error)

	// ValidateToken checks signature and expiry and returns the subject
	// user id. Fails with domain.ErrTokenExpired or domain.ErrTokenInvalid.
	ValidateToken(token string) (string, error)

	// ResolveCaller loads the user behind a validated token subject and
	// projects it into the policy evaluator's caller shape.
	ResolveCaller(ctx context.Context, userID string) (domain.Caller, error)

	// GetUser fetches a user by id.
	GetUser(ctx context.Context, id string) (*domain.User, error)
}
