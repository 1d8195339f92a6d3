package auth

import (
	"context"

	"github.com/harshadbhandure/money-matters/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the session layer.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, email, name, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	// Unknown email and wrong credential fail with the same error.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ChangeCredential verifies current and replaces it with next.
	ChangeCredential(ctx context.Context, userID, current, next string) error

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
