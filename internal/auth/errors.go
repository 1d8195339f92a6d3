package auth

import (
	"errors"

	"github.com/harshadbhandure/money-matters/internal/apperr"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrMissingToken = errors.New("authorization token required")
)

var (
	ErrInvalidCredentials = apperr.Unauthorized("invalid email or password")
	ErrWeakPassword       = apperr.BadRequest("password must be at least %d characters", minPasswordLength)
	ErrEmailExists        = apperr.Conflict("email already registered")
	ErrInvalidEmail       = apperr.BadRequest("a valid email is required")
	ErrNameRequired       = apperr.BadRequest("name is required")

	// ErrInvalidRefreshToken is returned for every refresh failure: bad
	// signature, expiry, or no matching stored record look the same.
	ErrInvalidRefreshToken = apperr.Unauthorized("invalid refresh token")
	ErrTokenUserMismatch   = apperr.BadRequest("token does not match user")
	ErrMalformedToken      = apperr.BadRequest("invalid refresh token")
)
