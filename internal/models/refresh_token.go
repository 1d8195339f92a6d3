package models

import "time"

// RefreshToken is the stored record of an issued refresh token.
// Only a one-way hash of the token is kept; deleting the row revokes it.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Active reports whether the token is still usable at now.
func (t *RefreshToken) Active(now time.Time) bool {
	return now.Before(t.ExpiresAt)
}
