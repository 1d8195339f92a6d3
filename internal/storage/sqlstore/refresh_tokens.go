package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harshadbhandure/money-matters/internal/models"
)

// CreateRefreshToken persists a hashed refresh token.
func (s *Store) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	// Generate ID if not set
	if token.ID == "" {
		token.ID = uuid.New().String()
	}
	if token.CreatedAt.IsZero() {
		token.CreatedAt = time.Now().UTC()
	}

	_, err := s.exec(ctx, s.db,
		`INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		token.ID, token.UserID, token.TokenHash, toMillis(token.ExpiresAt), toMillis(token.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert refresh token: %w", err)
	}

	return nil
}

// ListRefreshTokensByUser retrieves all stored tokens for a user, newest first.
func (s *Store) ListRefreshTokensByUser(ctx context.Context, userID string) ([]*models.RefreshToken, error) {
	rows, err := s.query(ctx, s.db,
		`SELECT id, user_id, token_hash, expires_at, created_at
		 FROM refresh_tokens WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list refresh tokens: %w", err)
	}
	defer rows.Close()

	var tokens []*models.RefreshToken
	for rows.Next() {
		token := &models.RefreshToken{}
		var expiresAt, createdAt int64
		if err := rows.Scan(&token.ID, &token.UserID, &token.TokenHash, &expiresAt, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan refresh token: %w", err)
		}
		token.ExpiresAt = fromMillis(expiresAt)
		token.CreatedAt = fromMillis(createdAt)
		tokens = append(tokens, token)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate refresh tokens: %w", err)
	}

	return tokens, nil
}

// DeleteRefreshToken removes a token by ID and reports whether it existed.
func (s *Store) DeleteRefreshToken(ctx context.Context, id string) (bool, error) {
	res, err := s.exec(ctx, s.db, `DELETE FROM refresh_tokens WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete refresh token: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return n > 0, nil
}

// DeleteRefreshTokensByUser removes every token belonging to userID.
func (s *Store) DeleteRefreshTokensByUser(ctx context.Context, userID string) (int64, error) {
	res, err := s.exec(ctx, s.db, `DELETE FROM refresh_tokens WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user refresh tokens: %w", err)
	}
	return res.RowsAffected()
}

// DeleteExpiredRefreshTokens removes tokens whose expiry is at or before now.
func (s *Store) DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.exec(ctx, s.db, `DELETE FROM refresh_tokens WHERE expires_at <= ?`, toMillis(now))
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", err)
	}
	return res.RowsAffected()
}
