package auth

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// Refresh tokens are stored as bcrypt(sha256(token)). bcrypt rejects inputs
// longer than 72 bytes and a signed JWT is always longer, so the token is
// digested first.

func hashRefreshToken(token string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(refreshDigest(token), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func refreshTokenMatches(hash, token string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), refreshDigest(token)) == nil
}

func refreshDigest(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	out := make([]byte, hex.EncodedLen(len(sum)))
	hex.Encode(out, sum[:])
	return out
}
