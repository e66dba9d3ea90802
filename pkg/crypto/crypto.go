package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateRandomString produces a cryptographically random base64url string of n bytes.
func GenerateRandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GeneratePreviewID generates a preview entry id (16 bytes = 22 chars
// base64url). Hard enough to guess for a five-minute window; the id is
// not a standalone security boundary.
func GeneratePreviewID() (string, error) {
	return GenerateRandomString(16)
}
