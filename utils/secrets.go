package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
)

// GenerateSecureToken generates a random base32 string of the given length,
// used for magic-link tokens and provisioned identity passwords.
func GenerateSecureToken(length int) (string, error) {
	numBytes := (length*5 + 7) / 8
	randomBytes := make([]byte, numBytes)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(randomBytes)
	if len(token) > length {
		token = token[:length]
	}
	return token, nil
}
