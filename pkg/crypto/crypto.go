package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLength = 16
	keyLength  = 64

	// scrypt cost parameters
	scryptN = 32768
	scryptR = 8
	scryptP = 1

	sessionTokenLength = 32
)

// HashPassword hashes a password with scrypt using a random salt.
// The returned string has the form "saltHex:derivedHex".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	derived, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return "", fmt.Errorf("failed to derive key: %w", err)
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(derived), nil
}

// CheckPassword verifies a password against a stored "saltHex:derivedHex"
// hash using a constant-time comparison. It returns false for malformed
// stored hashes rather than an error.
func CheckPassword(password, storedHash string) bool {
	salt, stored, ok := splitStoredHash(storedHash)
	if !ok {
		return false
	}

	candidate, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, keyLength)
	if err != nil {
		return false
	}
	if len(candidate) != len(stored) {
		return false
	}

	return subtle.ConstantTimeCompare(candidate, stored) == 1
}

func splitStoredHash(storedHash string) (salt, derived []byte, ok bool) {
	parts := strings.SplitN(storedHash, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, nil, false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, nil, false
	}
	derived, err = hex.DecodeString(parts[1])
	if err != nil {
		return nil, nil, false
	}

	return salt, derived, true
}

// GenerateSessionToken returns a 256-bit random token, hex encoded.
// The raw token only ever lives in the client cookie; the server stores
// its digest.
func GenerateSessionToken() (string, error) {
	buf := make([]byte, sessionTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashSessionToken returns the hex SHA-256 digest of a session token.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
