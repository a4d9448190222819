// Package cryptox wraps the one-way password hashing used for stored
// person records.
package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor applied to every stored password.
const PasswordCost = 10

// MaxPasswordBytes is the longest input bcrypt consumes. Longer passwords
// are hashed and checked on this prefix only.
const MaxPasswordBytes = 72

// HashPassword returns the salted bcrypt hash of plaintext at PasswordCost.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(passwordBytes(plaintext), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches hash. A malformed hash is
// an error; a mismatch is not.
func CheckPassword(hash, plaintext string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), passwordBytes(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("check password: %w", err)
	}
}

func passwordBytes(plaintext string) []byte {
	b := []byte(plaintext)
	return b[:min(len(b), MaxPasswordBytes)]
}
