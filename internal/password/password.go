// Package password wraps bcrypt hashing for account credentials. Both
// functions are stateless and safe under concurrent use.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned when hashing an empty string.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hash generates a salted bcrypt digest. The salt is per-call, so the same
// password yields a different digest every time.
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// Compare reports whether the cleartext password matches the digest.
// A malformed digest counts as a mismatch.
func Compare(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
