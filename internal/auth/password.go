package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword is called explicitly wherever a plaintext password is about to
// be persisted; nothing downstream ever stores or compares plaintext.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPassword returns a non-nil error when the plaintext does not match the
// stored hash. The comparison is constant-time inside bcrypt.
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
