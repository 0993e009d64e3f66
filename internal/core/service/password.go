package service

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// minPasswordLen matches the rule request validation enforces on sign-up.
const minPasswordLen = 8

const recoveryPasswordLength = 12

const recoveryAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// HashPassword hashes a plaintext password with bcrypt. The salt is
// randomized per call, so the same plaintext never produces the same
// stored hash twice.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash. A mismatch
// is an ordinary false, never an error.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// GenerateRecoveryPassword returns a high-entropy alphanumeric password
// suitable for out-of-band delivery. Visually ambiguous characters
// (0/O, 1/l/I) are excluded to keep it transcribable.
func GenerateRecoveryPassword() (string, error) {
	b := make([]byte, recoveryPasswordLength)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("recovery password: %w", err)
	}
	for i := range b {
		b[i] = recoveryAlphabet[int(b[i])%len(recoveryAlphabet)]
	}
	return string(b), nil
}

// VerifyHashParams fails loudly when the bcrypt parameters are unusable,
// so a misconfiguration is caught at startup rather than silently
// weakening credential storage.
func VerifyHashParams() error {
	sample, err := HashPassword("startup-self-check")
	if err != nil {
		return err
	}
	if !CheckPassword("startup-self-check", sample) {
		return fmt.Errorf("hash self-check failed")
	}
	return nil
}
