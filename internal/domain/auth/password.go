package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const MinPasswordLength = 8

// HashPassword hashes a plain password string with a per-hash salt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches hash. A malformed hash is a mismatch.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// dummyHash keeps login timing similar whether or not the username exists.
var dummyHash = func() string {
	h, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	return string(h)
}()
