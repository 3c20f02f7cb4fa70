// internal/app/system/credentials/credentials.go

// Package credentials hashes and verifies account passwords.
//
// Passwords are stored as bcrypt hashes with a fixed work factor. Verify is
// the only comparison path; callers must treat any non-true result as invalid
// credentials and must not distinguish "no such user" from "wrong password"
// in anything client-facing.
package credentials

import "golang.org/x/crypto/bcrypt"

// Cost is the bcrypt work factor for account passwords.
const Cost = 12

// Hash returns the bcrypt hash of password.
func Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify reports whether password matches hash. Malformed or empty stored
// hashes verify as false, never as an error.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
