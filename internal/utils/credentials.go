package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// sessionSecretBytes is the length of a generated HS256 signing key.
const sessionSecretBytes = 32

// Credential is the single operator login, with the password kept only as a bcrypt hash.
type Credential struct {
	email        string
	passwordHash []byte
}

// NewCredential hashes password once. An empty email or password yields a
// credential that never matches.
func NewCredential(email, password string) (Credential, error) {
	c := Credential{email: strings.TrimSpace(email)}
	if c.email == "" || password == "" {
		return c, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credential{}, fmt.Errorf("hashing login password: %w", err)
	}
	c.passwordHash = hash
	return c, nil
}

// Configured reports whether a login is possible at all.
func (c Credential) Configured() bool {
	return len(c.passwordHash) > 0
}

// Email is the configured login, trimmed.
func (c Credential) Email() string { return c.email }

// Matches checks email (surrounding spaces ignored) and password against the credential.
func (c Credential) Matches(email, password string) bool {
	if !c.Configured() {
		return false
	}
	emailOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(email)), []byte(c.email)) == 1
	err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password))
	return emailOK && err == nil
}

// SessionSecret returns secret as a signing key, or a random key when secret is empty.
// A random key does not survive a restart, so every token issued before it is rejected.
func SessionSecret(secret string) ([]byte, error) {
	if secret != "" {
		return []byte(secret), nil
	}
	b := make([]byte, sessionSecretBytes)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.Join(errors.New("generating session secret"), err)
	}
	return b, nil
}
