package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sassan1019/enthusiasts/app/database"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidToken    = errors.New("invalid token")
)

// Issued tokens expire after this long; the client holds the only plaintext
// copy and re-authenticates when it lapses.
const sessionTTL = 24 * time.Hour

// Authenticator verifies the single shared admin credential and manages
// issued session tokens. There is exactly one operator identity: a password
// whose SHA-256 digest is supplied as deployment configuration.
type Authenticator struct {
	passwordHash string
	sessions     database.SessionRepository
}

// NewAuthenticator creates an authenticator for the given reference digest
// (lowercase hex SHA-256 of the admin password)
func NewAuthenticator(passwordHash string, sessions database.SessionRepository) *Authenticator {
	return &Authenticator{
		passwordHash: strings.ToLower(passwordHash),
		sessions:     sessions,
	}
}

// Login verifies the password against the configured digest and, on success,
// issues a fresh opaque token. Only the token's hash is persisted; each call
// yields a distinct token.
func (a *Authenticator) Login(password string) (string, error) {
	digest := sha256.Sum256([]byte(password))
	hexDigest := hex.EncodeToString(digest[:])

	if subtle.ConstantTimeCompare([]byte(hexDigest), []byte(a.passwordHash)) != 1 {
		return "", ErrInvalidPassword
	}

	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	expiresAt := time.Now().Add(sessionTTL)
	if err := a.sessions.CreateSession(hashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Validate checks that the presented token was issued by Login and has not
// expired. A well-formed token that was never issued is rejected.
func (a *Authenticator) Validate(token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	ok, err := a.sessions.ValidateSession(hashToken(token))
	if err != nil {
		return fmt.Errorf("failed to validate session: %w", err)
	}
	if !ok {
		return ErrInvalidToken
	}

	return nil
}

// generateToken returns 32 random bytes as a URL-safe base64 string
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// hashToken returns the lowercase hex SHA-256 of a token for storage lookup
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
