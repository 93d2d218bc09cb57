// Package auth issues the admin bearer token that guards the management
// endpoints.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// TokenTTL is how long an issued admin token stays valid.
const TokenTTL = 24 * time.Hour

// AdminSubject is the sub claim of every admin token.
const AdminSubject = "admin"

// ErrInvalidCredentials is returned when the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrLoginDisabled is returned when no admin password is configured.
var ErrLoginDisabled = errors.New("admin login is disabled")

// Service checks the admin password and signs tokens.
type Service struct {
	password  string
	jwtSecret string
	now       func() time.Time
}

// NewService creates a new auth Service. An empty password disables login.
func NewService(password, jwtSecret string) *Service {
	return &Service{password: password, jwtSecret: jwtSecret, now: time.Now}
}

// IssueToken returns a signed JWT when password matches the admin password.
func (s *Service) IssueToken(password string) (string, time.Time, error) {
	if s.password == "" {
		return "", time.Time{}, ErrLoginDisabled
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) != 1 {
		log.Warn().Msg("auth: rejected admin login")
		return "", time.Time{}, ErrInvalidCredentials
	}

	now := s.now()
	expires := now.Add(TokenTTL)
	claims := jwt.MapClaims{
		"sub":  AdminSubject,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  expires.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expires, nil
}
