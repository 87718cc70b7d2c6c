// Package token issues and verifies signed, time-limited bearer tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/and161185/notekeeper/internal/errs"
)

// Config carries the signing secret and token lifetime. Injected at
// construction so tests can use their own secrets and near-zero TTLs.
type Config struct {
	SigningKey []byte
	TTL        time.Duration
}

// Service mints and verifies stateless HS256 JWTs. Tokens cannot be revoked
// before expiry; there is no server-side token state.
type Service struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// New constructs a token service from config. A zero TTL falls back to 30
// minutes; a negative TTL issues already-expired tokens, which tests use.
func New(cfg Config) *Service {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	return &Service{key: cfg.SigningKey, ttl: ttl, now: time.Now}
}

// Issue creates a signed token bound to subject with expiry = now + TTL.
func (s *Service) Issue(subject string) (signed string, expiresAt time.Time, err error) {
	if subject == "" {
		return "", time.Time{}, errors.New("empty subject")
	}
	now := s.now()
	exp := now.Add(s.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err = tok.SignedString(s.key)
	return signed, exp, err
}

// Verify checks signature integrity and expiry and returns the subject.
// Every failure mode (forged, malformed, expired) collapses into the single
// errs.ErrUnauthorized so callers cannot distinguish them.
func (s *Service) Verify(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", errs.ErrUnauthorized
	}
	return claims.Subject, nil
}
