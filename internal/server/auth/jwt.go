// Package auth mints signed access tokens for registered accounts.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the validity window used when none is configured.
const DefaultTokenTTL = 100 * time.Hour

var ErrMissingSecret = errors.New("token signing secret is not configured")

// Subject identifies the account a token was issued to.
type Subject struct {
	ID string `json:"id"`
}

// Claims are the token payload: {"user": {"id": ...}} plus registered claims.
type Claims struct {
	jwt.RegisteredClaims
	User Subject `json:"user"`
}

// Issuer signs tokens with a process-wide HS256 secret. The secret is
// fixed at construction.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

type Option func(*Issuer)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer fails with ErrMissingSecret when secret is empty, so a
// misconfigured process is caught at startup. A non-positive ttl selects
// DefaultTokenTTL.
func NewIssuer(secret []byte, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	i := &Issuer{
		secret: append([]byte(nil), secret...),
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i, nil
}

// TTL returns the validity window of issued tokens.
func (i *Issuer) TTL() time.Duration { return i.ttl }

// Issue returns a signed token for accountID expiring TTL from now.
func (i *Issuer) Issue(accountID string) (string, error) {
	if i == nil || len(i.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		User: Subject{ID: accountID},
	})

	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}
