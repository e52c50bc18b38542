// Package jwt issues and verifies the HS256 access tokens handed out at sign-in.
package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

const DefaultAccessTTL = 5 * time.Minute

var (
	// ErrSigning wraps failures of the underlying signer.
	ErrSigning = errors.New("jwt: signing failed")
	// ErrMissingSecret is a startup error: the process must not run without a secret.
	ErrMissingSecret = errors.New("jwt: secret is required")
)

// Issuer firma y valida tokens con una clave simétrica cargada al arrancar.
type Issuer struct {
	Iss       string
	AccessTTL time.Duration

	secret []byte
	now    func() time.Time
}

type Option func(*Issuer)

// WithClock replaces time.Now, used by tests to move across the expiry boundary.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

func WithTTL(ttl time.Duration) Option {
	return func(i *Issuer) {
		if ttl > 0 {
			i.AccessTTL = ttl
		}
	}
}

func WithIssuer(iss string) Option {
	return func(i *Issuer) { i.Iss = iss }
}

func NewIssuer(secret string, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	i := &Issuer{
		AccessTTL: DefaultAccessTTL,
		secret:    []byte(secret),
		now:       time.Now,
	}
	for _, o := range opts {
		o(i)
	}
	return i, nil
}

// Issue signs a token for the user; sub is the id in decimal form.
func (i *Issuer) Issue(userID int64, userName string) (string, time.Time, error) {
	now := i.now().UTC()
	exp := now.Add(i.AccessTTL)

	claims := Claims{
		UserName: userName,
		RegisteredClaims: jwtv5.RegisteredClaims{
			Issuer:    i.Iss,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(exp),
		},
	}
	tk := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := tk.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return signed, exp, nil
}
