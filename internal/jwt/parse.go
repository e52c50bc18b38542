package jwt

import (
	"errors"
	"fmt"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signatures, malformed tokens and expired tokens.
var ErrInvalidToken = errors.New("jwt: invalid token")

// Verify checks signature and expiry of a bare token (no "Bearer " prefix).
// There is no leeway: a token is dead the second its exp passes.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	opts := []jwtv5.ParserOption{
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithExpirationRequired(),
		jwtv5.WithTimeFunc(i.now),
	}
	if i.Iss != "" {
		opts = append(opts, jwtv5.WithIssuer(i.Iss))
	}

	var claims Claims
	tk, err := jwtv5.ParseWithClaims(raw, &claims, i.keyfunc, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !tk.Valid {
		return nil, ErrInvalidToken
	}
	return &claims, nil
}

func (i *Issuer) keyfunc(*jwtv5.Token) (any, error) {
	return i.secret, nil
}
