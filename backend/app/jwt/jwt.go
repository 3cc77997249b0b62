package jwtutil

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// DefaultTTL applies when the Signer is built without an explicit lifetime.
const DefaultTTL = 30 * time.Minute

// ErrInvalidToken covers every verification failure: bad signature,
// malformed payload, missing subject, expired. Callers must not be able to
// tell these apart.
var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	jwt.RegisteredClaims
}

type Signer struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

// Sign issues a bearer token for subject, expiring TTL from now.
func (s *Signer) Sign(subject string) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    s.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.Secret)
}

// Verify returns the subject of a valid token, or ErrInvalidToken.
func (s *Signer) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{},
		func(t *jwt.Token) (interface{}, error) { return s.Secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
