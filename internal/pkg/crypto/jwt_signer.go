package crypto

import (
	"time"

	"shiprelay/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// JWTSigner implements the TokenSigner port with HMAC-SHA256 signed tokens.
type JWTSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTSigner creates a signer with the given HMAC secret and token
// lifetime.
func NewJWTSigner(secret []byte, ttl time.Duration) *JWTSigner {
	return &JWTSigner{secret: secret, ttl: ttl}
}

// Sign mints a session token for the given username.
func (s *JWTSigner) Sign(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Parse checks a session token and returns the username it was minted for.
func (s *JWTSigner) Parse(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(_ *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return "", errs.NewUnauthorizedErrorWithCause("invalid session token", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errs.NewUnauthorizedError("session token carries no subject")
	}

	return claims.Subject, nil
}
