package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidAccessToken = errors.New("invalid access token")

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTProvider issues and validates signed access tokens. Refresh tokens are
// not JWTs; they are opaque values owned by the auth service.
type JWTProvider struct {
	secret     []byte
	expiration time.Duration
}

func NewJWTProvider(secret string, expiration time.Duration) *JWTProvider {
	return &JWTProvider{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// GenerateToken signs an access token for the given username and returns it
// together with its expiry timestamp.
func (p *JWTProvider) GenerateToken(username string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(p.expiration)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing access token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken checks signature and expiry and returns the username carried
// by the token.
func (p *JWTProvider) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", ErrInvalidAccessToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", ErrInvalidAccessToken
	}
	return claims.Username, nil
}

// Expiration reports the configured access-token lifetime.
func (p *JWTProvider) Expiration() time.Duration {
	return p.expiration
}
