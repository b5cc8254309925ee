package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	Name string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 token in the shape the identity provider issues.
// The API never issues tokens itself; this serves tests and local tooling.
func GenerateJWT(userID, name, secret string, expiryDuration time.Duration, issuer string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiryDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
