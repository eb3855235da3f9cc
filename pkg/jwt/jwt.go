package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no exp claim")

// Claims is the subset of the upstream access token the kiosk reads.
// The signature is never checked: the kiosk does not hold the signing key.
type Claims struct {
	Username string `json:"unique_name,omitempty"`
	jwt.RegisteredClaims
}

// ParseClaims decodes an access token without verifying it.
func ParseClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Expiry returns the exp claim of an access token.
func Expiry(tokenString string) (time.Time, error) {
	claims, err := ParseClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrNoExpiry
	}
	return claims.ExpiresAt.Time, nil
}
