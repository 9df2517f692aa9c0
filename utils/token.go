package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PeekTokenExpiry reads the exp claim of the remote bearer token without
// verifying the signature — the storefront never holds the signing key.
// Informational only (profile page display); expiry is still detected
// reactively when an authenticated call fails.
func PeekTokenExpiry(token string) (time.Time, bool) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
