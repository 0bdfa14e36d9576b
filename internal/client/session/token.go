package session

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// accessExpiry reads the exp claim of a JWT without checking its signature;
// the backend is the only party that verifies tokens.
func accessExpiry(token string) (time.Time, error) {
	if token == "" {
		return time.Time{}, common.ErrInvalidToken
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if exp == nil {
		return time.Time{}, fmt.Errorf("%w: no exp claim", common.ErrInvalidToken)
	}
	return exp.Time, nil
}

func tokenValidAt(token string, now time.Time) bool {
	exp, err := accessExpiry(token)
	if err != nil {
		return false
	}
	return now.Before(exp)
}
