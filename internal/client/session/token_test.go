package session

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtWithoutExp() (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1}).SignedString([]byte("k"))
}

func TestAccessExpiry(t *testing.T) {
	exp := time.Unix(1893456000, 0)

	got, err := accessExpiry(mintToken(t, exp))
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))

	_, err = accessExpiry("")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = accessExpiry("a.b.c")
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	noExp, err := jwtWithoutExp()
	require.NoError(t, err)
	_, err = accessExpiry(noExp)
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestTokenValidAt(t *testing.T) {
	exp := time.Unix(1893456000, 0)
	tok := mintToken(t, exp)

	assert.True(t, tokenValidAt(tok, exp.Add(-time.Nanosecond)))
	assert.False(t, tokenValidAt(tok, exp))
	assert.False(t, tokenValidAt("junk", exp.Add(-time.Hour)))
}

func TestReasonMessages(t *testing.T) {
	assert.Contains(t, ReasonSessionExpired.Message(), "expired")
	assert.Contains(t, ReasonRefreshFailed.Message(), "renewed")
	assert.Equal(t, "Please log in to continue.", ReasonNotAuthenticated.Message())

	r := &LoginRedirect{Reason: ReasonSessionExpired, From: "admin/orders"}
	assert.Equal(t, "login required (session_expired) for admin/orders", r.Error())
}
