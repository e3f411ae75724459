package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaagyebi/lumea-api/internal/domain/access"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	p := access.Principal{ID: uuid.New(), Role: access.RoleCosmetologist}

	raw, issued, err := tokens.Issue(p)
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)

	claims, err := tokens.Verify(raw)
	require.NoError(t, err)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, p.ID, id)
	assert.Equal(t, access.RoleCosmetologist, claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestIssue_UniqueTokenIDs(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	p := access.Principal{ID: uuid.New(), Role: access.RoleUser}

	_, a, err := tokens.Issue(p)
	require.NoError(t, err)
	_, b, err := tokens.Issue(p)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestVerify_Expired(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tokens := NewTokens("secret", time.Hour)
	tokens.now = fixedClock(start)

	raw, _, err := tokens.Issue(access.Principal{ID: uuid.New(), Role: access.RoleUser})
	require.NoError(t, err)

	tokens.now = fixedClock(start.Add(2 * time.Hour))

	_, err = tokens.Verify(raw)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_WrongSecret(t *testing.T) {
	raw, _, err := NewTokens("secret", time.Hour).Issue(access.Principal{ID: uuid.New(), Role: access.RoleUser})
	require.NoError(t, err)

	_, err = NewTokens("other", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_Tampered(t *testing.T) {
	tokens := NewTokens("secret", time.Hour)
	raw, _, err := tokens.Issue(access.Principal{ID: uuid.New(), Role: access.RoleUser})
	require.NoError(t, err)

	_, err = tokens.Verify(raw[:len(raw)-2] + "xx")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tokens.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{
		Role: access.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokens("secret", time.Hour).Verify(raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_RequiresTokenIDAndSubject(t *testing.T) {
	sign := func(c jwt.RegisteredClaims) string {
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: c}).SignedString([]byte("secret"))
		require.NoError(t, err)
		return raw
	}
	tokens := NewTokens("secret", time.Hour)

	_, err := tokens.Verify(sign(jwt.RegisteredClaims{Subject: uuid.NewString()}))
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = tokens.Verify(sign(jwt.RegisteredClaims{ID: "jti", Subject: "42"}))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPassword(hash, "hunter22"))
	assert.False(t, CheckPassword(hash, "hunter23"))
}
