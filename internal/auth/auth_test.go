package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agendahub/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	u := &model.User{ID: 42, Role: model.RoleOwner, BusinessID: 7}

	tok, err := MakeToken(u, "secret")
	require.NoError(t, err)

	c, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.UserID)
	assert.Equal(t, model.RoleOwner, c.Role)
	assert.Equal(t, int64(7), c.BusinessID)
}

func TestParseTokenWrongSecret(t *testing.T) {
	u := &model.User{ID: 1, Role: model.RoleClient}
	tok, err := MakeToken(u, "secret")
	require.NoError(t, err)

	_, err = ParseToken(tok, "other")
	assert.Error(t, err)

	_, err = ParseToken("not-a-token", "secret")
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))
}

func TestRefreshTokenHash(t *testing.T) {
	raw, hash, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.Equal(t, hash, HashRefreshToken(raw))

	raw2, _, err := GenerateRefreshToken()
	require.NoError(t, err)
	assert.NotEqual(t, raw, raw2)
}
