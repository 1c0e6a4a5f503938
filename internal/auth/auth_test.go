package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zipplink/zipp/internal/auth"
)

func TestIssueAndParseToken(t *testing.T) {
	m := auth.New("test-secret", time.Hour)

	token, err := m.IssueToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := auth.New("test-secret", time.Hour)
	other := auth.New("other-secret", time.Hour)

	token, err := m.IssueToken(7)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_Expired(t *testing.T) {
	m := auth.New("test-secret", -time.Minute)

	token, err := m.IssueToken(7)
	require.NoError(t, err)

	_, err = m.ParseToken(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseToken_Garbage(t *testing.T) {
	m := auth.New("test-secret", time.Hour)

	_, err := m.ParseToken("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, auth.CheckPassword(hash, "s3cret-pass"))
	assert.False(t, auth.CheckPassword(hash, "wrong-pass"))
}
