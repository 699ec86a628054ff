package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(secret, "access", token)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "alice", claims.Username)
}

func TestParseToken_WrongType(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "refresh", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	require.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(secret, "access", token)
	require.Error(t, err)
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(secret, 42, "alice", "access", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken([]byte("other-secret"), "access", token)
	require.Error(t, err)
}
