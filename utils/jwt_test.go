package utils_test

import (
	"testing"
	"time"

	"homemate/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := utils.GenerateToken("u1", "sam@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, email, err := utils.ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
	assert.Equal(t, "sam@example.com", email)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := utils.GenerateToken("u1", "sam@example.com", -time.Minute)
	require.NoError(t, err)

	_, _, err = utils.ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	token, err := utils.GenerateToken("u1", "sam@example.com", time.Hour)
	require.NoError(t, err)

	_, _, err = utils.ExtractIdentityFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	h1 := utils.HashToken("abc")
	h2 := utils.HashToken("abc")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, utils.HashToken("abd"))
}
