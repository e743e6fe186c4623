package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("correct horse battery stapl", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordUsesRandomSalt(t *testing.T) {
	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same password", first))
	assert.True(t, CheckPassword("same password", second))
}

func TestHashPasswordFormat(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	parts := strings.Split(hash, ":")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], saltLength*2)
	assert.Len(t, parts[1], keyLength*2)
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		":",
		"abc:",
		":def",
		"nothex:deadbeef",
		"deadbeef:nothex",
	}
	for _, stored := range cases {
		assert.False(t, CheckPassword("anything", stored), "stored=%q", stored)
	}
}

func TestGenerateSessionToken(t *testing.T) {
	token, err := GenerateSessionToken()
	require.NoError(t, err)
	assert.Len(t, token, sessionTokenLength*2)

	other, err := GenerateSessionToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestHashSessionTokenDeterministic(t *testing.T) {
	token, err := GenerateSessionToken()
	require.NoError(t, err)

	digest := HashSessionToken(token)
	assert.Len(t, digest, 64)
	assert.Equal(t, digest, HashSessionToken(token))
	assert.NotEqual(t, digest, HashSessionToken(token+"x"))
	assert.NotEqual(t, token, digest)
}
