package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialMatches(t *testing.T) {
	c, err := NewCredential(" owner@shop.test ", "s3cret")
	require.NoError(t, err)

	assert.True(t, c.Configured())
	assert.Equal(t, "owner@shop.test", c.Email())
	assert.True(t, c.Matches("owner@shop.test", "s3cret"))
	assert.True(t, c.Matches("  owner@shop.test", "s3cret"))
	assert.False(t, c.Matches("owner@shop.test", "wrong"))
	assert.False(t, c.Matches("other@shop.test", "s3cret"))
}

func TestCredentialUnconfigured(t *testing.T) {
	for _, tc := range []struct{ email, password string }{{"", "x"}, {"a@b.c", ""}, {"", ""}} {
		c, err := NewCredential(tc.email, tc.password)
		require.NoError(t, err)
		assert.False(t, c.Configured())
		assert.False(t, c.Matches(tc.email, tc.password))
	}
}

func TestSessionSecret(t *testing.T) {
	got, err := SessionSecret("fixed")
	require.NoError(t, err)
	assert.Equal(t, []byte("fixed"), got)

	a, err := SessionSecret("")
	require.NoError(t, err)
	b, err := SessionSecret("")
	require.NoError(t, err)
	assert.Len(t, a, sessionSecretBytes)
	assert.NotEqual(t, a, b)
}
