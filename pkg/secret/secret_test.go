package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCipher_RoundTrip(t *testing.T) {
	c, err := NewCipher("local-key")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("EAAB-token")
	require.NoError(t, err)
	assert.NotContains(t, encrypted, "EAAB-token")

	decrypted, err := c.Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, "EAAB-token", decrypted)
}

func TestCipher_DifferentNoncePerCall(t *testing.T) {
	c, err := NewCipher("local-key")
	require.NoError(t, err)

	first, err := c.Encrypt("same")
	require.NoError(t, err)
	second, err := c.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestCipher_WrongKey(t *testing.T) {
	c, err := NewCipher("key-a")
	require.NoError(t, err)
	other, err := NewCipher("key-b")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("token")
	require.NoError(t, err)

	_, err = other.Decrypt(encrypted)
	assert.Error(t, err)
}

func TestCipher_Invalid(t *testing.T) {
	_, err := NewCipher("")
	assert.Error(t, err)

	c, err := NewCipher("key")
	require.NoError(t, err)

	_, err = c.Decrypt("not base64 !!")
	assert.Error(t, err)

	_, err = c.Decrypt("YWJj")
	assert.ErrorIs(t, err, ErrCiphertextTooShort)
}
