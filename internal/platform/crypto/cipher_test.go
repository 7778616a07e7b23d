package crypto_test

import (
	"strings"
	"testing"

	"github.com/valecard/valecard_backend/internal/platform/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "6368616e676520746869732070617373776f726420746f206120736563726574"

func TestNewCipher_InvalidKey(t *testing.T) {
	_, err := crypto.NewCipher("not-hex")
	assert.Error(t, err)

	_, err = crypto.NewCipher("abcd")
	assert.Error(t, err)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	c, err := crypto.NewCipher(testKey)
	require.NoError(t, err)

	for _, secret := range []string{"123", "4242", "007"} {
		ciphertext, err := c.Encrypt(secret)
		require.NoError(t, err)
		assert.NotEqual(t, secret, ciphertext)

		plaintext, err := c.Decrypt(ciphertext)
		require.NoError(t, err)
		assert.Equal(t, secret, plaintext)
	}
}

func TestEncrypt_DeterministicPerKey(t *testing.T) {
	c, err := crypto.NewCipher(testKey)
	require.NoError(t, err)

	first, err := c.Encrypt("1234")
	require.NoError(t, err)
	second, err := c.Encrypt("1234")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := c.Encrypt("1235")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestEncrypt_EmptyPlaintext(t *testing.T) {
	c, err := crypto.NewCipher(testKey)
	require.NoError(t, err)

	_, err = c.Encrypt("")
	assert.Error(t, err)
}

func TestDecrypt_RejectsTamperedCiphertext(t *testing.T) {
	c, err := crypto.NewCipher(testKey)
	require.NoError(t, err)

	ciphertext, err := c.Encrypt("1234")
	require.NoError(t, err)

	tampered := strings.ToLower(ciphertext)
	if tampered == ciphertext {
		tampered = strings.ToUpper(ciphertext)
	}
	_, err = c.Decrypt(tampered)
	assert.Error(t, err)

	_, err = c.Decrypt("%%%not-base64%%%")
	assert.Error(t, err)
}

func TestDecrypt_RejectsOtherKey(t *testing.T) {
	c1, err := crypto.NewCipher(testKey)
	require.NoError(t, err)
	c2, err := crypto.NewCipher(strings.Repeat("ab", 32))
	require.NoError(t, err)

	ciphertext, err := c1.Encrypt("1234")
	require.NoError(t, err)

	_, err = c2.Decrypt(ciphertext)
	assert.Error(t, err)
}
