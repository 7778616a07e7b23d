// Package crypto provides the reversible cipher protecting card secrets
// (security codes and passwords) at rest.
package crypto

import (
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// Cipher encrypts and decrypts short numeric secrets with ChaCha20-Poly1305.
// The nonce is derived from the plaintext via HMAC-SHA256, which makes
// encryption deterministic per key: the same secret always yields the same
// ciphertext, so stored values stay comparable.
type Cipher struct {
	aead cipher.AEAD
	key  []byte
}

// NewCipher builds a Cipher from a hex-encoded 32-byte key. The key is an
// explicit dependency; there is no package-level key state.
func NewCipher(hexKey string) (*Cipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("cipher key is not valid hex: %w", err)
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, fmt.Errorf("cipher key must be %d bytes, got %d", chacha20poly1305.KeySize, len(key))
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AEAD: %w", err)
	}

	return &Cipher{aead: aead, key: key}, nil
}

func (c *Cipher) nonce(plaintext string) []byte {
	mac := hmac.New(sha256.New, c.key)
	mac.Write([]byte(plaintext))
	return mac.Sum(nil)[:chacha20poly1305.NonceSize]
}

// Encrypt returns the base64 encoding of nonce||ciphertext.
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("plaintext is empty")
	}
	nonce := c.nonce(plaintext)
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(append(nonce, sealed...)), nil
}

// Decrypt reverses Encrypt, authenticating the ciphertext in the process.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	if len(data) <= chacha20poly1305.NonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := data[:chacha20poly1305.NonceSize], data[chacha20poly1305.NonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	return string(plaintext), nil
}
