package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"os"
)

// sealerFromEnv builds an AES-256-GCM AEAD from the ENCRYPTION_KEY environment
// variable. The key may be raw bytes or base64 encoded; a decoded key must be
// exactly 32 bytes.
func sealerFromEnv() (cipher.AEAD, error) {
	raw := os.Getenv("ENCRYPTION_KEY")
	if raw == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY environment variable is not set")
	}

	key := []byte(raw)
	if decoded, err := base64.StdEncoding.DecodeString(raw); err == nil {
		if len(decoded) != 32 {
			return nil, fmt.Errorf("encryption key must be 32 bytes for AES-256, got %d bytes", len(decoded))
		}
		key = decoded
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher block: %w", err)
	}
	return cipher.NewGCM(block)
}

// EncryptData encrypts a secret (OAuth refresh tokens and similar) with
// AES-256-GCM and returns it base64 encoded with the nonce prepended.
func EncryptData(data string) (string, error) {
	if data == "" {
		return "", nil
	}

	gcm, err := sealerFromEnv()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(data), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// DecryptData reverses EncryptData.
func DecryptData(encrypted string) (string, error) {
	if encrypted == "" {
		return "", nil
	}

	gcm, err := sealerFromEnv()
	if err != nil {
		return "", err
	}

	sealed, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}
	if len(sealed) < gcm.NonceSize() {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt data: %w", err)
	}
	return string(plaintext), nil
}
