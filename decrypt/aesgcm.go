package decrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// AESGCM is the reference Decryptor. Payloads are hex-encoded
// nonce||ciphertext||tag sealed under a 32-byte key.
type AESGCM struct {
	gcm cipher.AEAD
}

// NewAESGCM creates an AES-256-GCM decryptor from a hex-encoded key.
func NewAESGCM(hexKey string) (*AESGCM, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("invalid key hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESGCM{gcm: gcm}, nil
}

// Encrypt seals plaintext for tooling and tests. Output layout is
// nonce||ciphertext||tag, hex-encoded, without the cipher marker.
func (a *AESGCM) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, a.gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends ciphertext and tag to the nonce prefix.
	sealed := a.gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return hex.EncodeToString(sealed), nil
}

// Decrypt implements Decryptor.
func (a *AESGCM) Decrypt(cipherText string) (string, error) {
	buf, err := hex.DecodeString(cipherText)
	if err != nil {
		return "", fmt.Errorf("failed to decode hex: %w", err)
	}

	nonceSize := a.gcm.NonceSize()
	if len(buf) < nonceSize {
		return "", fmt.Errorf("ciphertext too short")
	}

	nonce, sealed := buf[:nonceSize], buf[nonceSize:]
	plain, err := a.gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plain), nil
}

// Ensure AESGCM implements Decryptor
var _ Decryptor = (*AESGCM)(nil)
