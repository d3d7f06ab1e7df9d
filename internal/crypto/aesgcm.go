package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"kurier/internal/domain"
)

const (
	// IVBytes is the AES-GCM nonce size. A fresh random IV is drawn per
	// Encrypt call; reuse under the same key breaks confidentiality.
	IVBytes = 12
	// TagBytes is the GCM authentication tag size.
	TagBytes = 16
)

// Sealed is the output of Encrypt. All three fields must travel together.
type Sealed struct {
	IV         []byte
	Ciphertext []byte
	AuthTag    []byte
}

// Encrypt seals plaintext under key with AES-256-GCM and a fresh 96-bit IV.
func Encrypt(key [32]byte, plaintext []byte) (Sealed, error) {
	aead, err := newGCM(key)
	if err != nil {
		return Sealed{}, err
	}
	iv := make([]byte, IVBytes)
	if _, err := rand.Read(iv); err != nil {
		return Sealed{}, fmt.Errorf("read iv: %w", err)
	}
	out := aead.Seal(nil, iv, plaintext, nil)
	n := len(out) - TagBytes
	return Sealed{
		IV:         iv,
		Ciphertext: out[:n],
		AuthTag:    out[n:],
	}, nil
}

// Decrypt opens a ciphertext sealed by Encrypt. A tag that does not verify
// (tampered data or wrong key) yields domain.ErrAuthenticationFailed; no
// plaintext is ever returned in that case.
func Decrypt(key [32]byte, iv, ciphertext, authTag []byte) ([]byte, error) {
	if len(iv) != IVBytes {
		return nil, fmt.Errorf("%w: iv must be %d bytes", domain.ErrInvalidKeyMaterial, IVBytes)
	}
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	sealed := make([]byte, 0, len(ciphertext)+len(authTag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, authTag...)
	plaintext, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	return plaintext, nil
}

func newGCM(key [32]byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
