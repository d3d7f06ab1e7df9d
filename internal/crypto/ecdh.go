package crypto

import (
	"crypto/ecdh"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"kurier/internal/domain"
)

// KeyPair holds raw P-256 key material. PublicKey is the uncompressed
// point encoding; PrivateKey is the scalar bytes.
type KeyPair struct {
	PublicKey  []byte
	PrivateKey []byte
}

// GenerateKeyPair returns a fresh P-256 key pair. It fails only when the
// entropy source does.
func GenerateKeyPair() (KeyPair, error) {
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate p256 key: %w", err)
	}
	return KeyPair{
		PublicKey:  priv.PublicKey().Bytes(),
		PrivateKey: priv.Bytes(),
	}, nil
}

// ComputeSharedSecret runs ECDH between our private key and the peer's
// public key. Both peers derive the identical value. Malformed or
// off-curve key bytes yield domain.ErrInvalidKeyMaterial.
func ComputeSharedSecret(ownPrivateKey, peerPublicKey []byte) ([]byte, error) {
	priv, err := ecdh.P256().NewPrivateKey(ownPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("%w: private key: %v", domain.ErrInvalidKeyMaterial, err)
	}
	pub, err := ecdh.P256().NewPublicKey(peerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("%w: public key: %v", domain.ErrInvalidKeyMaterial, err)
	}
	secret, err := priv.ECDH(pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyMaterial, err)
	}
	return secret, nil
}

// DeriveKey hashes a shared secret down to the 256-bit AES key. It is
// deterministic: both peers arrive at the same key.
func DeriveKey(sharedSecret []byte) [32]byte {
	return sha256.Sum256(sharedSecret)
}
