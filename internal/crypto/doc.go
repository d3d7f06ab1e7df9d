// Package crypto exposes the secure-channel primitives of kurier.
//
// Contents
//
//   - NIST P-256 key-pair generation and ECDH shared-secret computation
//     (GenerateKeyPair, ComputeSharedSecret)
//   - SHA-256 derivation of a 256-bit symmetric key from a shared secret
//     (DeriveKey)
//   - AES-256-GCM authenticated encryption with a fresh 96-bit IV per call
//     and a 128-bit tag, returned as separate fields (Encrypt, Decrypt)
//
// # Notes
//
// The server itself is a blind relay and never computes a shared secret;
// these primitives define the channel contract clients implement, and they
// back the keygen command and the protocol's framing. Both parties of a
// conversation derive the identical secret from their own private key and
// the peer's public key, so ciphertext, IV, and tag must always travel
// together.
package crypto
