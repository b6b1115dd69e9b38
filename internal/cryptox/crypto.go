// Package cryptox seals small secrets (the persisted API tokens) with a key
// derived from a user passphrase.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"github.com/dmitrijs2005/carlog/internal/common"
	"golang.org/x/crypto/argon2"
)

// SaltSize is the length of the random salt stored next to sealed data.
const SaltSize = 16

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// DeriveKey stretches passphrase into a 32-byte AES-256 key with Argon2id.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, 32)
}

// NewSalt returns a fresh random salt.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// Sealer encrypts and decrypts values with AES-GCM under a fixed key.
// Output layout is nonce || ciphertext.
type Sealer struct {
	aead cipher.AEAD
}

// NewSealer builds a Sealer for a 16, 24 or 32 byte key.
func NewSealer(key []byte) (*Sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

// Seal encrypts plaintext under a new random nonce.
func (s *Sealer) Seal(plaintext []byte) []byte {
	nonce := common.GenerateRandByteArray(s.aead.NonceSize())
	return s.aead.Seal(nonce, nonce, plaintext, nil)
}

// Open reverses Seal. A wrong key or tampered data returns an error.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	n := s.aead.NonceSize()
	if len(sealed) < n {
		return nil, ErrCiphertextTooShort
	}
	return s.aead.Open(nil, sealed[:n], sealed[n:], nil)
}
