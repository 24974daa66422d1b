package sqlite

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"

	"github.com/ericfisherdev/genpass/internal/domain/port/driven"
)

// sealedPrefix marks values encrypted by a Sealer.
const sealedPrefix = "enc:v1:"

// hkdfInfo is the HKDF context string for sealing keys.
const hkdfInfo = "genpass sqlite value sealing v1"

// Sealer encrypts stored credential values with AES-256-GCM. A Sealer with no
// key stores values as-is.
type Sealer struct {
	key []byte // 32-byte AES-256 key; nil when sealing is disabled.
}

// NewSealer derives a 32-byte key from secret using HKDF-SHA256. An empty
// secret returns a pass-through Sealer.
func NewSealer(secret string) (*Sealer, error) {
	if secret == "" {
		return &Sealer{}, nil
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, fmt.Errorf("derive sealing key: %w", err)
	}
	return &Sealer{key: key}, nil
}

// Enabled reports whether values are encrypted at rest.
func (s *Sealer) Enabled() bool {
	return s != nil && s.key != nil
}

// Seal encrypts plaintext and returns the prefixed, base64-encoded
// nonce || ciphertext || tag. Empty values are stored unsealed.
func (s *Sealer) Seal(plaintext string) (string, error) {
	if !s.Enabled() || plaintext == "" {
		return plaintext, nil
	}

	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("rand nonce: %w", err)
	}

	// Seal appends the ciphertext to nonce, producing: nonce || ciphertext || tag.
	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return sealedPrefix + base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Open reverses Seal. Values without the sealed prefix are returned unchanged.
// A sealed value read without a key yields driven.ErrEncryptionKeyNotSet.
func (s *Sealer) Open(stored string) (string, error) {
	encoded, sealed := strings.CutPrefix(stored, sealedPrefix)
	if !sealed {
		return stored, nil
	}
	if !s.Enabled() {
		return "", driven.ErrEncryptionKeyNotSet
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("base64 decode: %w", err)
	}

	gcm, err := s.gcm()
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("gcm.Open: %w", err)
	}
	return string(plaintext), nil
}

func (s *Sealer) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(s.key)
	if err != nil {
		return nil, fmt.Errorf("aes.NewCipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cipher.NewGCM: %w", err)
	}
	return gcm, nil
}
