package signer

import (
	"crypto/sha256"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the length of derived keys.
	KeySize = 32

	saltInfo = "httpkit-signer-v1"
)

// Derive expands master into a KeySize key bound to purpose.
// Different purposes yield unrelated keys.
func Derive(master []byte, purpose string) ([]byte, error) {
	if len(master) == 0 {
		return nil, ErrNoSecret
	}
	if len(master) < MinSecretLength {
		return nil, ErrSecretTooShort
	}

	r := hkdf.New(sha256.New, master, []byte(saltInfo), []byte(purpose))
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.Join(ErrDerivation, err)
	}
	return key, nil
}

// NewDerived builds an HMAC signer whose keys are derived from each secret for
// the given purpose. Order is preserved, so rotation works the same as New.
func NewDerived(purpose string, secrets ...string) (*HMAC, error) {
	keys := make([][]byte, 0, len(secrets))
	for _, s := range secrets {
		if s == "" {
			continue
		}
		k, err := Derive([]byte(s), purpose)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return NewFromKeys(keys...)
}
