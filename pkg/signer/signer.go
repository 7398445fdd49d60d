package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"slices"
)

// MinSecretLength is the shortest secret HMAC accepts.
const MinSecretLength = 32

// Signer signs a payload. Implementations must be deterministic.
type Signer interface {
	Sign(payload string) string
}

// Verifier is implemented by signers that can check a signature themselves,
// for example to accept signatures made with a rotated-out key.
type Verifier interface {
	Verify(payload, signature string) bool
}

// Verify checks signature against payload using s. Signers that implement
// Verifier decide on their own; otherwise the payload is re-signed and the
// results are compared in constant time.
func Verify(s Signer, payload, signature string) bool {
	if v, ok := s.(Verifier); ok {
		return v.Verify(payload, signature)
	}
	return subtle.ConstantTimeCompare([]byte(s.Sign(payload)), []byte(signature)) == 1
}

// HMAC signs with HMAC-SHA256. It is safe for concurrent use.
type HMAC struct {
	keys [][]byte
}

// New creates an HMAC signer. The first secret is used for signing, the rest
// only for verification.
func New(secrets ...string) (*HMAC, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([][]byte, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < MinSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), MinSecretLength)
		}
		keys = append(keys, []byte(s))
	}

	return &HMAC{keys: keys}, nil
}

// NewFromKeys creates an HMAC signer from raw keys, e.g. the output of Derive.
func NewFromKeys(keys ...[]byte) (*HMAC, error) {
	keys = slices.DeleteFunc(slices.Clone(keys), func(k []byte) bool { return len(k) == 0 })
	if len(keys) == 0 {
		return nil, ErrNoSecret
	}
	for i, k := range keys {
		if len(k) < MinSecretLength {
			return nil, fmt.Errorf("%w: key %d has %d bytes, need at least %d", ErrSecretTooShort, i, len(k), MinSecretLength)
		}
	}
	return &HMAC{keys: keys}, nil
}

func (h *HMAC) Sign(payload string) string {
	return sum(h.keys[0], payload)
}

// Verify tries every configured key so cookies signed before a rotation stay valid.
func (h *HMAC) Verify(payload, signature string) bool {
	valid := false
	for _, k := range h.keys {
		if subtle.ConstantTimeCompare([]byte(sum(k, payload)), []byte(signature)) == 1 {
			valid = true
		}
	}
	return valid
}

func sum(key []byte, payload string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
