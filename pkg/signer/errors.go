package signer

import "errors"

var (
	ErrNoSecret       = errors.New("signer.no_secret")
	ErrSecretTooShort = errors.New("signer.secret_too_short")
	ErrDerivation     = errors.New("signer.key_derivation_failed")
)
