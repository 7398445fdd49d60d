package kv

import "errors"

var (
	ErrInvalidKey   = errors.New("kv.invalid_key")
	ErrInvalidValue = errors.New("kv.invalid_value")
)
