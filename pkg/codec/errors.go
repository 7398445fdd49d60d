package codec

import "errors"

var (
	ErrMalformed        = errors.New("codec.malformed")
	ErrInvalidSignature = errors.New("codec.invalid_signature")
)
