package locale

import "errors"

var (
	ErrInvalidTag  = errors.New("locale.invalid_tag")
	ErrNoSupported = errors.New("locale.no_supported_languages")
	ErrUnsupported = errors.New("locale.unsupported_default")
)
