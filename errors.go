package httpkit

import "errors"

var (
	ErrNoSecrets     = errors.New("httpkit.no_secrets")
	ErrUnknownFormat = errors.New("httpkit.unknown_format")
	ErrUnknownCache  = errors.New("httpkit.unknown_cache")
	ErrFormatsFile   = errors.New("httpkit.formats_file")
)
