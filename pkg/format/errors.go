package format

import "errors"

var (
	ErrInvalidName        = errors.New("format.invalid_name")
	ErrInvalidContentType = errors.New("format.invalid_content_type")
	ErrDuplicate          = errors.New("format.duplicate")
)
