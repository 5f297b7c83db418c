package sanitizer

import "errors"

var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrUnknownPreset  = errors.New("unknown preset")
)
