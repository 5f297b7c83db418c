package inspect

import "errors"

var (
	ErrLineNotFound = errors.New("line does not exist")
	ErrInvalidLine  = errors.New("line number must be positive")
)
