package cleaner

import "errors"

var (
	ErrNilStore = errors.New("cleaner: store is required")
	ErrAborted  = errors.New("cleaner: write aborted")
)
