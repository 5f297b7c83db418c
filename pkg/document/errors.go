package document

import "errors"

// ErrIO is the catch-all failure kind: every read, write and encoding error
// returned by this package matches it with errors.Is.
var ErrIO = errors.New("i/o failure")

var (
	ErrInvalidPath      = errors.New("invalid path")
	ErrFileNotFound     = errors.New("file not found")
	ErrIsDirectory      = errors.New("path is a directory")
	ErrPermissionDenied = errors.New("permission denied")
	ErrInvalidEncoding  = errors.New("invalid UTF-8 encoding")

	ErrFailedToReadFile   = errors.New("failed to read file")
	ErrFailedToWriteFile  = errors.New("failed to write file")
	ErrFailedToStatPath   = errors.New("failed to stat path")
	ErrFailedToRenameFile = errors.New("failed to replace file")

	// S3-specific errors
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrRequestTimeout     = errors.New("request timed out")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")

	ErrOperationTimeout  = errors.New("operation timed out")
	ErrOperationCanceled = errors.New("operation canceled")

	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)

// ioError tags err with ErrIO while keeping the specific sentinel reachable.
type ioError struct {
	err error
}

func (e *ioError) Error() string { return e.err.Error() }

func (e *ioError) Unwrap() []error { return []error{ErrIO, e.err} }

func asIO(err error) error {
	if err == nil {
		return nil
	}
	return &ioError{err: err}
}
