package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore reads and writes files on the local filesystem. Relative names
// resolve against baseDir, or the working directory when baseDir is empty.
type LocalStore struct {
	baseDir string
	atomic  bool
}

// LocalOption configures LocalStore.
type LocalOption func(*LocalStore)

// WithAtomicWrite selects between write-to-temp-then-rename (true, the
// default) and truncating the target in place (false).
func WithAtomicWrite(atomic bool) LocalOption {
	return func(s *LocalStore) {
		s.atomic = atomic
	}
}

// WithBaseDir resolves relative names against dir.
func WithBaseDir(dir string) LocalOption {
	return func(s *LocalStore) {
		s.baseDir = dir
	}
}

// NewLocalStore creates a filesystem store.
func NewLocalStore(opts ...LocalOption) *LocalStore {
	s := &LocalStore{atomic: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the full content of name.
func (s *LocalStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, classifyFSError(err, ErrFailedToStatPath, name)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classifyFSError(err, ErrFailedToReadFile, name)
	}
	return data, nil
}

// Write replaces the content of name. The file must already exist; its
// permission bits are kept.
func (s *LocalStore) Write(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	// A symlinked target is replaced at its destination, not at the link.
	path, err = filepath.EvalSymlinks(path)
	if err != nil {
		return classifyFSError(err, ErrFailedToStatPath, name)
	}

	info, err := os.Stat(path)
	if err != nil {
		return classifyFSError(err, ErrFailedToStatPath, name)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrIsDirectory, name)
	}

	if !s.atomic {
		if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
			return classifyFSError(err, ErrFailedToWriteFile, name)
		}
		return nil
	}

	return writeAtomic(path, data, info.Mode().Perm())
}

// writeAtomic writes data to a sibling temp file and renames it over path,
// so readers never observe a partially written file.
func writeAtomic(path string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return classifyFSError(err, ErrFailedToWriteFile, path)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		cleanup()
		return fmt.Errorf("%w: %v", ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("%w: %v", ErrFailedToRenameFile, err)
	}
	return nil
}

func (s *LocalStore) resolve(name string) (string, error) {
	if name == "" {
		return "", ErrInvalidPath
	}
	path := filepath.Clean(name)
	if s.baseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(s.baseDir, path)
	}
	return path, nil
}

func classifyFSError(err error, fallback error, name string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFileNotFound, name)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, name)
	default:
		return fmt.Errorf("%w: %v", fallback, err)
	}
}
