package cleaner_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/unicleaner/pkg/document"
	"github.com/dmitrymomot/unicleaner/pkg/logger"
	"github.com/dmitrymomot/unicleaner/pkg/sanitizer"
	"github.com/dmitrymomot/unicleaner/svc/cleaner"
)

// MockStore is a mock implementation of document.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Read(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) Write(ctx context.Context, name string, data []byte) error {
	args := m.Called(ctx, name, data)
	return args.Error(0)
}

func newService(t *testing.T, store document.Store, opts ...cleaner.Option) *cleaner.Service {
	t.Helper()
	svc, err := cleaner.New(store, opts...)
	require.NoError(t, err)
	return svc
}

func TestNew_RequiresStore(t *testing.T) {
	t.Parallel()

	_, err := cleaner.New(nil)
	assert.ErrorIs(t, err, cleaner.ErrNilStore)
}

func TestClean(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("removes carriage returns and writes result", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "site.js").Return([]byte("a\r\nb\r\n"), nil)
		store.On("Write", mock.Anything, "site.js", []byte("a\nb\n")).Return(nil)

		svc := newService(t, store)
		res, err := svc.Clean(ctx, "site.js", sanitizer.MustPreset(sanitizer.PresetCRLF), cleaner.CleanOptions{})
		require.NoError(t, err)

		assert.True(t, res.Written)
		assert.Equal(t, 2, res.Report.Total)
		assert.Equal(t, 6, res.Report.OriginalLength)
		assert.Equal(t, 4, res.Report.FinalLength)
		assert.Equal(t, document.Checksum("a\r\nb\r\n"), res.ChecksumBefore)
		assert.Equal(t, document.Checksum("a\nb\n"), res.ChecksumAfter)
		assert.NotEqual(t, res.ChecksumBefore, res.ChecksumAfter)
		store.AssertExpectations(t)
	})

	t.Run("unchanged document is not written", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "clean.js").Return([]byte("const x = 1;\n"), nil)

		svc := newService(t, store)
		res, err := svc.Clean(ctx, "clean.js", sanitizer.MustPreset(sanitizer.PresetSpecific), cleaner.CleanOptions{})
		require.NoError(t, err)

		assert.False(t, res.Written)
		assert.Zero(t, res.Report.Total)
		assert.Equal(t, res.ChecksumBefore, res.ChecksumAfter)
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("dry run reports without writing", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "site.js").Return([]byte("a\u200Bb"), nil)

		svc := newService(t, store)
		res, err := svc.Clean(ctx, "site.js", sanitizer.MustPreset(sanitizer.PresetSpecific), cleaner.CleanOptions{DryRun: true})
		require.NoError(t, err)

		assert.True(t, res.DryRun)
		assert.False(t, res.Written)
		assert.Equal(t, 1, res.Report.Count("zero-width space"))
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty rule list is a no-op", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "site.js").Return([]byte("a\r\n"), nil)

		svc := newService(t, store)
		res, err := svc.Clean(ctx, "site.js", nil, cleaner.CleanOptions{})
		require.NoError(t, err)
		assert.False(t, res.Written)
		assert.Empty(t, res.Report.Rules)
	})

	t.Run("read failure leaves document untouched", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "missing.js").Return(nil, document.ErrFileNotFound)

		svc := newService(t, store)
		res, err := svc.Clean(ctx, "missing.js", sanitizer.MustPreset(sanitizer.PresetCRLF), cleaner.CleanOptions{})
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, document.ErrIO)
		assert.ErrorIs(t, err, document.ErrFileNotFound)
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("write failure is reported", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "ro.js").Return([]byte("\r"), nil)
		store.On("Write", mock.Anything, "ro.js", mock.Anything).Return(document.ErrPermissionDenied)

		svc := newService(t, store)
		_, err := svc.Clean(ctx, "ro.js", sanitizer.MustPreset(sanitizer.PresetCRLF), cleaner.CleanOptions{})
		assert.ErrorIs(t, err, document.ErrIO)
		assert.ErrorIs(t, err, document.ErrPermissionDenied)
	})

	t.Run("strict UTF-8 rejects invalid input", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "bin.js").Return([]byte{0xff, 0xfe, '\r'}, nil)

		svc := newService(t, store, cleaner.WithStrictUTF8(true))
		_, err := svc.Clean(ctx, "bin.js", sanitizer.MustPreset(sanitizer.PresetCRLF), cleaner.CleanOptions{})
		assert.ErrorIs(t, err, document.ErrInvalidEncoding)
	})

	t.Run("canceled context skips write", func(t *testing.T) {
		t.Parallel()

		cctx, cancel := context.WithCancel(context.Background())
		store := new(MockStore)
		store.On("Read", mock.Anything, "site.js").Run(func(mock.Arguments) { cancel() }).Return([]byte("\r"), nil)

		svc := newService(t, store)
		_, err := svc.Clean(cctx, "site.js", sanitizer.MustPreset(sanitizer.PresetCRLF), cleaner.CleanOptions{})
		assert.ErrorIs(t, err, context.Canceled)
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClean_Hooks(t *testing.T) {
	t.Parallel()

	t.Run("before write can abort", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "site.js").Return([]byte("\r"), nil)

		hookErr := errors.New("too many changes")
		svc := newService(t, store, cleaner.WithBeforeWrite(func(_ context.Context, res *cleaner.Result) error {
			assert.Equal(t, 1, res.Report.Total)
			return hookErr
		}))

		_, err := svc.Clean(context.Background(), "site.js", sanitizer.MustPreset(sanitizer.PresetCRLF), cleaner.CleanOptions{})
		assert.ErrorIs(t, err, cleaner.ErrAborted)
		store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("after clean receives result", func(t *testing.T) {
		t.Parallel()

		store := new(MockStore)
		store.On("Read", mock.Anything, "site.js").Return([]byte("\r"), nil)
		store.On("Write", mock.Anything, "site.js", []byte("")).Return(nil)

		var got *cleaner.Result
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		ticks := []time.Time{start, start.Add(250 * time.Millisecond)}
		svc := newService(t, store,
			cleaner.WithClock(func() time.Time {
				now := ticks[0]
				ticks = ticks[1:]
				return now
			}),
			cleaner.WithAfterClean(func(_ context.Context, res *cleaner.Result) { got = res }),
		)

		res, err := svc.Clean(context.Background(), "site.js", sanitizer.MustPreset(sanitizer.PresetCRLF), cleaner.CleanOptions{})
		require.NoError(t, err)
		assert.Same(t, res, got)
		assert.Equal(t, 250*time.Millisecond, res.Duration)
	})
}

func TestClean_Logging(t *testing.T) {
	t.Parallel()

	store := new(MockStore)
	store.On("Read", mock.Anything, "site.js").Return([]byte("\u2028x\u2029"), nil)
	store.On("Write", mock.Anything, "site.js", []byte("x")).Return(nil)

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	svc := newService(t, store, cleaner.WithLogger(log))

	res, err := svc.Clean(context.Background(), "site.js", sanitizer.MustPreset(sanitizer.PresetSpecific), cleaner.CleanOptions{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "component=cleaner")
	assert.Contains(t, out, "run_id="+res.RunID.String())
	assert.Contains(t, out, `rule="line separator" count=1`)
	assert.Contains(t, out, "msg=\"document cleaned\"")
}

func TestClean_LocalStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "index-site.js")
	original := "\uFEFFconst a = 'x\u00A0y';\r\nconst p = '" + strings.Repeat("•", 16) + "';\r\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	svc := newService(t, document.NewLocalStore())

	rules := append(sanitizer.MustPreset(sanitizer.PresetSpecific), sanitizer.MustPreset(sanitizer.PresetCRLF)...)
	rules = append(rules, sanitizer.MustPreset(sanitizer.PresetFinal)...)

	res, err := svc.Clean(context.Background(), path, rules, cleaner.CleanOptions{})
	require.NoError(t, err)
	assert.True(t, res.Written)
	assert.Equal(t, 1, res.Report.Count("byte order mark"))
	assert.Equal(t, 2, res.Report.Count("carriage return"))
	assert.Equal(t, 1, res.Report.Count("bullet mask"))
	assert.Zero(t, res.Report.Count("bullet"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "const a = 'x\u00A0y';\nconst p = '"+strings.Repeat("*", 16)+"';\n", string(got))
	assert.Equal(t, document.Checksum(string(got)), res.ChecksumAfter)

	// a second run over the cleaned file changes nothing
	again, err := svc.Clean(context.Background(), path, rules, cleaner.CleanOptions{})
	require.NoError(t, err)
	assert.False(t, again.Written)
	assert.Zero(t, again.Report.Total)
}
