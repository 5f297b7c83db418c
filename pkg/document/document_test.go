package document_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/unicleaner/pkg/document"
)

type memStore struct {
	files map[string][]byte
	err   error
}

func (m *memStore) Read(_ context.Context, name string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[name]
	if !ok {
		return nil, document.ErrFileNotFound
	}
	return data, nil
}

func (m *memStore) Write(_ context.Context, name string, data []byte) error {
	if m.err != nil {
		return m.err
	}
	m.files[name] = data
	return nil
}

func TestLoadSave(t *testing.T) {
	t.Parallel()

	store := &memStore{files: map[string][]byte{"a.js": []byte("héllo")}}
	ctx := context.Background()

	doc, err := document.Load(ctx, store, "a.js")
	require.NoError(t, err)
	assert.Equal(t, "a.js", doc.Name)
	assert.Equal(t, "héllo", doc.Text)

	doc.Text = "hello"
	require.NoError(t, document.Save(ctx, store, doc))
	assert.Equal(t, "hello", string(store.files["a.js"]))
}

func TestLoad_ErrorsMatchIO(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := document.Load(ctx, &memStore{files: map[string][]byte{}}, "missing.js")
	require.Error(t, err)
	assert.ErrorIs(t, err, document.ErrIO)
	assert.ErrorIs(t, err, document.ErrFileNotFound)

	_, err = document.Load(ctx, document.NewLocalStore(), filepath.Join(t.TempDir(), "nope.js"))
	assert.ErrorIs(t, err, document.ErrIO)
	assert.ErrorIs(t, err, document.ErrFileNotFound)

	boom := errors.New("boom")
	err = document.Save(ctx, &memStore{err: boom}, &document.Document{Name: "a", Text: "x"})
	assert.ErrorIs(t, err, document.ErrIO)
	assert.ErrorIs(t, err, boom)

	err = document.Save(ctx, &memStore{}, &document.Document{})
	assert.ErrorIs(t, err, document.ErrInvalidPath)
}

func TestLoad_StrictUTF8(t *testing.T) {
	t.Parallel()

	store := &memStore{files: map[string][]byte{"bad.js": {'a', 0xff, 'b'}}}
	ctx := context.Background()

	doc, err := document.Load(ctx, store, "bad.js")
	require.NoError(t, err)
	assert.Len(t, doc.Text, 3)

	_, err = document.Load(ctx, store, "bad.js", document.WithStrictUTF8())
	assert.ErrorIs(t, err, document.ErrInvalidEncoding)
	assert.ErrorIs(t, err, document.ErrIO)
}

func TestChecksum(t *testing.T) {
	t.Parallel()

	a := document.Checksum("abc")
	assert.Len(t, a, 64)
	assert.Equal(t, a, document.Checksum("abc"))
	assert.NotEqual(t, a, document.Checksum("abd"))

	doc := &document.Document{Text: "abc"}
	assert.Equal(t, a, doc.Checksum())
}
