package document

import (
	"context"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// Store reads and writes whole documents by name.
type Store interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// Document is the full text of a file held in memory.
type Document struct {
	Name string
	Text string
}

// Checksum returns the BLAKE3 digest of the document text.
func (d *Document) Checksum() string {
	return Checksum(d.Text)
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	strictUTF8 bool
}

// WithStrictUTF8 rejects documents that are not valid UTF-8.
func WithStrictUTF8() LoadOption {
	return func(o *loadOptions) { o.strictUTF8 = true }
}

// Load reads name from s in full.
func Load(ctx context.Context, s Store, name string, opts ...LoadOption) (*Document, error) {
	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	data, err := s.Read(ctx, name)
	if err != nil {
		return nil, asIO(err)
	}

	if o.strictUTF8 && !utf8.Valid(data) {
		return nil, asIO(fmt.Errorf("%w: %s", ErrInvalidEncoding, name))
	}

	return &Document{Name: name, Text: string(data)}, nil
}

// Save writes the document back under its name.
func Save(ctx context.Context, s Store, d *Document) error {
	if d == nil || d.Name == "" {
		return asIO(ErrInvalidPath)
	}
	return asIO(s.Write(ctx, d.Name, []byte(d.Text)))
}

// Checksum returns the hex BLAKE3-256 digest of text.
func Checksum(text string) string {
	sum := blake3.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
