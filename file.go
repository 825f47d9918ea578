package tomler

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/signadot/tomler/debug"
	"github.com/signadot/tomler/doc"
	"github.com/signadot/tomler/parse"

	"github.com/natefinch/atomic"
)

// File is a document read from, and saved to, a path.
type File struct {
	Path string
	Doc  *doc.Document
	// Exists is false for a document made for a missing file.
	Exists bool

	orig []byte
}

// Load reads and parses the file at path.
func Load(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return fromBytes(path, d)
}

// LoadOrNew is like Load but starts an empty document when the file
// does not exist.
func LoadOrNew(path string) (*File, error) {
	d, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &File{Path: path, Doc: doc.New()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return fromBytes(path, d)
}

func fromBytes(path string, d []byte) (*File, error) {
	pd, err := parse.Parse(d, parse.WithFilename(path))
	if err != nil {
		return nil, err
	}
	return &File{Path: path, Doc: pd, Exists: true, orig: d}, nil
}

// Original returns the text the file was loaded with.
func (f *File) Original() []byte { return f.orig }

// Changed reports whether the document text differs from what was
// loaded.
func (f *File) Changed() bool {
	return !f.Exists || !bytes.Equal(f.orig, f.Doc.Bytes())
}

// Save checks that the document text is valid TOML and atomically
// replaces the file with it.
func (f *File) Save() error {
	d := f.Doc.Bytes()
	if _, err := parse.Parse(d, parse.WithFilename(f.Path)); err != nil {
		return fmt.Errorf("refusing to write %s: %w", f.Path, err)
	}
	if debug.Save() {
		debug.Logf("save %s: %d bytes\n", f.Path, len(d))
	}
	if err := atomic.WriteFile(f.Path, bytes.NewReader(d)); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !f.Exists {
		// the temporary file was created 0600
		if err := os.Chmod(f.Path, 0o644); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		f.Exists = true
	}
	f.orig = d
	return nil
}
