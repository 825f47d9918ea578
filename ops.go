package tomler

import (
	"fmt"

	"github.com/signadot/tomler/doc"
	"github.com/signadot/tomler/encode"
	"github.com/signadot/tomler/infer"
	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/ir/keypath"
)

// Lookup returns the value at key.
func Lookup(d *doc.Document, key string) (*ir.Node, error) {
	p, err := keypath.Parse(key)
	if err != nil {
		return nil, err
	}
	v, ok := ResolveForRead(d, p)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return v, nil
}

// Get returns the display text of the value at key.
func Get(d *doc.Document, key string) (string, error) {
	v, err := Lookup(d, key)
	if err != nil {
		return "", err
	}
	return encode.Display(v), nil
}

// Set classifies raw and stores it at key, creating missing tables. It
// returns the stored value.
func Set(d *doc.Document, key, raw string) (*ir.Node, error) {
	p, err := keypath.Parse(key)
	if err != nil {
		return nil, err
	}
	v := infer.Classify(raw)
	slot, err := ResolveForWrite(d, p)
	if err != nil {
		return nil, err
	}
	if err := slot.Store(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Remove deletes key and returns its former value.
func Remove(d *doc.Document, key string) (*ir.Node, error) {
	p, err := keypath.Parse(key)
	if err != nil {
		return nil, err
	}
	return removePath(d, p)
}

// Keys returns the top level keys in document order.
func Keys(d *doc.Document) []string {
	return d.Root().Keys()
}

// TableKeys returns the keys of the table at key, or the top level keys
// when key is empty. A key that does not name a table is not found.
func TableKeys(d *doc.Document, key string) ([]string, error) {
	if key == "" {
		return Keys(d), nil
	}
	v, err := Lookup(d, key)
	if err != nil {
		return nil, err
	}
	if v.Type != ir.TableType {
		return nil, fmt.Errorf("%w: %s is not a table", ErrKeyNotFound, key)
	}
	return v.Keys(), nil
}

// Has reports whether key is present. A malformed key is not present.
func Has(d *doc.Document, key string) bool {
	_, err := Lookup(d, key)
	return err == nil
}
