package tomler

import (
	"fmt"
	"strings"

	"github.com/signadot/tomler/debug"
	"github.com/signadot/tomler/doc"
	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/ir/keypath"
)

// Slot is where a write to a path lands: a key in a table.
type Slot struct {
	doc   *doc.Document
	Table *ir.Node
	Key   string
}

// Current returns the value under the slot's key, or nil.
func (s *Slot) Current() *ir.Node {
	v, _ := s.Table.Get(s.Key)
	return v
}

// Store writes v under the slot's key, in place if the key exists. An
// equal value of the same type leaves the existing text as written.
func (s *Slot) Store(v *ir.Node) error {
	if debug.Path() {
		debug.Logf("store %s = %v\n", s.Key, v)
	}
	if cur := s.Current(); cur != nil && cur.Type == v.Type && ir.Compare(cur, v) == 0 {
		return nil
	}
	return s.doc.Set(s.Table, s.Key, v)
}

// ResolveForRead returns the value at p, or false if p or one of its
// tables is missing or a table along p is not a table.
func ResolveForRead(d *doc.Document, p keypath.Path) (*ir.Node, bool) {
	t := d.Root()
	for _, seg := range p.Parent() {
		x, _ := t.Get(seg)
		if x == nil || x.Type != ir.TableType {
			return nil, false
		}
		t = x
	}
	v, _ := t.Get(p.Last())
	return v, v != nil
}

// ResolveForWrite returns the slot for p, creating missing tables along
// the way. It checks the whole path before creating anything: a non
// table on the way, or a table at the end, is a type conflict and
// leaves d untouched.
func ResolveForWrite(d *doc.Document, p keypath.Path) (*Slot, error) {
	if len(p) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrMalformedPath)
	}
	t := d.Root()
	for i, seg := range p.Parent() {
		x, _ := t.Get(seg)
		if x == nil {
			t = nil
			break
		}
		if x.Type != ir.TableType {
			return nil, fmt.Errorf("%w: %s is %s, not a table", ErrTypeConflict, p.Prefix(i+1), describe(d, x))
		}
		t = x
	}
	if t != nil {
		if x, _ := t.Get(p.Last()); x != nil && (x.Type == ir.TableType || d.IsArrayOfTables(x)) {
			return nil, fmt.Errorf("%w: %s is %s", ErrTypeConflict, p, describe(d, x))
		}
	}
	t = d.Root()
	for _, seg := range p.Parent() {
		x, err := d.EnsureTable(t, seg)
		if err != nil {
			return nil, err
		}
		t = x
	}
	if debug.Path() {
		debug.Logf("resolved %s to table %v\n", p, t)
	}
	return &Slot{doc: d, Table: t, Key: p.Last()}, nil
}

// removePath detaches the value at p and returns it.
func removePath(d *doc.Document, p keypath.Path) (*ir.Node, error) {
	if _, ok := ResolveForRead(d, p); !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, p)
	}
	t := d.Root()
	for _, seg := range p.Parent() {
		t, _ = t.Get(seg)
	}
	return d.Delete(t, p.Last()), nil
}

func describe(d *doc.Document, n *ir.Node) string {
	switch {
	case d.IsArrayOfTables(n):
		return "an array of tables"
	case n.Type == ir.TableType:
		return "a table"
	case n.Type == ir.IntType:
		return "an integer"
	case n.Type == ir.ArrayType:
		return "an array"
	default:
		return "a " + strings.ToLower(n.Type.String())
	}
}
