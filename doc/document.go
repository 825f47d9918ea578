package doc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/token"
)

type Section struct {
	// Kind is token.Table or token.ArrayTable; the root section has
	// kind token.Blank and no header.
	Kind token.Kind
	// Path is the decoded header key.
	Path []string
	// Header is the raw header line, including any blank line put in
	// front of a section added by an edit.
	Header string
	Items  []*Item
	// Node is the table the section defines.
	Node *ir.Node
}

func (s *Section) IsRoot() bool { return s.Kind == token.Blank }

func (s *Section) text(b *strings.Builder) {
	b.WriteString(s.Header)
	for _, it := range s.Items {
		b.WriteString(it.Text())
	}
}

// Item is a line of a section: trivia (blank or comment) or a key/value
// statement.
type Item struct {
	Kind    token.Kind
	Indent  string
	Key     string
	Sep     string
	Value   string
	Trailer string

	// Path is the decoded key relative to the section table.
	Path []string
	// Node is the value of a key/value item.
	Node *ir.Node
}

func (it *Item) Text() string {
	return it.Indent + it.Key + it.Sep + it.Value + it.Trailer
}

func (it *Item) IsKeyValue() bool { return it.Kind == token.KeyValue }

// home records where the keys of a table are written.
type home struct {
	// section holds the keys, written relative to its table with
	// prefix in front.
	section *Section
	prefix  []string
	// item is set for inline tables: the key/value item whose value
	// contains the table.
	item *Item
}

type Document struct {
	root     *ir.Node
	sections []*Section
	// homes has an entry for each table that has text. Tables created
	// only as header prefixes ([a.b] makes a) have none until an edit
	// writes into them.
	homes map[*ir.Node]*home
	// owners maps each key/value item value to its item.
	owners map[*ir.Node]*Item
	aots   map[*ir.Node]bool
}

// New returns an empty document.
func New() *Document {
	root := ir.NewTable()
	rs := &Section{Kind: token.Blank, Node: root}
	return &Document{
		root:     root,
		sections: []*Section{rs},
		homes:    map[*ir.Node]*home{root: {section: rs}},
		owners:   map[*ir.Node]*Item{},
		aots:     map[*ir.Node]bool{},
	}
}

// Root returns the root table.
func (d *Document) Root() *ir.Node { return d.root }

// IsArrayOfTables reports whether n was written as [[header]] sections.
func (d *Document) IsArrayOfTables(n *ir.Node) bool { return d.aots[n] }

func (d *Document) String() string {
	b := &strings.Builder{}
	for _, s := range d.sections {
		s.text(b)
	}
	return b.String()
}

func (d *Document) Bytes() []byte {
	return []byte(d.String())
}

func (d *Document) current() *Section {
	return d.sections[len(d.sections)-1]
}

// AddHeader starts a new section for a [table] or [[array]] header with
// decoded key path.
func (d *Document) AddHeader(kind token.Kind, path []string, raw string) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty header", ir.ErrParse)
	}
	s := &Section{Kind: kind, Path: slices.Clone(path), Header: raw}
	t := d.root
	for _, seg := range path[:len(path)-1] {
		x, _ := t.Get(seg)
		switch {
		case x == nil:
			x = ir.NewTable()
			t.Set(seg, x)
		case d.aots[x]:
			x = x.Values[len(x.Values)-1]
		case x.Type != ir.TableType:
			return fmt.Errorf("%w: %s is not a table", ir.ErrParse, token.JoinKey(path))
		}
		t = x
	}
	last := path[len(path)-1]
	x, _ := t.Get(last)
	switch kind {
	case token.Table:
		if x == nil {
			x = ir.NewTable()
			t.Set(last, x)
		} else if x.Type != ir.TableType {
			return fmt.Errorf("%w: %s is not a table", ir.ErrParse, token.JoinKey(path))
		}
	case token.ArrayTable:
		if x == nil {
			x = ir.FromSlice(nil)
			d.aots[x] = true
			t.Set(last, x)
		} else if !d.aots[x] {
			return fmt.Errorf("%w: %s is not an array of tables", ir.ErrParse, token.JoinKey(path))
		}
		elt := ir.NewTable()
		x.Append(elt)
		x = elt
	default:
		return fmt.Errorf("%w: bad header kind %s", ir.ErrParse, kind)
	}
	s.Node = x
	d.homes[x] = &home{section: s}
	d.sections = append(d.sections, s)
	return nil
}

// AddTrivia appends a blank or comment line to the current section.
func (d *Document) AddTrivia(st *token.Statement) {
	s := d.current()
	s.Items = append(s.Items, &Item{Kind: st.Kind, Indent: st.Indent, Trailer: st.Trailer})
}

// AddKeyValue appends a key/value statement with decoded key and value
// to the current section.
func (d *Document) AddKeyValue(st *token.Statement, key []string, v *ir.Node) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ir.ErrParse)
	}
	s := d.current()
	t := s.Node
	for i, seg := range key[:len(key)-1] {
		x, _ := t.Get(seg)
		switch {
		case x == nil:
			x = ir.NewTable()
			t.Set(seg, x)
		case x.Type != ir.TableType:
			return fmt.Errorf("%w: %s is not a table", ir.ErrParse, token.JoinKey(key[:i+1]))
		}
		if d.homes[x] == nil {
			d.homes[x] = &home{section: s, prefix: slices.Clone(key[:i+1])}
		}
		t = x
	}
	last := key[len(key)-1]
	if x, _ := t.Get(last); x != nil {
		return fmt.Errorf("%w: duplicate key %s", ir.ErrParse, token.JoinKey(key))
	}
	t.Set(last, v)
	it := &Item{
		Kind:    token.KeyValue,
		Indent:  st.Indent,
		Key:     st.Key,
		Sep:     st.Sep,
		Value:   st.Value,
		Trailer: st.Trailer,
		Path:    slices.Clone(key),
		Node:    v,
	}
	d.owners[v] = it
	d.markInline(v, it)
	s.Items = append(s.Items, it)
	return nil
}

// markInline gives every table inside v the home of item it.
func (d *Document) markInline(v *ir.Node, it *Item) {
	switch v.Type {
	case ir.TableType:
		d.homes[v] = &home{item: it}
	case ir.ArrayType:
	default:
		return
	}
	for _, x := range v.Values {
		d.markInline(x, it)
	}
}

// forget drops all bookkeeping for v and everything under it.
func (d *Document) forget(v *ir.Node) {
	delete(d.homes, v)
	delete(d.owners, v)
	delete(d.aots, v)
	for _, x := range v.Values {
		d.forget(x)
	}
}

// isUnder reports whether n is anc or lies below it.
func isUnder(n, anc *ir.Node) bool {
	for x := n; x != nil; x = x.Parent {
		if x == anc {
			return true
		}
	}
	return false
}

// headerPath returns the key path of table t as written in a header:
// array of tables elements are addressed by the array's key.
func headerPath(t *ir.Node) []string {
	var res []string
	for x := t; x != nil; {
		res = append(x.KeyPath(), res...)
		for x.Parent != nil && x.Parent.Type == ir.TableType {
			x = x.Parent
		}
		// x is a root table or an element of an array
		x = x.Parent
	}
	return res
}
