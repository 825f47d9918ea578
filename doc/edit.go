package doc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/signadot/tomler/encode"
	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/token"
)

// Set stores v under key in table t. An existing key keeps its place in
// the text and only its value is rewritten. A new key is written after
// the last key of the table.
//
// Set refuses to replace a table or an array of tables.
func (d *Document) Set(t *ir.Node, key string, v *ir.Node) error {
	if t.Type != ir.TableType || t.Root() != d.root {
		return fmt.Errorf("%w: not a table of this document", ir.ErrTypeConflict)
	}
	old, _ := t.Get(key)
	if old == nil {
		return d.insert(t, key, v)
	}
	return d.replace(t, key, old, v)
}

// EnsureTable returns the table under key in t, adding an empty one if
// the key is absent. A new table has no text until a key is set in it.
func (d *Document) EnsureTable(t *ir.Node, key string) (*ir.Node, error) {
	x, _ := t.Get(key)
	if x != nil {
		if x.Type != ir.TableType {
			return nil, fmt.Errorf("%w: %s is a %s", ir.ErrTypeConflict, key, x.Type)
		}
		return x, nil
	}
	x = ir.NewTable()
	t.Set(key, x)
	if h := d.homes[t]; h != nil && h.item != nil {
		d.homes[x] = &home{item: h.item}
		d.rerender(h.item)
	}
	return x, nil
}

// Delete removes key from table t and returns its value, or nil if the
// key is absent. Deleting a table removes its header sections and every
// key written under it.
func (d *Document) Delete(t *ir.Node, key string) *ir.Node {
	old, _ := t.Get(key)
	if old == nil {
		return nil
	}
	if h := d.homes[t]; h != nil && h.item != nil {
		t.Delete(key)
		d.forget(old)
		d.rerender(h.item)
		return old
	}
	if it := d.owners[old]; it != nil {
		d.removeItem(it)
		t.Delete(key)
		d.forget(old)
		return old
	}
	// a table or array of tables spread over sections
	d.sections = slices.DeleteFunc(d.sections, func(s *Section) bool {
		return !s.IsRoot() && isUnder(s.Node, old)
	})
	for _, s := range d.sections {
		s.Items = slices.DeleteFunc(s.Items, func(it *Item) bool {
			return it.Node != nil && isUnder(it.Node, old)
		})
	}
	t.Delete(key)
	d.forget(old)
	return old
}

func (d *Document) replace(t *ir.Node, key string, old, v *ir.Node) error {
	if old.Type == ir.TableType || d.aots[old] {
		return fmt.Errorf("%w: cannot replace %s %s", ir.ErrTypeConflict, d.kindOf(old), key)
	}
	if h := d.homes[t]; h != nil && h.item != nil {
		t.Set(key, v)
		d.forget(old)
		d.markInline(v, h.item)
		d.rerender(h.item)
		return nil
	}
	it := d.owners[old]
	if it == nil {
		return fmt.Errorf("%w: no text for %s", ir.ErrTypeConflict, key)
	}
	t.Set(key, v)
	d.forget(old)
	it.Value = encode.Literal(v)
	it.Node = v
	d.owners[v] = it
	d.markInline(v, it)
	return nil
}

func (d *Document) kindOf(n *ir.Node) string {
	if d.aots[n] {
		return "array of tables"
	}
	return strings.ToLower(n.Type.String())
}

func (d *Document) insert(t *ir.Node, key string, v *ir.Node) error {
	h, err := d.materialize(t)
	if err != nil {
		return err
	}
	if h.item != nil {
		t.Set(key, v)
		d.markInline(v, h.item)
		d.rerender(h.item)
		return nil
	}
	rel := append(slices.Clone(h.prefix), key)
	s := h.section
	idx, anchor := s.insertPos(h.prefix, d.followed(s))
	indent := ""
	if anchor != nil {
		indent = anchor.Indent
	}
	d.terminateBefore(s, idx)
	it := &Item{
		Kind:    token.KeyValue,
		Indent:  indent,
		Key:     token.JoinKey(rel),
		Sep:     " = ",
		Value:   encode.Literal(v),
		Trailer: "\n",
		Path:    rel,
		Node:    v,
	}
	s.Items = slices.Insert(s.Items, idx, it)
	t.Set(key, v)
	d.owners[v] = it
	d.markInline(v, it)
	return nil
}

// rerender rewrites the value text of an item holding an inline value.
func (d *Document) rerender(it *Item) {
	it.Value = encode.Literal(it.Node)
}

func (d *Document) removeItem(it *Item) {
	for _, s := range d.sections {
		if i := slices.Index(s.Items, it); i != -1 {
			s.Items = slices.Delete(s.Items, i, i+1)
			return
		}
	}
}

// materialize returns the home of t, giving it one if it has no text
// yet. Under a table written with dotted keys t is written with dotted
// keys too; otherwise it gets a new [header] section.
func (d *Document) materialize(t *ir.Node) (*home, error) {
	if h := d.homes[t]; h != nil {
		return h, nil
	}
	var rel []string
	anc := t
	for d.homes[anc] == nil {
		if anc.Parent == nil || anc.Parent.Type != ir.TableType {
			return nil, fmt.Errorf("%w: table %s has no place in the document", ir.ErrTypeConflict, token.JoinKey(headerPath(t)))
		}
		rel = append(rel, anc.ParentField)
		anc = anc.Parent
	}
	slices.Reverse(rel)
	ah := d.homes[anc]
	if ah.item != nil {
		return nil, fmt.Errorf("%w: table %s inside an inline table", ir.ErrTypeConflict, token.JoinKey(headerPath(t)))
	}
	if len(ah.prefix) > 0 {
		h := &home{section: ah.section, prefix: append(slices.Clone(ah.prefix), rel...)}
		d.homes[t] = h
		return h, nil
	}
	s := &Section{
		Kind:   token.Table,
		Path:   headerPath(t),
		Header: "[" + token.JoinKey(headerPath(t)) + "]\n",
		Node:   t,
	}
	idx := d.sectionPos(t, anc)
	nonEmpty, blank := d.terminate(idx)
	if nonEmpty && !blank {
		s.Header = "\n" + s.Header
	}
	if idx < len(d.sections) {
		// a blank line in front of the section that follows
		s.Items = []*Item{{Kind: token.Blank, Trailer: "\n"}}
	}
	d.sections = slices.Insert(d.sections, idx, s)
	h := &home{section: s}
	d.homes[t] = h
	return h, nil
}

// sectionPos returns where a new section for t goes: before the first
// section of a table under t, else after the last section under anc.
func (d *Document) sectionPos(t, anc *ir.Node) int {
	for i, s := range d.sections {
		if s.Node != t && isUnder(s.Node, t) {
			return i
		}
	}
	last := 0
	for i, s := range d.sections {
		if isUnder(s.Node, anc) {
			last = i
		}
	}
	return last + 1
}

// followed reports whether another section comes after s.
func (d *Document) followed(s *Section) bool {
	i := slices.Index(d.sections, s)
	return i != -1 && i < len(d.sections)-1
}

// terminate makes the text in front of section idx end in a newline.
// It reports whether there is any such text and whether it ends in a
// blank line.
func (d *Document) terminate(idx int) (nonEmpty, blank bool) {
	for j := idx - 1; j >= 0; j-- {
		s := d.sections[j]
		b := &strings.Builder{}
		s.text(b)
		txt := b.String()
		if txt == "" {
			continue
		}
		if !strings.HasSuffix(txt, "\n") {
			s.appendNewline()
			txt += "\n"
		}
		return true, strings.HasSuffix(txt, "\n\n") || strings.HasSuffix(txt, "\n\r\n")
	}
	return false, false
}

// terminateBefore makes the text in front of item position idx of s end
// in a newline.
func (d *Document) terminateBefore(s *Section, idx int) {
	if idx > 0 {
		it := s.Items[idx-1]
		if !strings.HasSuffix(it.Trailer, "\n") {
			it.Trailer += "\n"
		}
		return
	}
	if s.IsRoot() {
		return
	}
	if !strings.HasSuffix(s.Header, "\n") {
		s.Header += "\n"
	}
}

func (s *Section) appendNewline() {
	if n := len(s.Items); n > 0 {
		s.Items[n-1].Trailer += "\n"
		return
	}
	s.Header += "\n"
}

// insertPos returns the item index for a new key written with prefix
// and the key/value it follows, if any. Without key/values the new key
// goes in front of trailing blank lines, and in front of the comments
// leading into the next section when followed is set.
func (s *Section) insertPos(prefix []string, followed bool) (int, *Item) {
	last, lastPrefixed := -1, -1
	for i, it := range s.Items {
		if !it.IsKeyValue() {
			continue
		}
		last = i
		if len(prefix) > 0 && hasPrefix(it.Path, prefix) {
			lastPrefixed = i
		}
	}
	if lastPrefixed != -1 {
		return lastPrefixed + 1, s.Items[lastPrefixed]
	}
	if last != -1 {
		return last + 1, s.Items[last]
	}
	n := len(s.Items)
	if followed {
		for n > 0 && s.Items[n-1].Kind == token.Comment {
			n--
		}
	}
	for n > 0 && s.Items[n-1].Kind == token.Blank {
		n--
	}
	return n, nil
}

func hasPrefix(p, prefix []string) bool {
	return len(p) > len(prefix) && slices.Equal(p[:len(prefix)], prefix)
}
