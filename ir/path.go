package ir

import "slices"

// KeyPath returns the table keys leading from the root table to y.
// The walk stops at the first ancestor that is not a table, so for a
// node under an array the result is relative to that array's element.
func (y *Node) KeyPath() []string {
	var res []string
	x := y
	for x.Parent != nil && x.Parent.Type == TableType {
		res = append(res, x.ParentField)
		x = x.Parent
	}
	slices.Reverse(res)
	return res
}

// Root returns the top of the tree containing y.
func (y *Node) Root() *Node {
	x := y
	for x.Parent != nil {
		x = x.Parent
	}
	return x
}
