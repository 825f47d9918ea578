// Package keypath parses dot separated key paths.
//
// A key path names a value by the tables leading to it:
//
//	"name"             // top level key
//	"database.host"    // key host in table database
//	"a.b.c"            // key c in table a.b
//
// Segments are split on every '.', with no quoting, and must be non
// empty. "", ".a", "a." and "a..b" are all malformed.
//
// # Usage
//
//	p, err := keypath.Parse("database.host")
//	parent := p.Parent() // database
//	last := p.Last()     // host
package keypath
