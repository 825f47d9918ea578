// Package ir provides the value representation for TOML documents.
//
// # Overview
//
// A Node is a tagged union. The Type field says which of the other
// fields hold the value:
//
//   - StringType: String
//   - IntType: Int64
//   - FloatType: Float64
//   - BoolType: Bool
//   - DatetimeType: String, holding the TOML literal text unchanged
//   - ArrayType: Values
//   - TableType: Fields and Values, in parallel
//
// Values produced from command line input are only ever strings,
// integers, floats, booleans or arrays of those. Tables and date-times
// come from documents.
//
// # Tables
//
// For TableType nodes, Fields[i] is the key for Values[i]. Keys are
// unique and kept in insertion order; Set on an existing key replaces
// the value in place and Set on a new key appends.
//
//	t := ir.NewTable()
//	t.Set("host", ir.FromString("localhost"))
//	t.Set("port", ir.FromInt(5432))
//	v, _ := t.Get("port")
//
// Each child records its Parent, ParentIndex and ParentField, so
// KeyPath can recover the dotted path of a node.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use.
//
// # Related Packages
//
//   - github.com/signadot/tomler/ir/keypath - dot paths
//   - github.com/signadot/tomler/doc - format preserving documents built on ir
//   - github.com/signadot/tomler/encode - rendering nodes as text
package ir
