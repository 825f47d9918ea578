// Package doc provides a format preserving TOML document.
//
// A [Document] keeps the source as a list of sections (the root and one
// per [table] or [[array]] header), each holding items: trivia lines
// and key/value statements with their exact text. Over the sections it
// maintains the logical table tree as *ir.Node values.
//
// Edits go through the document ([Document.Set], [Document.EnsureTable],
// [Document.Delete]) so that only the touched items are rewritten and
// everything else serializes byte for byte as it was read.
//
// Documents are built by package parse.
package doc
