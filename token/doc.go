// Package token provides lexical support for TOML documents.
//
// [Scan] splits a document into statements (blank lines, comments,
// table headers and key/value pairs) whose raw text concatenates back
// to the input. It does not validate TOML; callers validate with a real
// decoder first and use the statements to locate source text.
//
// [Quote], [IsBareKey] and [QuoteKey] produce TOML lexemes.
package token
