// Package tomler reads and edits TOML configuration files by dotted key
// while keeping their formatting.
//
// # Usage
//
//	f, err := tomler.LoadOrNew("config.toml")
//	if err != nil {
//	    return err
//	}
//	if _, err := tomler.Set(f.Doc, "server.port", "8080"); err != nil {
//	    return err
//	}
//	return f.Save()
//
// Values given as text are typed by [infer.Classify]: "8080" is an
// integer, "a,b" an array of strings, `"a,b"` a string.
//
// Errors wrap one of [ErrIO], [ErrParse], [ErrMalformedPath],
// [ErrTypeConflict] or [ErrKeyNotFound]; [ExitCode] maps them to a
// process exit status.
//
// # Related Packages
//
//   - github.com/signadot/tomler/doc - the format preserving document
//   - github.com/signadot/tomler/infer - value classification
package tomler
