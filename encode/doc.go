// Package encode renders IR nodes as text.
//
// # Usage
//
//	// TOML literal of a value, as it appears right of '='
//	lit := encode.Literal(node) // `["web", "api"]`
//
//	// Display text for a terminal
//	txt := encode.Display(node) // `web, api`
//
//	// Whole value in an output format, optionally colored
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeColors(encode.NewColors()))
//
// # Related Packages
//
//   - github.com/signadot/tomler/ir - IR representation
//   - github.com/signadot/tomler/format - output formats
package encode
