// Package format names the output formats a value can be rendered in.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/tomler/encode - renders values in a format
package format
