// Package parse parses TOML text into a format preserving document.
//
// # Usage
//
//	d, err := parse.Parse(data, parse.WithFilename("config.toml"))
//	if err != nil {
//	    var pe *parse.Error
//	    if errors.As(err, &pe) {
//	        fmt.Println(pe.Line, pe.Col)
//	    }
//	    return err
//	}
//
// The document is validated with github.com/pelletier/go-toml/v2 before
// it is built, so every TOML error is reported with its position and a
// snippet of the surrounding text.
//
// # Related Packages
//
//   - github.com/signadot/tomler/doc - the document
//   - github.com/signadot/tomler/token - statement scanning
package parse
