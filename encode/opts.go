package encode

import "github.com/signadot/tomler/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// EncodeIndent sets the indentation of JSON output.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
