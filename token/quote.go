package token

import (
	"encoding/hex"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Quote returns v as a TOML basic string.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	d = append(d, '"')
	return string(d)
}

// IsBareKey reports whether k can be written as a TOML bare key.
func IsBareKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		c := k[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		case c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}

// QuoteKey returns k as a single TOML key segment.
func QuoteKey(k string) string {
	if IsBareKey(k) {
		return k
	}
	return Quote(k)
}

// JoinKey returns the dotted TOML key for segs.
func JoinKey(segs []string) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = QuoteKey(s)
	}
	return strings.Join(parts, ".")
}
