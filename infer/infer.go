// Package infer turns raw command line strings into typed values.
//
// Classify applies these rules in order:
//
//  1. "true" or "false" → Boolean
//  2. -?[0-9]+ fitting in an int64 → Integer
//  3. -?[0-9]+.[0-9]+ → Float
//  4. "..." → the String between the quotes, verbatim
//  5. a value containing an unescaped comma → Array, each trimmed
//     segment classified by rules 1-3 or kept as a String
//  6. anything else → String, verbatim
//
// A backslash escapes a comma inside an array segment: `a\,b,c` is the
// array ["a,b", "c"]. There is no other escape mechanism, so free text
// containing a comma must be quoted as a whole to stay a string.
package infer

import (
	"strconv"
	"strings"

	"github.com/signadot/tomler/ir"
)

// Classify never fails; input that matches no other rule is a string.
func Classify(raw string) *ir.Node {
	if n := scalar(raw); n != nil {
		return n
	}
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		return ir.FromString(raw[1 : len(raw)-1])
	}
	if segs := splitUnescaped(raw); len(segs) > 1 {
		vals := make([]*ir.Node, len(segs))
		for i, seg := range segs {
			seg = strings.TrimSpace(seg)
			if n := scalar(seg); n != nil {
				vals[i] = n
				continue
			}
			vals[i] = ir.FromString(seg)
		}
		return ir.FromSlice(vals)
	}
	return ir.FromString(raw)
}

// scalar applies the boolean, integer and float rules.
func scalar(s string) *ir.Node {
	switch s {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	intPart, fracPart, hasDot := strings.Cut(strings.TrimPrefix(s, "-"), ".")
	if !digits(intPart) {
		return nil
	}
	if !hasDot {
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			// out of range
			return nil
		}
		return ir.FromInt(i)
	}
	if !digits(fracPart) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return ir.FromFloat(f)
}

func digits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// splitUnescaped splits on commas not preceded by a backslash and turns
// each `\,` into a plain comma. A value with no unescaped comma yields a
// single segment.
func splitUnescaped(s string) []string {
	var (
		res []string
		cur strings.Builder
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\\' && i+1 < len(s) && s[i+1] == ',' {
			cur.WriteByte(',')
			i++
			continue
		}
		if c == ',' {
			res = append(res, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	return append(res, cur.String())
}
