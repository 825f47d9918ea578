package encode

import (
	"math"
	"strconv"
	"strings"

	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/token"
)

// Literal returns n as a TOML value literal. Tables become inline
// tables.
func Literal(n *ir.Node) string {
	var b strings.Builder
	writeLiteral(&b, n, nil)
	return b.String()
}

func writeLiteral(b *strings.Builder, n *ir.Node, es *EncState) {
	switch n.Type {
	case ir.StringType:
		b.WriteString(es.color(n.Type, ValueColor, token.Quote(n.String)))
	case ir.ArrayType:
		b.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			writeLiteral(b, v, es)
		}
		b.WriteByte(']')
	case ir.TableType:
		if len(n.Fields) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{ ")
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(es.color(ir.TableType, FieldColor, token.QuoteKey(f)))
			b.WriteString(es.color(n.Values[i].Type, SepColor, " = "))
			writeLiteral(b, n.Values[i], es)
		}
		b.WriteString(" }")
	default:
		b.WriteString(es.color(n.Type, ValueColor, scalarLiteral(n)))
	}
}

func scalarLiteral(n *ir.Node) string {
	switch n.Type {
	case ir.IntType:
		return strconv.FormatInt(n.Int64, 10)
	case ir.FloatType:
		return FloatLiteral(n.Float64)
	case ir.BoolType:
		return strconv.FormatBool(n.Bool)
	case ir.DatetimeType:
		return n.String
	case ir.StringType:
		return token.Quote(n.String)
	}
	return ""
}

// FloatLiteral formats f so that it reads back as a TOML float.
func FloatLiteral(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	var s string
	if abs := math.Abs(f); abs == 0 || (abs >= 1e-5 && abs < 1e21) {
		s = strconv.FormatFloat(f, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(f, 'e', -1, 64)
	}
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Display returns n as text for a terminal: strings are unquoted,
// arrays are the display text of their elements joined by ", ", other
// scalars are their literal and tables are inline tables.
func Display(n *ir.Node) string {
	var b strings.Builder
	writeDisplay(&b, n, nil)
	return b.String()
}

func writeDisplay(b *strings.Builder, n *ir.Node, es *EncState) {
	switch n.Type {
	case ir.StringType:
		b.WriteString(es.color(n.Type, ValueColor, n.String))
	case ir.ArrayType:
		for i, v := range n.Values {
			if i > 0 {
				b.WriteString(es.color(n.Type, SepColor, ", "))
			}
			if v.Type == ir.ArrayType {
				writeLiteral(b, v, es)
				continue
			}
			writeDisplay(b, v, es)
		}
	default:
		writeLiteral(b, n, es)
	}
}
