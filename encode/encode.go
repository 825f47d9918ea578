package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/tomler/format"
	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/token"

	"github.com/goccy/go-yaml"
)

type EncState struct {
	format format.Format
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es == nil || es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Encode writes node to w in the selected format followed by a newline.
// The default format is display text.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	var b strings.Builder
	switch {
	case es.format.IsText():
		writeDisplay(&b, node, es)
		b.WriteByte('\n')
	case es.format.IsTOML():
		if node.Type == ir.TableType {
			writeTOMLTable(&b, node, nil, es)
		} else {
			writeLiteral(&b, node, es)
			b.WriteByte('\n')
		}
	case es.format.IsJSON():
		d, err := encodeJSON(node, es.indent)
		if err != nil {
			return err
		}
		b.Write(d)
		b.WriteByte('\n')
	case es.format.IsYAML():
		d, err := yaml.Marshal(toYAML(node))
		if err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		b.Write(d)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// writeTOMLTable writes n as the body of a TOML document, with nested
// tables and arrays of tables as sections after the plain keys.
func writeTOMLTable(b *strings.Builder, n *ir.Node, path []string, es *EncState) {
	var deferred []int
	for i, f := range n.Fields {
		v := n.Values[i]
		if v.Type == ir.TableType || IsArrayOfTables(v) {
			deferred = append(deferred, i)
			continue
		}
		b.WriteString(es.color(ir.TableType, FieldColor, token.QuoteKey(f)))
		b.WriteString(es.color(v.Type, SepColor, " = "))
		writeLiteral(b, v, es)
		b.WriteByte('\n')
	}
	for _, i := range deferred {
		v := n.Values[i]
		sub := append(path[:len(path):len(path)], n.Fields[i])
		if v.Type == ir.TableType {
			writeHeader(b, "["+token.JoinKey(sub)+"]", es)
			writeTOMLTable(b, v, sub, es)
			continue
		}
		for _, elt := range v.Values {
			writeHeader(b, "[["+token.JoinKey(sub)+"]]", es)
			writeTOMLTable(b, elt, sub, es)
		}
	}
}

func writeHeader(b *strings.Builder, h string, es *EncState) {
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(es.color(ir.TableType, HeaderColor, h))
	b.WriteByte('\n')
}

// IsArrayOfTables reports whether n is a non-empty array holding only
// tables.
func IsArrayOfTables(n *ir.Node) bool {
	if n.Type != ir.ArrayType || len(n.Values) == 0 {
		return false
	}
	for _, v := range n.Values {
		if v.Type != ir.TableType {
			return false
		}
	}
	return true
}

func encodeJSON(n *ir.Node, indent int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, n); err != nil {
		return nil, err
	}
	if indent <= 0 {
		return buf.Bytes(), nil
	}
	out := bytes.NewBuffer(nil)
	if err := json.Indent(out, buf.Bytes(), "", strings.Repeat(" ", indent)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *ir.Node) error {
	switch n.Type {
	case ir.StringType, ir.DatetimeType:
		return writeJSONString(buf, n.String)
	case ir.IntType:
		buf.WriteString(strconv.FormatInt(n.Int64, 10))
	case ir.FloatType:
		if math.IsNaN(n.Float64) || math.IsInf(n.Float64, 0) {
			return writeJSONString(buf, FloatLiteral(n.Float64))
		}
		d, err := json.Marshal(n.Float64)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(n.Bool))
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, v := range n.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, v); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.TableType:
		buf.WriteByte('{')
		for i, f := range n.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, n.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode %s as json", n.Type)
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

// toYAML converts n to values goccy/go-yaml marshals in document order.
func toYAML(n *ir.Node) any {
	switch n.Type {
	case ir.ArrayType:
		res := make([]any, len(n.Values))
		for i, v := range n.Values {
			res[i] = toYAML(v)
		}
		return res
	case ir.TableType:
		res := make(yaml.MapSlice, len(n.Fields))
		for i, f := range n.Fields {
			res[i] = yaml.MapItem{Key: f, Value: toYAML(n.Values[i])}
		}
		return res
	default:
		return n.ToAny()
	}
}
