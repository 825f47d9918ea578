package parse

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/tomler/debug"
	"github.com/signadot/tomler/doc"
	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/token"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

func Parse(d []byte, opts ...ParseOption) (*doc.Document, error) {
	o := &parseOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if err := validate(d, o); err != nil {
		return nil, err
	}
	sts, err := token.Scan(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := doc.New()
	p := &unstable.Parser{}
	p.Reset(d)
	for i := range sts {
		st := &sts[i]
		if debug.Parse() {
			debug.Logf("parse: line %d %s %q\n", st.Line, st.Kind, st.Raw())
		}
		switch st.Kind {
		case token.Blank, token.Comment:
			res.AddTrivia(st)
			continue
		}
		if !p.NextExpression() {
			return nil, fmt.Errorf("%w: line %d: no expression for %s: %v", errInternal, st.Line, st.Kind, p.Error())
		}
		expr := p.Expression()
		key := keyOf(expr)
		switch st.Kind {
		case token.Table, token.ArrayTable:
			if expr.Kind.String() != st.Kind.String() {
				return nil, fmt.Errorf("%w: line %d: %s is a %s", errInternal, st.Line, st.Kind, expr.Kind)
			}
			err = res.AddHeader(st.Kind, key, st.Raw())
		case token.KeyValue:
			if expr.Kind != unstable.KeyValue {
				return nil, fmt.Errorf("%w: line %d: key/value is a %s", errInternal, st.Line, expr.Kind)
			}
			var v *ir.Node
			v, err = decodeValue(expr.Value())
			if err == nil {
				err = res.AddKeyValue(st, key, v)
			}
		}
		if err != nil {
			return nil, o.wrap(err, st.Line)
		}
	}
	if p.NextExpression() {
		return nil, fmt.Errorf("%w: expressions left after the last statement", errInternal)
	}
	if err := p.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return res, nil
}

// validate checks d with the full decoder, which also catches duplicate
// keys and redefined tables.
func validate(d []byte, o *parseOpts) error {
	var m map[string]any
	err := toml.Unmarshal(d, &m)
	if err == nil {
		return nil
	}
	var de *toml.DecodeError
	if !errors.As(err, &de) {
		// structural errors such as redefined keys carry no position
		return &Error{
			Filename: o.filename,
			Msg:      strings.TrimPrefix(err.Error(), "toml: "),
		}
	}
	line, col := de.Position()
	return &Error{
		Filename: o.filename,
		Line:     line,
		Col:      col,
		Msg:      strings.TrimPrefix(de.Error(), "toml: "),
		Context:  de.String(),
	}
}

func (o *parseOpts) wrap(err error, line int) error {
	if !errors.Is(err, ErrParse) {
		return err
	}
	return &Error{
		Filename: o.filename,
		Line:     line,
		Col:      1,
		Msg:      strings.TrimPrefix(strings.TrimPrefix(err.Error(), ErrParse.Error()), ": "),
	}
}

func keyOf(n *unstable.Node) []string {
	var res []string
	it := n.Key()
	for it.Next() {
		res = append(res, string(it.Node().Data))
	}
	return res
}

func decodeValue(n *unstable.Node) (*ir.Node, error) {
	switch n.Kind {
	case unstable.String:
		return ir.FromString(string(n.Data)), nil
	case unstable.Bool:
		return ir.FromBool(string(n.Data) == "true"), nil
	case unstable.Integer:
		i, err := strconv.ParseInt(string(n.Data), 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: integer %s: %w", ErrParse, n.Data, err)
		}
		return ir.FromInt(i), nil
	case unstable.Float:
		f, err := decodeFloat(string(n.Data))
		if err != nil {
			return nil, fmt.Errorf("%w: float %s: %w", ErrParse, n.Data, err)
		}
		return ir.FromFloat(f), nil
	case unstable.LocalDate, unstable.LocalTime, unstable.LocalDateTime, unstable.DateTime:
		return ir.FromDatetime(string(n.Data)), nil
	case unstable.Array:
		var vs []*ir.Node
		it := n.Children()
		for it.Next() {
			v, err := decodeValue(it.Node())
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
		return ir.FromSlice(vs), nil
	case unstable.InlineTable:
		t := ir.NewTable()
		it := n.Children()
		for it.Next() {
			kv := it.Node()
			v, err := decodeValue(kv.Value())
			if err != nil {
				return nil, err
			}
			if err := setDotted(t, keyOf(kv), v); err != nil {
				return nil, err
			}
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: unexpected %s", errInternal, n.Kind)
}

func setDotted(t *ir.Node, key []string, v *ir.Node) error {
	for _, seg := range key[:len(key)-1] {
		x, _ := t.Get(seg)
		if x == nil {
			x = ir.NewTable()
			t.Set(seg, x)
		} else if x.Type != ir.TableType {
			return fmt.Errorf("%w: %s is not a table", ErrParse, token.JoinKey(key))
		}
		t = x
	}
	t.Set(key[len(key)-1], v)
	return nil
}

func decodeFloat(s string) (float64, error) {
	s = strings.ReplaceAll(s, "_", "")
	switch strings.TrimLeft(s, "+-") {
	case "inf":
		if strings.HasPrefix(s, "-") {
			return math.Inf(-1), nil
		}
		return math.Inf(1), nil
	case "nan":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
