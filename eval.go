package tomler

import (
	"fmt"
	"math"
	"os"
	"reflect"

	"github.com/signadot/tomler/doc"
	"github.com/signadot/tomler/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Eval evaluates an expr-lang expression over the document. Top level
// keys are variables; get(key) and has(key) take dotted keys.
func Eval(d *doc.Document, input string) (*ir.Node, error) {
	env := map[string]any{}
	if m, ok := d.Root().ToAny().(map[string]any); ok {
		env = m
	}
	program, err := expr.Compile(input, exprOpts(d, env)...)
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", input, err)
	}
	val, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", input, err)
	}
	return FromAny(val)
}

func exprOpts(d *doc.Document, env map[string]any) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.AllowUndefinedVariables(),
		expr.Function("get", func(params ...any) (any, error) {
			v, err := Lookup(d, params[0].(string))
			if err != nil {
				return nil, err
			}
			return v.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			return Has(d, params[0].(string)), nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// FromAny converts the result of an expression to a node.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.FromString(""), nil
	case *ir.Node:
		return x, nil
	case string:
		return ir.FromString(x), nil
	case bool:
		return ir.FromBool(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("%d does not fit in a TOML integer", u)
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Slice, reflect.Array:
		vs := make([]*ir.Node, rv.Len())
		for i := range vs {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	}
	return nil, fmt.Errorf("cannot represent %T", v)
}
