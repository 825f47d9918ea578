package ir

import (
	"fmt"
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []string
	Values      []*Node

	// String holds the value of a StringType node and the literal
	// text of a DatetimeType node.
	String  string
	Bool    bool
	Int64   int64
	Float64 float64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  IntType,
		Int64: v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    FloatType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromDatetime makes a DatetimeType node holding the literal text of a
// TOML date, time or date-time.
func FromDatetime(lit string) *Node {
	return &Node{
		Type:   DatetimeType,
		String: lit,
	}
}

func FromSlice(ys []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ys)),
	}
	for i, y := range ys {
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
		res.Values[i] = y
	}
	return res
}

func NewTable() *Node {
	return &Node{Type: TableType}
}

// FromMap makes a table from m with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		kvs = append(kvs, KeyVal{Key: k, Val: m[k]})
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals makes a table holding kvs in the given order.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewTable()
	for _, kv := range kvs {
		res.Set(kv.Key, kv.Val)
	}
	return res
}

// Get returns the value stored under key in a table and its index, or
// nil and -1.
func (y *Node) Get(key string) (*Node, int) {
	if y.Type != TableType {
		return nil, -1
	}
	i := slices.Index(y.Fields, key)
	if i == -1 {
		return nil, -1
	}
	return y.Values[i], i
}

// Set stores v under key. An existing key keeps its position, a new key
// is appended.
func (y *Node) Set(key string, v *Node) {
	if y.Type != TableType {
		panic(fmt.Sprintf("%v: Set on %s", errInternal, y.Type))
	}
	v.Parent = y
	v.ParentField = key
	if _, i := y.Get(key); i != -1 {
		v.ParentIndex = i
		y.Values[i] = v
		return
	}
	v.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

// Delete detaches key from a table and returns its former value.
func (y *Node) Delete(key string) *Node {
	v, i := y.Get(key)
	if v == nil {
		return nil
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	for j := i; j < len(y.Values); j++ {
		y.Values[j].ParentIndex = j
	}
	v.Parent = nil
	v.ParentIndex = 0
	v.ParentField = ""
	return v
}

func (y *Node) Append(v *Node) {
	if y.Type != ArrayType {
		panic(fmt.Sprintf("%v: Append on %s", errInternal, y.Type))
	}
	v.Parent = y
	v.ParentIndex = len(y.Values)
	v.ParentField = ""
	y.Values = append(y.Values, v)
}

// Keys returns a copy of the keys of a table in order.
func (y *Node) Keys() []string {
	return slices.Clone(y.Fields)
}

// ToAny converts the node to plain Go values: string, int64, float64,
// bool, []any and map[string]any. Datetimes become their literal text.
func (y *Node) ToAny() any {
	switch y.Type {
	case StringType, DatetimeType:
		return y.String
	case IntType:
		return y.Int64
	case FloatType:
		return y.Float64
	case BoolType:
		return y.Bool
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.ToAny()
		}
		return res
	case TableType:
		res := make(map[string]any, len(y.Fields))
		for i, f := range y.Fields {
			res[f] = y.Values[i].ToAny()
		}
		return res
	}
	return nil
}
