package tomler

import (
	"math"
	"testing"

	"github.com/signadot/tomler/encode"
	"github.com/signadot/tomler/ir"
)

func TestEval(t *testing.T) {
	d := mustParse(t, sampleDoc+"\n[limits]\nmax-conn = 10\nratio = 0.5\n")
	tests := []struct {
		in, want string
	}{
		{"database.port > 1024", "true"},
		{"database.port + 1", "5433"},
		{"title + '!'", "demo!"},
		{`get("limits.max-conn") * 2`, "20"},
		{`has("database.host")`, "true"},
		{`has("database.nope")`, "false"},
		{"len(database.tags)", "2"},
		{"limits.ratio * 2", "1.0"},
		{`map(plugins, .name)`, "auth"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			n, err := Eval(d, tc.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.Display(n); got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
	if _, err := Eval(d, "database.port >"); err == nil {
		t.Error("expected compile error")
	}
	if _, err := Eval(d, `get("nope")`); err == nil {
		t.Error("expected lookup error")
	}
}

func TestFromAnyUnsigned(t *testing.T) {
	n, err := FromAny(uint64(math.MaxInt64))
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.IntType || n.Int64 != math.MaxInt64 {
		t.Errorf("got %s %d", n.Type, n.Int64)
	}
	if _, err := FromAny(uint64(math.MaxInt64) + 1); err == nil {
		t.Error("expected an error for a value above the int64 range")
	}
	if _, err := FromAny([]any{uint(1), uint64(math.MaxUint64)}); err == nil {
		t.Error("expected an error for an out of range element")
	}
}
