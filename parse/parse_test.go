package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tomler/ir"
)

var roundTrips = []string{
	"",
	"\n",
	"a = 1",
	"# only a comment",
	"# initial config\n[app]\nname = \"example\"\n",
	`title = "TOML Example"   # inline comment

[owner]
name = "Tom Preston-Werner"
dob = 1979-05-27T07:32:00-08:00

[database]
enabled = true
ports = [ 8000, 8001, 8002 ]
data = [ ["delta", "phi"], [3.14] ]
temp_targets = { cpu = 79.5, case = 72.0 }

[servers]

  # Indentation (tabs and/or spaces) is allowed but not required
  [servers.alpha]
  ip = "10.0.0.1"
  role = "frontend"

  [servers.beta]
  ip = "10.0.0.2"
  role = "backend"
`,
	"str = \"\"\"\nRoses are red\n  Violets are blue\"\"\"\nlit = '''\nC:\\path'''\n",
	"[[products]]\nname = \"Hammer\"\nsku = 738594937\n\n[[products]]  # empty table within the array\n\n[[products]]\nname = \"Nail\"\ncolor = \"gray\"\n",
	"fruit.apple.color = \"red\"\nfruit.apple.taste.sweet = true\n\"quoted.key\" = 'v'\n",
	"a = 1\r\nb = [\r\n  2,\r\n]\r\n",
	"hex = 0xDEAD_BEEF\nbig = 1_000_000\nf = -6.626e-34\ninf = -inf\nlocal = 07:32:00\n",
}

func TestRoundTrip(t *testing.T) {
	for _, src := range roundTrips {
		d, err := Parse([]byte(src))
		if err != nil {
			t.Fatalf("%q: %v", src, err)
		}
		if diff := cmp.Diff(src, d.String()); diff != "" {
			t.Errorf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestValues(t *testing.T) {
	src := `s = "a\tb"
i = 0x1f
neg = -17
f = 1_000.5
b = false
dt = 1979-05-27 07:32:00Z
arr = [1, "two", [3]]
inl = { x = 1, y.z = "w" }
fruit.apple = "red"

[tbl.sub]
k = 'lit'

[[aot]]
n = 1
[[aot]]
n = 2
[aot.extra]
e = true
`
	d, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"s":   "a\tb",
		"i":   int64(31),
		"neg": int64(-17),
		"f":   1000.5,
		"b":   false,
		"dt":  "1979-05-27 07:32:00Z",
		"arr": []any{int64(1), "two", []any{int64(3)}},
		"inl": map[string]any{"x": int64(1), "y": map[string]any{"z": "w"}},
		"fruit": map[string]any{
			"apple": "red",
		},
		"tbl": map[string]any{"sub": map[string]any{"k": "lit"}},
		"aot": []any{
			map[string]any{"n": int64(1)},
			map[string]any{"n": int64(2), "extra": map[string]any{"e": true}},
		},
	}
	if diff := cmp.Diff(want, d.Root().ToAny()); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	wantKeys := []string{"s", "i", "neg", "f", "b", "dt", "arr", "inl", "fruit", "tbl", "aot"}
	if diff := cmp.Diff(wantKeys, d.Root().Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	aot, _ := d.Root().Get("aot")
	if !d.IsArrayOfTables(aot) {
		t.Error("aot should be an array of tables")
	}
	arr, _ := d.Root().Get("arr")
	if d.IsArrayOfTables(arr) {
		t.Error("arr is a plain array")
	}
}

func TestSpecialFloats(t *testing.T) {
	d, err := Parse([]byte("a = nan\nb = +inf\nc = -inf\n"))
	if err != nil {
		t.Fatal(err)
	}
	a, _ := d.Root().Get("a")
	b, _ := d.Root().Get("b")
	c, _ := d.Root().Get("c")
	if !math.IsNaN(a.Float64) || !math.IsInf(b.Float64, 1) || !math.IsInf(c.Float64, -1) {
		t.Errorf("got %v %v %v", a.Float64, b.Float64, c.Float64)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
	}{
		{"a = \n", 1},
		{"a = 1\nb = \"open\n", 2},
		{"key = 1 2\n", 1},
	}
	for _, tc := range tests {
		_, err := Parse([]byte(tc.src), WithFilename("c.toml"))
		if !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected ErrParse, got %v", tc.src, err)
			continue
		}
		var pe *Error
		if !errors.As(err, &pe) {
			t.Errorf("%q: expected *Error, got %T", tc.src, err)
			continue
		}
		if pe.Line != tc.line {
			t.Errorf("%q: line %d, want %d", tc.src, pe.Line, tc.line)
		}
		if !strings.HasPrefix(pe.Error(), "c.toml:") {
			t.Errorf("%q: %s", tc.src, pe.Error())
		}
		if pe.Context == "" {
			t.Errorf("%q: no context", tc.src)
		}
	}
}

func TestStructureErrors(t *testing.T) {
	for _, src := range []string{
		"a = 1\na = 2\n",
		"[t]\nx = 1\n[t]\n",
		"x = 1\n[x]\n",
	} {
		_, err := Parse([]byte(src), WithFilename("c.toml"))
		var pe *Error
		if !errors.As(err, &pe) || !errors.Is(err, ErrParse) {
			t.Errorf("%q: expected *Error, got %v", src, err)
			continue
		}
		if !strings.HasPrefix(pe.Error(), "c.toml: ") || pe.Msg == "" {
			t.Errorf("%q: %s", src, pe.Error())
		}
	}
}

func TestInlineTableOwnsNested(t *testing.T) {
	d, err := Parse([]byte("p = { q = { r = 1 } }\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, _ := d.Root().Get("p")
	q, _ := p.Get("q")
	if err := d.Set(q, "s", ir.FromString("x")); err != nil {
		t.Fatal(err)
	}
	if got, want := d.String(), "p = { q = { r = 1, s = \"x\" } }\n"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
