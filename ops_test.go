package tomler

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/tomler/doc"
	"github.com/signadot/tomler/infer"
	"github.com/signadot/tomler/encode"
	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/parse"
)

const sampleDoc = `# service config
title = "demo"

[database]
host = "localhost" # primary
port = 5432
tags = ["a", "b"]

[servers.alpha]
ip = "10.0.0.1"

[[plugins]]
name = "auth"
`

func mustParse(t *testing.T, src string) *doc.Document {
	t.Helper()
	d, err := parse.Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestGet(t *testing.T) {
	d := mustParse(t, sampleDoc)
	tests := []struct {
		key  string
		want string
		err  error
	}{
		{key: "title", want: "demo"},
		{key: "database.port", want: "5432"},
		{key: "database.tags", want: "a, b"},
		{key: "servers.alpha", want: `{ ip = "10.0.0.1" }`},
		{key: "servers.alpha.ip", want: "10.0.0.1"},
		{key: "missing", err: ErrKeyNotFound},
		{key: "database.port.x", err: ErrKeyNotFound},
		{key: "plugins.name", err: ErrKeyNotFound},
		{key: "a..b", err: ErrMalformedPath},
		{key: "", err: ErrMalformedPath},
	}
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got, err := Get(d, tc.key)
			if tc.err != nil {
				if !errors.Is(err, tc.err) {
					t.Fatalf("expected %v, got %v", tc.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestSetCreatesPath(t *testing.T) {
	d := mustParse(t, "")
	if _, err := Set(d, "a.b.c", "1"); err != nil {
		t.Fatal(err)
	}
	got, err := Get(d, "a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if got != "1" {
		t.Errorf("got %q", got)
	}
	a, _ := d.Root().Get("a")
	if a == nil || a.Type != ir.TableType {
		t.Fatal("a is not a table")
	}
	b, _ := a.Get("b")
	if b == nil || b.Type != ir.TableType {
		t.Fatal("a.b is not a table")
	}
	back := mustParse(t, d.String())
	if diff := cmp.Diff(d.Root().ToAny(), back.Root().ToAny()); diff != "" {
		t.Errorf("reparse (-edited +reparsed):\n%s", diff)
	}
}

func TestSetTypeConflict(t *testing.T) {
	tests := []struct {
		name string
		src  string
		key  string
	}{
		{"through integer", "a = 5\n", "a.b"},
		{"through array", "a = [1]\n", "a.b"},
		{"through array of tables", "[[a]]\nx = 1\n", "a.x"},
		{"over table", "[a]\nx = 1\n", "a"},
		{"over inline table", "a = { x = 1 }\n", "a"},
		{"over array of tables", "[[a]]\n", "a"},
		{"deep", "[a]\nb = \"s\"\n", "a.b.c.d"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := mustParse(t, tc.src)
			_, err := Set(d, tc.key, "1")
			if !errors.Is(err, ErrTypeConflict) {
				t.Fatalf("expected type conflict, got %v", err)
			}
			if ExitCode(err) != 1 {
				t.Errorf("exit code %d", ExitCode(err))
			}
			if got := d.String(); got != tc.src {
				t.Errorf("document changed:\n%s", got)
			}
		})
	}
}

func TestSetNoPartialTables(t *testing.T) {
	d := mustParse(t, "[x]\ny = 1\n")
	if _, err := Set(d, "x.y.z", "1"); !errors.Is(err, ErrTypeConflict) {
		t.Fatalf("got %v", err)
	}
	if diff := cmp.Diff([]string{"y"}, mustKeys(t, d, "x")); diff != "" {
		t.Errorf("keys changed: %s", diff)
	}
}

func mustKeys(t *testing.T, d *doc.Document, key string) []string {
	t.Helper()
	ks, err := TableKeys(d, key)
	if err != nil {
		t.Fatal(err)
	}
	return ks
}

func TestSetIdempotent(t *testing.T) {
	for _, raw := range []string{"5", "-1", "2.50", "true", "hello", "", "80,443,8080", "web, api", `"Hello, World!"`, ",", `a\,b,c`} {
		t.Run(raw, func(t *testing.T) {
			d := mustParse(t, sampleDoc)
			want := encode.Display(infer.Classify(raw))
			var texts []string
			for i := 0; i < 3; i++ {
				if _, err := Set(d, "database.value", raw); err != nil {
					t.Fatal(err)
				}
				got, err := Get(d, "database.value")
				if err != nil {
					t.Fatal(err)
				}
				if got != want {
					t.Errorf("get after set %q: got %q want %q", raw, got, want)
				}
				texts = append(texts, d.String())
			}
			if texts[0] != texts[1] || texts[1] != texts[2] {
				t.Errorf("repeated set changed the text:\n%s\n---\n%s", texts[0], texts[2])
			}
			if strings.Count(texts[2], "value = ") != 1 {
				t.Errorf("key written more than once:\n%s", texts[2])
			}
		})
	}
}

func TestSetTypes(t *testing.T) {
	d := mustParse(t, "")
	for key, raw := range map[string]string{
		"i": "42", "f": "3.14", "b": "false", "s": "text",
		"ports": "80,443,8080", "names": "web,api,production", "q": `"Hello, World!"`,
	} {
		if _, err := Set(d, key, raw); err != nil {
			t.Fatal(err)
		}
	}
	want := map[string]string{
		"i": "Integer", "f": "Float", "b": "Boolean", "s": "String",
		"ports": "Array", "names": "Array", "q": "String",
	}
	for key, typ := range want {
		v, err := Lookup(d, key)
		if err != nil {
			t.Fatal(err)
		}
		if v.Type.String() != typ {
			t.Errorf("%s: got %s want %s", key, v.Type, typ)
		}
	}
	ports, _ := Lookup(d, "ports")
	for _, p := range ports.Values {
		if p.Type != ir.IntType {
			t.Errorf("port %v is %s", p, p.Type)
		}
	}
	if !strings.Contains(d.String(), "ports = [80, 443, 8080]\n") {
		t.Errorf("ports literal:\n%s", d.String())
	}
}

func TestRemove(t *testing.T) {
	d := mustParse(t, sampleDoc)
	old, err := Remove(d, "database.host")
	if err != nil {
		t.Fatal(err)
	}
	if encode.Display(old) != "localhost" {
		t.Errorf("removed %v", old)
	}
	if Has(d, "database.host") {
		t.Error("still present")
	}
	if strings.Contains(d.String(), "localhost") {
		t.Errorf("text still has the value:\n%s", d.String())
	}
	if !strings.Contains(d.String(), "# service config\n") {
		t.Errorf("comment lost:\n%s", d.String())
	}
	_, err = Remove(d, "database.host")
	if !errors.Is(err, ErrKeyNotFound) || ExitCode(err) != 2 {
		t.Errorf("second remove: %v", err)
	}
	if _, err := Remove(d, "servers"); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(d.String(), "[servers.alpha]") {
		t.Errorf("table sections left:\n%s", d.String())
	}
}

func TestKeys(t *testing.T) {
	d := mustParse(t, sampleDoc)
	if diff := cmp.Diff([]string{"title", "database", "servers", "plugins"}, Keys(d)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"host", "port", "tags"}, mustKeys(t, d, "database")); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := TableKeys(d, "title"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("keys of a string: %v", err)
	}
	if _, err := Set(d, "zeta", "1"); err != nil {
		t.Fatal(err)
	}
	ks := Keys(d)
	if ks[len(ks)-1] != "zeta" {
		t.Errorf("new key not last: %v", ks)
	}
	if len(Keys(mustParse(t, ""))) != 0 {
		t.Error("empty document has keys")
	}
}

func TestHas(t *testing.T) {
	d := mustParse(t, sampleDoc)
	for key, want := range map[string]bool{
		"title": true, "database.port": true, "servers.alpha.ip": true,
		"nope": false, "database.nope": false, "title.x": false, "bad..key": false,
	} {
		if got := Has(d, key); got != want {
			t.Errorf("Has(%q) = %v", key, got)
		}
	}
}

func TestPreservesFormatting(t *testing.T) {
	src := "# initial config\n[app]\nname = \"example\"\n"
	d := mustParse(t, src)
	if _, err := Set(d, "app.retries", "5"); err != nil {
		t.Fatal(err)
	}
	out := d.String()
	if !strings.Contains(out, "retries = 5") || !strings.Contains(out, "# initial config") {
		t.Errorf("got:\n%s", out)
	}
	if !strings.HasPrefix(out, src) {
		t.Errorf("existing text changed:\n%s", out)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{nil, 0},
		{ErrKeyNotFound, 2},
		{ErrIO, 1},
		{ErrParse, 1},
		{ErrMalformedPath, 1},
		{ErrTypeConflict, 1},
		{errors.New("other"), 1},
	}
	for _, tc := range tests {
		if got := ExitCode(tc.err); got != tc.code {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.code)
		}
	}
}

func TestSetEqualKeepsText(t *testing.T) {
	const src = "mask = 0o755\nratio = 1.50\nport = \"16\"\n"
	d := mustParse(t, src)
	for key, raw := range map[string]string{"mask": "493", "ratio": "1.5"} {
		if _, err := Set(d, key, raw); err != nil {
			t.Fatal(err)
		}
	}
	if d.String() != src {
		t.Errorf("equal values rewrote the text:\n%s", d.String())
	}
	if _, err := Set(d, "port", "16"); err != nil {
		t.Fatal(err)
	}
	if want := "mask = 0o755\nratio = 1.50\nport = 16\n"; d.String() != want {
		t.Errorf("got\n%s\nwant\n%s", d.String(), want)
	}
}
