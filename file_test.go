package tomler

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0o640); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadSaveByteIdentical(t *testing.T) {
	p := writeFile(t, "c.toml", sampleDoc)
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if f.Changed() {
		t.Error("unchanged document reports a change")
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleDoc, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	st, err := os.Stat(p)
	if err != nil {
		t.Fatal(err)
	}
	if st.Mode().Perm() != 0o640 {
		t.Errorf("mode changed to %v", st.Mode())
	}
}

func TestLoadMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "none.toml")
	_, err := Load(p)
	if !errors.Is(err, ErrIO) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v", err)
	}
	if ExitCode(err) != 1 {
		t.Errorf("exit code %d", ExitCode(err))
	}
}

func TestLoadOrNewCreates(t *testing.T) {
	p := filepath.Join(t.TempDir(), "new.toml")
	f, err := LoadOrNew(p)
	if err != nil {
		t.Fatal(err)
	}
	if f.Exists {
		t.Error("missing file exists")
	}
	if _, err := Set(f.Doc, "server.port", "8080"); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[server]\nport = 8080\n" {
		t.Errorf("got %q", got)
	}
}

func TestLoadParseError(t *testing.T) {
	p := writeFile(t, "bad.toml", "a = \n")
	_, err := Load(p)
	if !errors.Is(err, ErrParse) || ExitCode(err) != 1 {
		t.Errorf("got %v", err)
	}
}

func TestMissingKeyLeavesFile(t *testing.T) {
	p := writeFile(t, "c.toml", sampleDoc)
	before, _ := os.Stat(p)
	f, err := Load(p)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Remove(f.Doc, "nope"); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("got %v", err)
	}
	if f.Changed() {
		t.Error("failed remove changed the document")
	}
	after, _ := os.Stat(p)
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("file was rewritten")
	}
}

// normalize makes decoded values from both decoders comparable.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		res := make(map[string]any, len(x))
		for k, e := range x {
			res[k] = normalize(e)
		}
		return res
	case []map[string]any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = normalize(e)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, e := range x {
			res[i] = normalize(e)
		}
		return res
	}
	return v
}

func TestEditsAgreeWithIndependentDecoder(t *testing.T) {
	d := mustParse(t, sampleDoc)
	edits := [][2]string{
		{"database.port", "6543"},
		{"database.pool.size", "4"},
		{"servers.alpha.tags", "x,y"},
		{"servers.beta.ip", `"10.0.0.2"`},
		{"top", "1.5"},
		{"title", "renamed"},
	}
	for _, e := range edits {
		if _, err := Set(d, e[0], e[1]); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := Remove(d, "database.tags"); err != nil {
		t.Fatal(err)
	}
	var oracle map[string]any
	if _, err := toml.Decode(d.String(), &oracle); err != nil {
		t.Fatalf("edited text does not decode: %v\n%s", err, d.String())
	}
	if diff := cmp.Diff(normalize(oracle), d.Root().ToAny()); diff != "" {
		t.Errorf("(-decoded +tree):\n%s", diff)
	}
}
