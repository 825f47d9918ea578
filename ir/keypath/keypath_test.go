package keypath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Path
		err  bool
	}{
		{in: "name", want: Path{"name"}},
		{in: "database.host", want: Path{"database", "host"}},
		{in: "a.b.c", want: Path{"a", "b", "c"}},
		{in: "with-dash.under_score", want: Path{"with-dash", "under_score"}},
		{in: "has space.x", want: Path{"has space", "x"}},
		{in: "", err: true},
		{in: ".", err: true},
		{in: ".a", err: true},
		{in: "a.", err: true},
		{in: "a..b", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.err {
				if !errors.Is(err, ErrMalformedPath) {
					t.Fatalf("expected ErrMalformedPath, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
}

func TestPathHelpers(t *testing.T) {
	p, err := Parse("a.b.c")
	if err != nil {
		t.Fatal(err)
	}
	if p.Last() != "c" {
		t.Errorf("Last() = %q", p.Last())
	}
	if p.Parent().String() != "a.b" {
		t.Errorf("Parent() = %q", p.Parent())
	}
	if p.Prefix(1).String() != "a" {
		t.Errorf("Prefix(1) = %q", p.Prefix(1))
	}
}
