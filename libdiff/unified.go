package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

type unifiedOpts struct {
	context int
	colors  bool
}

type UnifiedOption func(*unifiedOpts)

// Context sets the number of unchanged lines shown around changes.
func Context(n int) UnifiedOption {
	return func(o *unifiedOpts) { o.context = n }
}

// Colors colors deleted lines red and inserted lines green.
func Colors(v bool) UnifiedOption {
	return func(o *unifiedOpts) { o.colors = v }
}

// Hunk is a run of diff lines with their starting line numbers, which
// are 1-based.
type Hunk struct {
	FromLine, ToLine int
	Lines            []Line
}

func (h *Hunk) header() string {
	nf, nt := 0, 0
	for _, ln := range h.Lines {
		if ln.Op != Insert {
			nf++
		}
		if ln.Op != Delete {
			nt++
		}
	}
	return fmt.Sprintf("@@ -%s +%s @@", span(h.FromLine, nf), span(h.ToLine, nt))
}

func span(start, n int) string {
	if n == 0 {
		start--
	}
	if n == 1 {
		return fmt.Sprint(start)
	}
	return fmt.Sprintf("%d,%d", start, n)
}

// Hunks groups the changed lines with context unchanged lines around
// them.
func Hunks(lines []Line, context int) []Hunk {
	var (
		res        []Hunk
		cur        *Hunk
		fromNo     = 1
		toNo       = 1
		lastChange = -1
	)
	for i, ln := range lines {
		if ln.Op != Equal {
			if cur == nil || i-lastChange > 2*context+1 {
				if cur != nil {
					trimTail(cur, lines, lastChange, context)
					res = append(res, *cur)
				}
				start := max(i-context, 0)
				if lastChange != -1 {
					start = max(start, lastChange+context+1)
				}
				f, t := fromNo, toNo
				for j := i - 1; j >= start; j-- {
					f--
					t--
				}
				cur = &Hunk{FromLine: f, ToLine: t, Lines: append([]Line(nil), lines[start:i]...)}
			} else {
				cur.Lines = append(cur.Lines, lines[lastChange+1:i]...)
			}
			cur.Lines = append(cur.Lines, ln)
			lastChange = i
		}
		if ln.Op != Insert {
			fromNo++
		}
		if ln.Op != Delete {
			toNo++
		}
	}
	if cur != nil {
		trimTail(cur, lines, lastChange, context)
		res = append(res, *cur)
	}
	return res
}

func trimTail(h *Hunk, lines []Line, lastChange, context int) {
	end := min(lastChange+1+context, len(lines))
	h.Lines = append(h.Lines, lines[lastChange+1:end]...)
}

// Unified writes a unified diff of from and to. Nothing is written when
// the texts are equal.
func Unified(w io.Writer, fromName, toName, from, to string, opts ...UnifiedOption) error {
	o := &unifiedOpts{context: 3}
	for _, opt := range opts {
		opt(o)
	}
	hunks := Hunks(Lines(from, to), o.context)
	if len(hunks) == 0 {
		return nil
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "--- %s\n+++ %s\n", fromName, toName)
	for i := range hunks {
		h := &hunks[i]
		hdr := h.header()
		if o.colors {
			hdr = color.CyanString("%s", hdr)
		}
		b.WriteString(hdr + "\n")
		for _, ln := range h.Lines {
			txt := ln.Op.Prefix() + ln.Text
			if o.colors {
				switch ln.Op {
				case Delete:
					txt = color.RedString("%s", txt)
				case Insert:
					txt = color.GreenString("%s", txt)
				}
			}
			b.WriteString(txt + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
