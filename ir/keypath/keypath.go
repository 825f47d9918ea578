package keypath

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedPath = errors.New("malformed path")

// Path is a sequence of table keys ending in a terminal key.
type Path []string

// Parse splits key on '.' into a Path.
func Parse(key string) (Path, error) {
	if key == "" {
		return nil, fmt.Errorf("%w: empty key", ErrMalformedPath)
	}
	segs := strings.Split(key, ".")
	for i, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("%w: %q has an empty segment at position %d", ErrMalformedPath, key, i+1)
		}
	}
	return Path(segs), nil
}

func (p Path) String() string {
	return strings.Join(p, ".")
}

// Parent returns all segments but the last.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Last returns the terminal segment.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Prefix returns the first n segments.
func (p Path) Prefix(n int) Path {
	return p[:n]
}
