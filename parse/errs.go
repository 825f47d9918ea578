package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/tomler/ir"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = ir.ErrParse
)

// Error is a TOML syntax or structure error at a position.
type Error struct {
	Filename string
	// Line and Col are 1-based, or 0 when the error has no position.
	Line, Col int
	Msg       string
	// Context shows the offending lines with the position highlighted.
	Context string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		if e.Filename != "" {
			return e.Filename + ": " + e.Msg
		}
		return e.Msg
	}
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Col, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrParse
}
