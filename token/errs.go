package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrHeader       = errors.New("malformed table header")
)

type ScanError struct {
	Err  error
	Line int
	What string
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("line %d: %s %s", e.Line, e.Err, e.What)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
