package tomler

import (
	"errors"

	"github.com/signadot/tomler/ir"
	"github.com/signadot/tomler/ir/keypath"
)

var (
	ErrIO            = errors.New("i/o error")
	ErrParse         = ir.ErrParse
	ErrMalformedPath = keypath.ErrMalformedPath
	ErrTypeConflict  = ir.ErrTypeConflict
	ErrKeyNotFound   = ir.ErrNotFound
)

// ExitCode returns the process exit status for err: 0 for nil, 2 when a
// key was not found and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrKeyNotFound):
		return 2
	default:
		return 1
	}
}
