package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/signadot/tomler/ir"
)

var out io.Writer = os.Stderr

// Logf writes a debug line to stderr. *ir.Node arguments are shown as
// JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			d, err := json.Marshal(x.ToAny())
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %s", x.Type)
				continue
			}
			args[i] = x.Type.String() + " " + string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}
