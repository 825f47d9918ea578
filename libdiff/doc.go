// Package libdiff computes line diffs between two versions of a text.
//
// # Usage
//
//	// Lines tagged equal, deleted or inserted
//	lines := libdiff.Lines(before, after)
//
//	// Unified diff with 3 lines of context
//	err := libdiff.Unified(os.Stdout, "a/config.toml", "b/config.toml", before, after,
//	    libdiff.Context(3), libdiff.Colors(true))
//
// # Related Packages
//
//   - github.com/sergi/go-diff/diffmatchpatch - the diff algorithm
package libdiff
