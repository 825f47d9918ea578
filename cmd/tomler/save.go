package main

import (
	"io"

	"github.com/signadot/tomler"
	"github.com/signadot/tomler/libdiff"
)

// diff writes the pending change to f as a unified diff.
func (cfg *MainConfig) diff(w io.Writer, f *tomler.File) error {
	theLog.Debug("dry run", "file", f.Path, "changed", f.Changed())
	return libdiff.Unified(w, "a/"+f.Path, "b/"+f.Path,
		string(f.Original()), f.Doc.String(),
		libdiff.Colors(cfg.colors(w)))
}

func (cfg *MainConfig) save(f *tomler.File) error {
	created := !f.Exists
	if err := f.Save(); err != nil {
		return err
	}
	if created {
		theLog.Info("created", "file", f.Path)
		return nil
	}
	theLog.Debug("saved", "file", f.Path)
	return nil
}
