package main

import (
	"fmt"
	"io"

	"github.com/signadot/tomler"
	"github.com/signadot/tomler/encode"

	"github.com/scott-cotton/cli"
)

func remove(cfg *RemoveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remove.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: remove requires one argument, a key", cli.ErrUsage)
	}
	return cfg.fail(removeValue(cfg, cc.Out, args[0]))
}

func removeValue(cfg *RemoveConfig, w io.Writer, key string) error {
	f, err := tomler.Load(cfg.File)
	if err != nil {
		return err
	}
	old, err := tomler.Remove(f.Doc, key)
	if err != nil {
		return err
	}
	if cfg.DryRun {
		return cfg.diff(w, f)
	}
	if err := cfg.save(f); err != nil {
		return err
	}
	fmt.Fprintf(w, "Removed '%s' (was: %s)\n", key, encode.Display(old))
	return nil
}
