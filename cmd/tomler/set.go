package main

import (
	"fmt"
	"io"

	"github.com/signadot/tomler"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: set requires two arguments, a key and a value", cli.ErrUsage)
	}
	return cfg.fail(setValue(cfg, cc.Out, args[0], args[1]))
}

func setValue(cfg *SetConfig, w io.Writer, key, raw string) error {
	f, err := tomler.LoadOrNew(cfg.File)
	if err != nil {
		return err
	}
	v, err := tomler.Set(f.Doc, key, raw)
	if err != nil {
		return err
	}
	theLog.Debug("set", "key", key, "type", v.Type)
	if cfg.DryRun {
		return cfg.diff(w, f)
	}
	if err := cfg.save(f); err != nil {
		return err
	}
	fmt.Fprintf(w, "Set '%s' = '%s'\n", key, raw)
	return nil
}
