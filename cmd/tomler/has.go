package main

import (
	"errors"
	"fmt"

	"github.com/signadot/tomler"

	"github.com/scott-cotton/cli"
)

func has(cfg *HasConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Has.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: has requires one argument, a key", cli.ErrUsage)
	}
	err = hasKey(cfg, args[0])
	if errors.Is(err, tomler.ErrKeyNotFound) {
		// absence is reported by the exit status alone
		return cli.ExitCodeErr(tomler.ExitCode(err))
	}
	return cfg.fail(err)
}

func hasKey(cfg *HasConfig, key string) error {
	f, err := tomler.Load(cfg.File)
	if err != nil {
		return err
	}
	_, err = tomler.Lookup(f.Doc, key)
	return err
}
