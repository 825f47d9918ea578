package main

import (
	"fmt"
	"io"

	"github.com/signadot/tomler"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: keys takes at most one argument, a table", cli.ErrUsage)
	}
	table := ""
	if len(args) == 1 {
		table = args[0]
	}
	return cfg.fail(listKeys(cfg, cc.Out, table))
}

func listKeys(cfg *KeysConfig, w io.Writer, table string) error {
	f, err := tomler.Load(cfg.File)
	if err != nil {
		return err
	}
	ks, err := tomler.TableKeys(f.Doc, table)
	if err != nil {
		return err
	}
	for _, k := range ks {
		fmt.Fprintln(w, k)
	}
	return nil
}
