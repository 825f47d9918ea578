package main

import (
	"fmt"
	"io"

	"github.com/signadot/tomler"
	"github.com/signadot/tomler/encode"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: get requires one argument, a key", cli.ErrUsage)
	}
	return cfg.fail(getValue(cfg, cc.Out, args[0]))
}

func getValue(cfg *GetConfig, w io.Writer, key string) error {
	opts := cfg.encOpts(w, cfg.Output, cfg.Indent)
	f, err := tomler.Load(cfg.File)
	if err != nil {
		return err
	}
	v, err := tomler.Lookup(f.Doc, key)
	if err != nil {
		return err
	}
	return encode.Encode(v, w, opts...)
}
