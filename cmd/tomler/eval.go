package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/tomler"
	"github.com/signadot/tomler/encode"

	"github.com/scott-cotton/cli"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	return cfg.fail(evalExpr(cfg, cc.Out, strings.Join(args, " ")))
}

func evalExpr(cfg *EvalConfig, w io.Writer, input string) error {
	opts := cfg.encOpts(w, cfg.Output, cfg.Indent)
	f, err := tomler.Load(cfg.File)
	if err != nil {
		return err
	}
	v, err := tomler.Eval(f.Doc, input)
	if err != nil {
		return err
	}
	return encode.Encode(v, w, opts...)
}
