package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/tomler/encode"
	"github.com/signadot/tomler/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	File    string `cli:"name=f aliases=file desc='TOML file to read and write'"`
	Color   bool   `cli:"name=color desc='color output'"`
	Verbose bool   `cli:"name=v aliases=verbose desc='log file activity and parse error context to stderr'"`
	Version bool   `cli:"name=version desc='print the version and exit'"`

	Main *cli.Command
}

// colors reports whether output to w should be colored.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// outputOpt is the -o option, setting *fp.
func outputOpt(fp *format.Format) *cli.Opt {
	return &cli.Opt{
		Name:        "o",
		Aliases:     []string{"output"},
		Description: "output format: text, toml/t, json/j, yaml/y",
		Type:        cli.NamedFuncOpt(formatFunc(fp), "(format)"),
	}
}

func formatFunc(fp *format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		if err := fp.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return *fp, nil
	})
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format, indent int) []encode.EncodeOption {
	res := []encode.EncodeOption{encode.EncodeFormat(f), encode.EncodeIndent(indent)}
	if cfg.colors(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type GetConfig struct {
	*MainConfig
	Output format.Format
	Indent int    `cli:"name=indent desc='indentation of json output'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n aliases=dry-run desc='print the change as a diff without writing'"`

	Set *cli.Command
}

type RemoveConfig struct {
	*MainConfig
	DryRun bool `cli:"name=n aliases=dry-run desc='print the change as a diff without writing'"`

	Remove *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type HasConfig struct {
	*MainConfig

	Has *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Output format.Format
	Indent int    `cli:"name=indent desc='indentation of json output'"`

	Eval *cli.Command
}
