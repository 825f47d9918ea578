package main

import (
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{File: defaultFile()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tomler").
		WithSynopsis("tomler [-f file] command [opts] args").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tomlerMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			RemoveCommand(cfg),
			KeysCommand(cfg),
			HasCommand(cfg),
			EvalCommand(cfg))
}

const mainDescription = `tomler reads and edits TOML files by dotted key, keeping comments,
key order and spacing of everything it does not touch.

Values given to set are typed from their text: true/false are booleans,
42 and -7 integers, 3.14 floats, and text containing a comma an array
(80,443 is an integer array). Wrap a value in double quotes to keep it a
string, or write \, for a comma inside an array element.

Exit status is 0 on success, 2 when a key is not found and 1 on any
other error.

The file defaults to config.toml, or $TOMLER_FILE when set.`

func defaultFile() string {
	if f := os.Getenv("TOMLER_FILE"); f != "" {
		return f
	}
	return "config.toml"
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg, Indent: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, outputOpt(&cfg.Output))
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [-o format] <key>").
		WithDescription("print the value at a dotted key").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [-n] <key> <value>").
		WithDescription("set the value at a dotted key, creating tables and the file as needed").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func RemoveCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemoveConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Remove, "remove").
		WithAliases("rm").
		WithSynopsis("remove [-n] <key>").
		WithDescription("remove a key and its value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return remove(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [table]").
		WithDescription("list the keys of the document or of a table").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func HasCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HasConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Has, "has").
		WithSynopsis("has <key>").
		WithDescription("exit 0 if a key is present, 2 if not").
		WithRun(func(cc *cli.Context, args []string) error {
			return has(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Indent: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, outputOpt(&cfg.Output))
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e").
		WithSynopsis("eval [-o format] <expr>").
		WithDescription(evalDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression over the document

Top level keys are variables and tables are maps, so 'database.port > 1024'
works as written. get("a.b-c") reads a dotted key with characters that are
not valid identifiers, has("a.b") tests for a key and getenv("X") reads the
environment.`
