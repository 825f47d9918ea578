package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/tomler"
	"github.com/signadot/tomler/parse"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

var errOut io.Writer = os.Stderr

// fail reports err on errOut and turns it into the exit status for the
// process. Usage errors pass through for the command to print its
// usage.
func (cfg *MainConfig) fail(err error) error {
	if err == nil || errors.Is(err, cli.ErrUsage) {
		return err
	}
	report(errOut, err, cfg.colors(errOut), cfg.Verbose)
	return cli.ExitCodeErr(tomler.ExitCode(err))
}

// report writes err as one line. With verbose set, the source lines
// around a parse error follow it.
func report(w io.Writer, err error, colors, verbose bool) {
	msg := "tomler: " + err.Error()
	if colors {
		msg = color.New(color.FgRed).Sprint(msg)
	}
	fmt.Fprintln(w, msg)
	var pErr *parse.Error
	if !verbose || !errors.As(err, &pErr) {
		return
	}
	for _, ln := range strings.Split(pErr.Context, "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		fmt.Fprintln(w, strings.TrimRight(ln, " \t\r"))
	}
}
