package main

import (
	"io"
	"log/slog"
	"os"
)

var (
	logLevel = new(slog.LevelVar)
	theLog   = newLog(os.Stderr)
)

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

func init() {
	logLevel.Set(slog.LevelWarn)
}
