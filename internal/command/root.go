package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/bingsearch/internal/logx"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const envPrefix = "BINGSEARCH_"

func Main(name string, version string, usage string, commands ...*cli.Command) {
	app := NewApp(name, version, usage, commands...)

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func NewApp(name string, version string, usage string, commands ...*cli.Command) *cli.App {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  version,
		Before: func(ctx *cli.Context) error {
			workdir := ctx.String("workdir")
			// Switch to new working directory if defined
			if workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			level, err := parseLogLevel(ctx.String("log-level"))
			if err != nil {
				return errors.WithStack(err)
			}

			slog.SetDefault(newLogger(ctx.App.ErrWriter, level))

			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{envPrefix + "WORKDIR"},
				Usage:   "The working directory",
			},
			&cli.BoolFlag{
				Name:    "debug",
				EnvVars: []string{envPrefix + "DEBUG"},
				Usage:   "Print errors with their stack trace",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{envPrefix + "LOG_LEVEL"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		if !ctx.Bool("debug") {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelWarn, errors.Wrapf(err, "invalid log level '%s'", raw)
	}

	return level, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	return slog.New(logx.ContextHandler{
		Handler: slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		}),
	})
}
