package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {

	app := cli.App{
		Name:    "pitree",
		Usage:   "generate, print, and persist digit-sequence trees",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				EnvVars: []string{"PITREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				EnvVars: []string{"PITREE_LOG_FORMAT"},
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx, os.Stderr)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdGenerate,
		cmdLevels,
		cmdPrint,
		cmdSave,
		cmdLoad,
		cmdParent,
	}
	return app.Run(args)
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cctx.String("log-format") == "json" {
		h = slog.NewJSONHandler(writer, opts)
	} else {
		h = slog.NewTextHandler(writer, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
