package main

import (
	"context"
	"dogrep/internal"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "dogrep",
		Usage:     "Print the lines of a file that contain a pattern",
		ArgsUsage: "[-i] [-v] [-n] [-c] <pattern> <file_path>",
		// Positional tokens and -i/-v/-n/-c are parsed by internal.BuildConfig,
		// so the framework must not consume or reject any of them.
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "warn",
				EnvVars: []string{"DOGREP_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "logfile",
				Usage:   "Write logs into file instead of stderr",
				EnvVars: []string{"DOGREP_LOGFILE"},
			},
		},
		Action: func(c *cli.Context) error {
			internal.InitLogger(c.String("logfile"), c.String("log-level"))

			cfg, err := internal.BuildConfig(append([]string{c.App.Name}, c.Args().Slice()...))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := internal.Run(ctx, cfg, c.App.Writer); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			return nil
		},
	}
}
