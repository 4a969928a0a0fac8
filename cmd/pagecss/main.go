package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"pagecss/misc"
	"pagecss/render"
	"pagecss/state"
)

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "builds responsive stylesheets from widget style documents",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.NArg() == 0 {
				return ctx, nil
			}
			return ctx, state.EnvFromContext(ctx).Open(cmd.String("config"), cmd.Bool("debug"))
		},
		After: func(ctx context.Context, _ *cli.Command) error {
			return state.EnvFromContext(ctx).Close()
		},
		ExitErrHandler: func(ctx context.Context, _ *cli.Command, err error) {
			if log := state.EnvFromContext(ctx).Log; log != nil {
				log.Error("Program ended with error", zap.Error(err))
			}
		},
		CommandNotFound: func(ctx context.Context, _ *cli.Command, name string) {
			if log := state.EnvFromContext(ctx).Log; log != nil {
				log.Warn("Unknown command, nothing to do", zap.String("command", name))
			}
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log everything and pack config, documents, stylesheets and logs into report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Builds stylesheet from style document",
				Action: render.Run,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite destination file if it exists"},
					&cli.BoolFlag{Name: "no-minify", Usage: "do not minify result regardless of configuration"},
				},
				ArgsUsage:          "SOURCE [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + buildHelp,
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				Action:             dumpConfig,
				ArgsUsage:          "[DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + dumpConfigHelp,
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		// when logging was never set up nobody has seen the error yet
		if state.EnvFromContext(ctx).Log == nil {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}

const buildHelp = `
SOURCE:
    style document (YAML): breakpoints, variables, rules and raw CSS blocks

DESTINATION:
    resulting CSS file, STDOUT when absent
`
