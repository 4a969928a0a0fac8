package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"pagecss/config"
	"pagecss/state"
)

const dumpConfigHelp = `
DESTINATION:
    file to write configuration to, STDOUT when absent

Without --default breakpoints, output and logging settings are shown as the
build command would see them: embedded defaults merged with --config file.
`

func dumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	var (
		kind = "actual"
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get %s configuration: %w", kind, err)
	}

	dst := cmd.Args().First()
	if len(dst) == 0 {
		env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", "STDOUT"))
	} else {
		env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", dst))
	}
	return writeTo(dst, data)
}

func writeTo(fname string, data []byte) (err error) {
	var out io.Writer = os.Stdout
	if len(fname) > 0 {
		var f *os.File
		if f, err = os.Create(fname); err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer func() {
			if er := f.Close(); er != nil && err == nil {
				err = er
			}
		}()
		out = f
	}
	if _, err = out.Write(data); err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
