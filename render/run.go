// Package render implements "build" subcommand: style document in, CSS file out.
package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"pagecss/css"
	"pagecss/css/minify"
	"pagecss/state"
	"pagecss/styledoc"
)

// Run is the action of "build" subcommand.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	env.Overwrite = cmd.Bool("overwrite")
	env.NoMinify = cmd.Bool("no-minify")

	if cmd.Args().Len() == 0 {
		return errors.New("no source style document has been specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	return Process(ctx, env, cmd.Args().Get(0), cmd.Args().Get(1))
}

// Process renders style document src into dst, empty dst means STDOUT.
func Process(ctx context.Context, env *state.LocalEnv, src, dst string) error {
	log := env.Log
	if log == nil {
		log = zap.NewNop()
	}

	doc, err := styledoc.Load(src)
	if err != nil {
		return fmt.Errorf("unable to load '%s': %w", src, err)
	}
	env.Rpt.Store("source/"+filepath.Base(src), src)

	text, err := Stylesheet(env, doc)
	if err != nil {
		return fmt.Errorf("unable to build stylesheet from '%s': %w", src, err)
	}
	env.Rpt.StoreData("output/"+strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))+".css", []byte(text))

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(dst) == 0 {
		_, err = os.Stdout.WriteString(text)
		return err
	}
	if _, err := os.Stat(dst); err == nil && !env.Overwrite {
		return fmt.Errorf("destination '%s' already exists", dst)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	if err := os.WriteFile(dst, []byte(text), 0644); err != nil {
		return fmt.Errorf("unable to write '%s': %w", dst, err)
	}
	log.Info("Stylesheet created", zap.String("source", src), zap.String("destination", dst), zap.Int("bytes", len(text)))
	return nil
}

// Stylesheet builds stylesheet text for the document using configured
// breakpoints and output options.
func Stylesheet(env *state.LocalEnv, doc *styledoc.Document) (string, error) {
	var (
		opts   []css.Option
		header string
	)
	minified := !env.NoMinify
	if env.Cfg != nil {
		minified = minified && env.Cfg.Stylesheet.Minify
		header = env.Cfg.Stylesheet.Header
	}
	if minified {
		opts = append(opts, css.WithMinifier(minify.New(env.Log)))
	}

	s := css.NewStylesheet(env.NewBreakpoints(), env.Log, opts...)
	if err := doc.Apply(s, env.Log); err != nil {
		return "", err
	}
	text, err := s.Render()
	if err != nil {
		return "", err
	}
	if header != "" {
		text = "/* " + header + " */\n" + text
	}
	return text, nil
}
