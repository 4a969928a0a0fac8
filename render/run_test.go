package render

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"pagecss/config"
	"pagecss/css"
	"pagecss/state"
	"pagecss/styledoc"
)

const page = `
variables:
  - name: brand
    value: "#ff0000"
rules:
  - selector: .btn
    declarations: "color: var(--brand); padding: 10px;"
  - selector: .btn
    declarations: "padding: 5px"
    query: {max: mobile}
`

func newEnv(t *testing.T) *state.LocalEnv {
	t.Helper()
	env := state.EnvFromContext(state.ContextWithEnv(context.Background()))
	env.Log = zaptest.NewLogger(t)
	return env
}

func TestStylesheet(t *testing.T) {
	doc, err := styledoc.Parse([]byte(page))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	tests := []struct {
		name     string
		cfg      *config.Config
		noMinify bool
		want     string
	}{
		{
			name: "no configuration",
			want: ":root{--brand:#ff0000}.btn{color:var(--brand);padding:10px}@media(max-width:767px){.btn{padding:5px}}",
		},
		{
			name:     "minification disabled on command line",
			noMinify: true,
			want:     ":root{--brand:#ff0000;}.btn{color:var(--brand);padding:10px;}@media(max-width:767px){.btn{padding:5px;}}",
		},
		{
			name: "configured breakpoints and header",
			cfg: &config.Config{Stylesheet: config.StylesheetConfig{
				Breakpoints: []config.BreakpointConfig{{Name: "mobile", Threshold: 0}, {Name: "tablet", Threshold: 600}},
				Header:      "generated",
			}},
			want: "/* generated */\n:root{--brand:#ff0000;}.btn{color:var(--brand);padding:10px;}@media(max-width:599px){.btn{padding:5px;}}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newEnv(t)
			env.Cfg = tt.cfg
			env.NoMinify = tt.noMinify

			got, err := Stylesheet(env, doc)
			if err != nil {
				t.Fatalf("Stylesheet() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected output:\n got: %s\nwant: %s", got, tt.want)
			}
		})
	}
}

func TestStylesheet_RangeError(t *testing.T) {
	doc, err := styledoc.Parse([]byte("rules:\n  - selector: .a\n    declarations: \"color: red\"\n    query: {max: desktop}\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	var rangeErr *css.RangeError
	if _, err := Stylesheet(newEnv(t), doc); !errors.As(err, &rangeErr) {
		t.Errorf("expected RangeError, got %v", err)
	}
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "page.yaml")
	if err := os.WriteFile(src, []byte(page), 0644); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}
	dst := filepath.Join(dir, "out", "page.css")

	env := newEnv(t)
	if err := Process(context.Background(), env, src, dst); err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("unable to read result: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty stylesheet")
	}

	if err := Process(context.Background(), env, src, dst); err == nil {
		t.Error("expected error when destination exists")
	}
	env.Overwrite = true
	if err := Process(context.Background(), env, src, dst); err != nil {
		t.Errorf("Process() with overwrite error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Process(ctx, env, src, filepath.Join(dir, "cancelled.css")); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	if err := Process(context.Background(), env, filepath.Join(dir, "missing.yaml"), dst); err == nil {
		t.Error("expected error for missing source")
	}
}
