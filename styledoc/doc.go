// Package styledoc reads style documents - YAML descriptions of what page
// widgets would emit - and applies them to a stylesheet.
//
//	breakpoints:
//	  - name: mobile
//	    threshold: 0
//	variables:
//	  - name: brand
//	    value: "#ff0000"
//	rules:
//	  - selector: .btn
//	    declarations: "color: var(--brand); padding: 10px"
//	  - selector: .btn
//	    declarations: "padding: 5px"
//	    query: {max: mobile}
//	  - css: ".a{color:red} .b{margin:0}"
//	    query: {min: tablet}
//	raw:
//	  - device: tablet
//	    css: "body{color:red}"
//
// Breakpoints listed in the document are added on top of configured ones.
package styledoc

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"pagecss/css"
)

type (
	Breakpoint struct {
		Name      string `yaml:"name" validate:"required,excludesall=-"`
		Threshold int    `yaml:"threshold" validate:"gte=0"`
	}

	Variable struct {
		Name  string `yaml:"name" validate:"required"`
		Value string `yaml:"value"`
		Root  string `yaml:"root,omitempty"`
	}

	Query struct {
		Min string `yaml:"min,omitempty"`
		Max string `yaml:"max,omitempty"`
	}

	// Rule is either selector with declarations or block of CSS text.
	Rule struct {
		Selector     string `yaml:"selector,omitempty" validate:"required_without=CSS,excluded_with=CSS"`
		Declarations string `yaml:"declarations,omitempty" validate:"excluded_with=CSS"`
		CSS          string `yaml:"css,omitempty" validate:"required_without=Selector"`
		Query        Query  `yaml:"query,omitempty"`
	}

	Raw struct {
		Device string `yaml:"device,omitempty"`
		CSS    string `yaml:"css" validate:"required"`
	}

	Document struct {
		Breakpoints []Breakpoint `yaml:"breakpoints,omitempty" validate:"dive"`
		Variables   []Variable   `yaml:"variables,omitempty" validate:"dive"`
		Rules       []Rule       `yaml:"rules,omitempty" validate:"dive"`
		Raw         []Raw        `yaml:"raw,omitempty" validate:"dive"`
	}
)

// Parse decodes and validates document.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("failed to decode style document: %w", err)
	}
	if err := gencfg.Validate(doc); err != nil {
		return nil, fmt.Errorf("invalid style document: %w", err)
	}
	return doc, nil
}

// Load reads document from file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style document: %w", err)
	}
	return Parse(data)
}

func (q Query) query() css.Query {
	return css.Query{Min: q.Min, Max: q.Max}
}

// Check verifies that every device referenced by the document is known to
// breakpoints (including ones the document defines itself). All problems are
// reported at once.
func (d *Document) Check(bp *css.Breakpoints) (err error) {
	known := func(name string) bool {
		if bp.Has(name) {
			return true
		}
		for _, b := range d.Breakpoints {
			if b.Name == name {
				return true
			}
		}
		return false
	}
	for i, r := range d.Rules {
		for _, name := range []string{r.Query.Min, r.Query.Max} {
			if name != "" && !known(name) {
				err = multierr.Append(err, fmt.Errorf("rule %d: %w: %q", i, css.ErrUnknownDevice, name))
			}
		}
	}
	for i, r := range d.Raw {
		if r.Device != "" && !known(r.Device) {
			err = multierr.Append(err, fmt.Errorf("raw block %d: %w: %q", i, css.ErrUnknownDevice, r.Device))
		}
	}
	return err
}

// Apply adds document content to the stylesheet in document order:
// breakpoints, variables, rules, raw blocks.
func (d *Document) Apply(s *css.Stylesheet, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	if err := d.Check(s.Breakpoints()); err != nil {
		return err
	}
	for _, b := range d.Breakpoints {
		s.AddDevice(b.Name, b.Threshold)
	}
	for _, v := range d.Variables {
		s.AddVariable(v.Name, v.Value, v.Root)
	}
	for _, r := range d.Rules {
		if r.CSS != "" {
			s.AddBlock(r.CSS, r.Query.query())
			continue
		}
		s.AddRules(r.Selector, r.Declarations, r.Query.query())
	}
	for _, r := range d.Raw {
		s.AddRawCSS(r.CSS, r.Device)
	}
	log.Debug("Style document applied",
		zap.Int("breakpoints", len(d.Breakpoints)),
		zap.Int("variables", len(d.Variables)),
		zap.Int("rules", len(d.Rules)),
		zap.Int("raw", len(d.Raw)))
	return nil
}
