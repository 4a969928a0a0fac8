package css

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/elliotchance/orderedmap/v3"
	"go.uber.org/zap"
)

// DefaultRoot is the selector custom properties are attached to by default.
const DefaultRoot = ":root"

// Minifier post-processes rendered stylesheet text.
type Minifier interface {
	Minify(css string) string
}

// MinifierFunc adapts ordinary function to Minifier.
type MinifierFunc func(string) string

func (f MinifierFunc) Minify(css string) string {
	return f(css)
}

// Identity returns text unchanged.
var Identity = MinifierFunc(func(s string) string { return s })

type (
	bucket   = orderedmap.OrderedMap[string, *properties]
	rulesMap = orderedmap.OrderedMap[Query, *bucket]
)

// Stylesheet accumulates rules, custom properties and raw text for a single
// page build and renders them as one stylesheet.
// NOTE: not to be used concurrently!
type Stylesheet struct {
	log      *zap.Logger
	bp       *Breakpoints
	minifier Minifier

	rules *rulesMap
	vars  *orderedmap.OrderedMap[string, *properties]
	raw   *orderedmap.OrderedMap[string, []string]
}

// Option configures Stylesheet.
type Option func(*Stylesheet)

// WithMinifier sets minifier applied to rendered text.
func WithMinifier(m Minifier) Option {
	return func(s *Stylesheet) {
		if m != nil {
			s.minifier = m
		}
	}
}

// NewStylesheet creates empty stylesheet resolving media queries with bp.
func NewStylesheet(bp *Breakpoints, log *zap.Logger, options ...Option) *Stylesheet {
	if log == nil {
		log = zap.NewNop()
	}
	if bp == nil {
		bp = NewBreakpoints()
	}
	s := &Stylesheet{
		log:      log.Named("stylesheet"),
		bp:       bp,
		minifier: Identity,
	}
	for _, opt := range options {
		opt(s)
	}
	s.Reset()
	return s
}

// Breakpoints returns registry used to resolve media queries.
func (s *Stylesheet) Breakpoints() *Breakpoints {
	return s.bp
}

// AddDevice registers breakpoint, see [Breakpoints.AddDevice].
func (s *Stylesheet) AddDevice(name string, threshold int) {
	s.bp.AddDevice(name, threshold)
}

// Reset drops all accumulated state, breakpoints are kept.
func (s *Stylesheet) Reset() {
	s.rules = orderedmap.NewOrderedMap[Query, *bucket]()
	s.vars = orderedmap.NewOrderedMap[string, *properties]()
	s.raw = orderedmap.NewOrderedMap[string, []string]()
}

// AddRules parses declarations text ("color: red; margin: 0") and merges it
// into rules of selector under query q. If any fragment of the text is not a
// declaration nothing is added.
func (s *Stylesheet) AddRules(selector, decls string, q Query) {
	parsed, bad, ok := parseDeclarations(decls)
	if !ok {
		s.log.Debug("Malformed declarations, rules ignored",
			zap.String("selector", selector), zap.Stringer("query", q), zap.String("fragment", bad))
		// bucket is created even when nothing gets added
		s.bucket(q)
		return
	}
	s.AddDeclarations(selector, parsed, q)
}

// AddDeclarations merges already parsed declarations into rules of selector
// under query q.
func (s *Stylesheet) AddDeclarations(selector string, decls []Declaration, q Query) {
	b := s.bucket(q)
	props, ok := b.Get(selector)
	if !ok {
		props = newProperties()
		b.Set(selector, props)
	}
	merge(props, decls)
}

// AddBlock adds every "selector { declarations }" group of CSS text under
// query q as if AddRules was called for each of them.
func (s *Stylesheet) AddBlock(text string, q Query) {
	for _, g := range splitGroups(text, s.log) {
		s.AddRules(g.selector, g.declarations, q)
	}
}

// AddVariable sets custom property under root selector (":root" when not
// specified).
func (s *Stylesheet) AddVariable(name, value string, root ...string) {
	r := DefaultRoot
	if len(root) > 0 && root[0] != "" {
		r = root[0]
	}
	props, ok := s.vars.Get(r)
	if !ok {
		props = newProperties()
		s.vars.Set(r, props)
	}
	props.Set(strings.TrimPrefix(name, "--"), value)
}

// AddRawCSS appends opaque CSS text for the device, empty device means
// unconditional text.
func (s *Stylesheet) AddRawCSS(text string, device ...string) {
	d := ""
	if len(device) > 0 {
		d = device[0]
	}
	list, _ := s.raw.Get(d)
	s.raw.Set(d, append(list, strings.TrimSpace(text)))
}

func (s *Stylesheet) bucket(q Query) *bucket {
	b, ok := s.rules.Get(q)
	if !ok {
		b = orderedmap.NewOrderedMap[string, *properties]()
		s.rules.Set(q, b)
	}
	return b
}

// Queries returns all known buckets in order of creation.
func (s *Stylesheet) Queries() []Query {
	qs := make([]Query, 0, s.rules.Len())
	for el := s.rules.Front(); el != nil; el = el.Next() {
		qs = append(qs, el.Key)
	}
	return qs
}

// Selectors returns selectors of the bucket in order of creation.
func (s *Stylesheet) Selectors(q Query) []string {
	b, ok := s.rules.Get(q)
	if !ok {
		return nil
	}
	sels := make([]string, 0, b.Len())
	for el := b.Front(); el != nil; el = el.Next() {
		sels = append(sels, el.Key)
	}
	return sels
}

// Declarations returns declarations of selector in the bucket.
func (s *Stylesheet) Declarations(q Query, selector string) ([]Declaration, bool) {
	b, ok := s.rules.Get(q)
	if !ok {
		return nil, false
	}
	props, ok := b.Get(selector)
	if !ok {
		return nil, false
	}
	return declarations(props), true
}

// Property returns single property value of selector in the bucket.
func (s *Stylesheet) Property(q Query, selector, property string) (string, bool) {
	b, ok := s.rules.Get(q)
	if !ok {
		return "", false
	}
	props, ok := b.Get(selector)
	if !ok {
		return "", false
	}
	return props.Get(property)
}

// Roots returns root selectors of custom properties.
func (s *Stylesheet) Roots() []string {
	roots := make([]string, 0, s.vars.Len())
	for el := s.vars.Front(); el != nil; el = el.Next() {
		roots = append(roots, el.Key)
	}
	return roots
}

// Variables returns custom properties (names without leading dashes) of the
// root selector.
func (s *Stylesheet) Variables(root string) ([]Declaration, bool) {
	props, ok := s.vars.Get(root)
	if !ok {
		return nil, false
	}
	return declarations(props), true
}

// Raw returns raw text blocks of the device.
func (s *Stylesheet) Raw(device string) []string {
	list, _ := s.raw.Get(device)
	return slices.Clone(list)
}

type resolvedBucket struct {
	media string
	key   sortKey
	rules *bucket
}

// Render produces final stylesheet text. Only breakpoint configuration errors
// are reported: *RangeError for max query anchored to the last device and
// ErrUnknownDevice for queries referring to devices never registered.
func (s *Stylesheet) Render() (string, error) {
	var sb strings.Builder

	s.writeVariables(&sb)

	var media []resolvedBucket
	for el := s.rules.Front(); el != nil; el = el.Next() {
		if el.Key.IsAll() {
			continue
		}
		r, err := el.Key.Resolve(s.bp)
		if err != nil {
			return "", fmt.Errorf("unable to resolve media query %q: %w", el.Key.Hash(), err)
		}
		media = append(media, resolvedBucket{media: r.MediaQuery(), key: r.key(), rules: el.Value})
	}
	slices.SortStableFunc(media, func(a, b resolvedBucket) int {
		return a.key.compare(b.key)
	})

	if all, ok := s.rules.Get(Query{}); ok {
		writeRules(&sb, all)
	}
	for _, m := range media {
		var inner strings.Builder
		writeRules(&inner, m.rules)
		if inner.Len() == 0 {
			continue
		}
		sb.WriteString(m.media)
		sb.WriteByte('{')
		sb.WriteString(inner.String())
		sb.WriteByte('}')
	}

	s.writeRaw(&sb)

	out := s.minifier.Minify(sb.String())
	s.log.Debug("Stylesheet rendered",
		zap.Int("buckets", s.rules.Len()), zap.Int("length", sb.Len()), zap.Int("bytes", len(out)))
	return out, nil
}

// WriteTo writes rendered stylesheet to w, implementing io.WriterTo.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	out, err := s.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, out)
	return int64(n), err
}

// String returns rendered stylesheet, render errors are logged and result in
// empty string.
func (s *Stylesheet) String() string {
	out, err := s.Render()
	if err != nil {
		s.log.Error("Unable to render stylesheet", zap.Error(err))
		return ""
	}
	return out
}

func (s *Stylesheet) writeVariables(sb *strings.Builder) {
	for el := s.vars.Front(); el != nil; el = el.Next() {
		if el.Value.Len() == 0 {
			continue
		}
		sb.WriteString(el.Key)
		sb.WriteByte('{')
		for v := el.Value.Front(); v != nil; v = v.Next() {
			sb.WriteString("--")
			sb.WriteString(v.Key)
			sb.WriteByte(':')
			sb.WriteString(v.Value)
			sb.WriteByte(';')
		}
		sb.WriteByte('}')
	}
}

// writeRules writes selectors of the bucket, selectors without any non-empty
// declarations are skipped.
func writeRules(sb *strings.Builder, b *bucket) {
	for el := b.Front(); el != nil; el = el.Next() {
		var decls strings.Builder
		writeProperties(&decls, el.Value)
		if decls.Len() == 0 {
			continue
		}
		sb.WriteString(el.Key)
		sb.WriteByte('{')
		sb.WriteString(decls.String())
		sb.WriteByte('}')
	}
}

func (s *Stylesheet) writeRaw(sb *strings.Builder) {
	for el := s.raw.Front(); el != nil; el = el.Next() {
		text := strings.Join(el.Value, "\n")
		if text == "" {
			continue
		}
		if px, ok := s.bp.Threshold(el.Key); ok && el.Key != "" {
			fmt.Fprintf(sb, "@media(max-width:%dpx){%s}", px, text)
			continue
		}
		sb.WriteString(text)
	}
}
