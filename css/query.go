package css

import (
	"cmp"
	"fmt"
	"strings"
)

// AllBucket is the hash of the unconditional bucket.
const AllBucket = "all"

// QueryEntry is a single endpoint of a media query descriptor.
type QueryEntry struct {
	Endpoint Endpoint
	Device   string
}

// Descriptor is a caller ordered media query description, at most one entry
// per endpoint is expected.
type Descriptor []QueryEntry

// Query is a media query condition, used directly as a bucket key. Zero value
// is the unconditional "all" bucket.
type Query struct {
	Min string // device name or empty
	Max string // device name or empty
}

// Resolved is a media query with device names replaced by pixel values.
type Resolved struct {
	HasMin bool
	Min    int
	HasMax bool
	Max    int
}

// Encode produces bucket hash for descriptor preserving entry order.
func Encode(d Descriptor) string {
	if len(d) == 0 {
		return AllBucket
	}
	parts := make([]string, 0, len(d))
	for _, e := range d {
		parts = append(parts, e.Endpoint.String()+"_"+e.Device)
	}
	return strings.Join(parts, "-")
}

// ParseDescriptor splits bucket hash back into descriptor entries.
func ParseDescriptor(hash string) (Descriptor, error) {
	if hash == AllBucket || hash == "" {
		return nil, nil
	}
	var d Descriptor
	for part := range strings.SplitSeq(hash, "-") {
		ep, device, ok := strings.Cut(part, "_")
		if !ok || device == "" {
			return nil, fmt.Errorf("malformed query hash %q", hash)
		}
		endpoint, err := ParseEndpoint(ep)
		if err != nil {
			return nil, fmt.Errorf("malformed query hash %q: %w", hash, err)
		}
		d = append(d, QueryEntry{Endpoint: endpoint, Device: device})
	}
	return d, nil
}

// Decode resolves bucket hash to pixel values using current state of the
// registry.
func Decode(hash string, bp *Breakpoints) (Resolved, error) {
	d, err := ParseDescriptor(hash)
	if err != nil {
		return Resolved{}, err
	}
	return d.Query().Resolve(bp)
}

// Query folds descriptor into bucket key, later entries win.
func (d Descriptor) Query() Query {
	var q Query
	for _, e := range d {
		switch e.Endpoint {
		case EndpointMin:
			q.Min = e.Device
		case EndpointMax:
			q.Max = e.Device
		}
	}
	return q
}

// IsAll reports if query is unconditional.
func (q Query) IsAll() bool {
	return q.Min == "" && q.Max == ""
}

// Descriptor returns entries of the query, min first.
func (q Query) Descriptor() Descriptor {
	var d Descriptor
	if q.Min != "" {
		d = append(d, QueryEntry{Endpoint: EndpointMin, Device: q.Min})
	}
	if q.Max != "" {
		d = append(d, QueryEntry{Endpoint: EndpointMax, Device: q.Max})
	}
	return d
}

// Hash returns canonical bucket hash of the query.
func (q Query) Hash() string {
	return Encode(q.Descriptor())
}

func (q Query) String() string {
	return q.Hash()
}

// ParseQuery converts bucket hash to query.
func ParseQuery(hash string) (Query, error) {
	d, err := ParseDescriptor(hash)
	if err != nil {
		return Query{}, err
	}
	return d.Query(), nil
}

// Resolve converts device names to pixels.
func (q Query) Resolve(bp *Breakpoints) (Resolved, error) {
	var r Resolved
	if q.Min != "" {
		px, ok := bp.Threshold(q.Min)
		if !ok {
			return Resolved{}, fmt.Errorf("%w: %q", ErrUnknownDevice, q.Min)
		}
		r.HasMin, r.Min = true, px
	}
	if q.Max != "" {
		px, err := bp.MaxPixelBelowNext(q.Max)
		if err != nil {
			return Resolved{}, err
		}
		r.HasMax, r.Max = true, px
	}
	return r, nil
}

// MediaQuery returns "@media" prelude for resolved query, empty for
// unconditional one.
func (r Resolved) MediaQuery() string {
	var parts []string
	if r.HasMin {
		parts = append(parts, fmt.Sprintf("(min-width:%dpx)", r.Min))
	}
	if r.HasMax {
		parts = append(parts, fmt.Sprintf("(max-width:%dpx)", r.Max))
	}
	if len(parts) == 0 {
		return ""
	}
	return "@media" + strings.Join(parts, " and ")
}

// sortKey orders buckets so that broader ranges precede narrower overrides:
// pure max queries first with wider max earlier, then min anchored queries by
// ascending min, a min-only query before min+max with the same min.
type sortKey struct {
	hasMin bool
	min    int
	hasMax bool
	negMax int
}

func (r Resolved) key() sortKey {
	k := sortKey{hasMin: r.HasMin, hasMax: r.HasMax}
	if r.HasMin {
		k.min = r.Min
	}
	if r.HasMax {
		k.negMax = -r.Max
	}
	return k
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

func (k sortKey) compare(o sortKey) int {
	if c := compareBool(k.hasMin, o.hasMin); c != 0 {
		return c
	}
	if c := cmp.Compare(k.min, o.min); c != 0 {
		return c
	}
	if c := compareBool(k.hasMax, o.hasMax); c != 0 {
		return c
	}
	return cmp.Compare(k.negMax, o.negMax)
}

// Compare orders resolved queries for output.
func Compare(a, b Resolved) int {
	return a.key().compare(b.key())
}
