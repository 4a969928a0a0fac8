package css_test

import (
	"errors"
	"testing"

	"pagecss/css"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		d    css.Descriptor
		want string
	}{
		{"empty", nil, "all"},
		{"min", css.Descriptor{{Endpoint: css.EndpointMin, Device: "tablet"}}, "min_tablet"},
		{"max", css.Descriptor{{Endpoint: css.EndpointMax, Device: "mobile"}}, "max_mobile"},
		{"min max", css.Descriptor{
			{Endpoint: css.EndpointMin, Device: "mobile"},
			{Endpoint: css.EndpointMax, Device: "tablet"},
		}, "min_mobile-max_tablet"},
		{"caller order kept", css.Descriptor{
			{Endpoint: css.EndpointMax, Device: "tablet"},
			{Endpoint: css.EndpointMin, Device: "mobile"},
		}, "max_tablet-min_mobile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := css.Encode(tt.d); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	bp := css.NewBreakpoints(
		css.Device{Name: "sm", Threshold: 480},
		css.Device{Name: "md", Threshold: 768},
		css.Device{Name: "lg", Threshold: 1025},
	)

	tests := []struct {
		hash string
		want css.Resolved
	}{
		{"all", css.Resolved{}},
		{"min_md", css.Resolved{HasMin: true, Min: 768}},
		{"max_sm", css.Resolved{HasMax: true, Max: 767}},
		{"min_sm-max_md", css.Resolved{HasMin: true, Min: 480, HasMax: true, Max: 1024}},
		{"max_md-min_sm", css.Resolved{HasMin: true, Min: 480, HasMax: true, Max: 1024}},
	}
	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			got, err := css.Decode(tt.hash, bp)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.hash, got, tt.want)
			}
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	bp := css.DefaultBreakpoints()

	var rangeErr *css.RangeError
	if _, err := css.Decode("max_desktop", bp); !errors.As(err, &rangeErr) {
		t.Errorf("expected RangeError for max of last device, got %v", err)
	}
	if _, err := css.Decode("min_watch", bp); !errors.Is(err, css.ErrUnknownDevice) {
		t.Errorf("expected ErrUnknownDevice, got %v", err)
	}
	if _, err := css.Decode("between_tablet", bp); !errors.Is(err, css.ErrInvalidEndpoint) {
		t.Errorf("expected ErrInvalidEndpoint, got %v", err)
	}
	if _, err := css.Decode("tablet", bp); err == nil {
		t.Error("expected error for hash without endpoint")
	}
}

func TestDecode_UnderscoreInDeviceName(t *testing.T) {
	bp := css.NewBreakpoints(
		css.Device{Name: "mobile", Threshold: 0},
		css.Device{Name: "mobile_extra", Threshold: 480},
		css.Device{Name: "tablet", Threshold: 768},
	)

	d := css.Descriptor{
		{Endpoint: css.EndpointMin, Device: "mobile_extra"},
		{Endpoint: css.EndpointMax, Device: "mobile_extra"},
	}
	hash := css.Encode(d)
	if hash != "min_mobile_extra-max_mobile_extra" {
		t.Fatalf("Encode() = %q", hash)
	}
	got, err := css.Decode(hash, bp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (css.Resolved{HasMin: true, Min: 480, HasMax: true, Max: 767}); got != want {
		t.Errorf("Decode(%q) = %+v, want %+v", hash, got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	bp := css.DefaultBreakpoints()

	descriptors := []css.Descriptor{
		{{Endpoint: css.EndpointMin, Device: "tablet"}},
		{{Endpoint: css.EndpointMax, Device: "tablet"}},
		{{Endpoint: css.EndpointMin, Device: "mobile"}, {Endpoint: css.EndpointMax, Device: "tablet"}},
		{{Endpoint: css.EndpointMax, Device: "mobile"}, {Endpoint: css.EndpointMin, Device: "desktop"}},
	}
	for _, d := range descriptors {
		t.Run(css.Encode(d), func(t *testing.T) {
			var want css.Resolved
			for _, e := range d {
				switch e.Endpoint {
				case css.EndpointMin:
					want.HasMin = true
					want.Min, _ = bp.Threshold(e.Device)
				case css.EndpointMax:
					want.HasMax = true
					want.Max, _ = bp.MaxPixelBelowNext(e.Device)
				}
			}
			got, err := css.Decode(css.Encode(d), bp)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("got %+v, want %+v", got, want)
			}
		})
	}
}

func TestQuery_Hash(t *testing.T) {
	tests := []struct {
		q    css.Query
		want string
	}{
		{css.Query{}, "all"},
		{css.Query{Min: "tablet"}, "min_tablet"},
		{css.Query{Max: "tablet"}, "max_tablet"},
		{css.Query{Min: "mobile", Max: "tablet"}, "min_mobile-max_tablet"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.q.Hash(); got != tt.want {
				t.Errorf("Hash() = %q, want %q", got, tt.want)
			}
			q, err := css.ParseQuery(tt.want)
			if err != nil {
				t.Fatalf("ParseQuery(%q) error = %v", tt.want, err)
			}
			if q != tt.q {
				t.Errorf("ParseQuery(%q) = %+v, want %+v", tt.want, q, tt.q)
			}
		})
	}
}

func TestDescriptor_QueryIgnoresOrder(t *testing.T) {
	a := css.Descriptor{{Endpoint: css.EndpointMin, Device: "mobile"}, {Endpoint: css.EndpointMax, Device: "tablet"}}
	b := css.Descriptor{{Endpoint: css.EndpointMax, Device: "tablet"}, {Endpoint: css.EndpointMin, Device: "mobile"}}

	if a.Query() != b.Query() {
		t.Errorf("expected same bucket key, got %+v and %+v", a.Query(), b.Query())
	}
	if css.Encode(a) == css.Encode(b) {
		t.Error("expected different hashes for different entry order")
	}
}

func TestResolved_MediaQuery(t *testing.T) {
	tests := []struct {
		r    css.Resolved
		want string
	}{
		{css.Resolved{}, ""},
		{css.Resolved{HasMin: true, Min: 768}, "@media(min-width:768px)"},
		{css.Resolved{HasMax: true, Max: 767}, "@media(max-width:767px)"},
		{css.Resolved{HasMin: true, Min: 768, HasMax: true, Max: 1024}, "@media(min-width:768px) and (max-width:1024px)"},
	}
	for _, tt := range tests {
		if got := tt.r.MediaQuery(); got != tt.want {
			t.Errorf("MediaQuery(%+v) = %q, want %q", tt.r, got, tt.want)
		}
	}
}
