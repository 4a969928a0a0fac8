package css_test

import (
	"errors"
	"testing"

	"pagecss/css"
)

func TestBreakpoints_AddDeviceKeepsOrder(t *testing.T) {
	bp := css.NewBreakpoints()
	bp.AddDevice("desktop", 1025)
	bp.AddDevice("mobile", 0)
	bp.AddDevice("tablet", 768)

	want := []string{"mobile", "tablet", "desktop"}
	got := bp.Devices()
	if len(got) != len(want) {
		t.Fatalf("expected %d devices, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("device %d: expected %q, got %q", i, name, got[i].Name)
		}
	}
}

func TestBreakpoints_RedefineDevice(t *testing.T) {
	bp := css.DefaultBreakpoints()
	bp.AddDevice("tablet", 2000)

	devices := bp.Devices()
	if len(devices) != 3 {
		t.Fatalf("expected 3 devices after redefinition, got %d", len(devices))
	}
	if last := devices[len(devices)-1]; last.Name != "tablet" || last.Threshold != 2000 {
		t.Errorf("expected tablet@2000 to be last, got %s@%d", last.Name, last.Threshold)
	}
	if px, ok := bp.Threshold("tablet"); !ok || px != 2000 {
		t.Errorf("Threshold(tablet) = %d, %v; want 2000, true", px, ok)
	}
}

func TestBreakpoints_MaxPixelBelowNext(t *testing.T) {
	bp := css.NewBreakpoints(
		css.Device{Name: "sm", Threshold: 480},
		css.Device{Name: "md", Threshold: 768},
		css.Device{Name: "lg", Threshold: 1025},
	)

	tests := []struct {
		device string
		want   int
	}{
		{"sm", 767},
		{"md", 1024},
	}
	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			got, err := bp.MaxPixelBelowNext(tt.device)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestBreakpoints_MaxPixelBelowNext_LastDevice(t *testing.T) {
	bp := css.DefaultBreakpoints()

	_, err := bp.MaxPixelBelowNext("desktop")
	var rangeErr *css.RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("expected RangeError, got %v", err)
	}
	if rangeErr.Device != "desktop" {
		t.Errorf("expected device 'desktop' in error, got %q", rangeErr.Device)
	}
}

func TestBreakpoints_MaxPixelBelowNext_Unknown(t *testing.T) {
	bp := css.DefaultBreakpoints()

	if _, err := bp.MaxPixelBelowNext("watch"); !errors.Is(err, css.ErrUnknownDevice) {
		t.Errorf("expected ErrUnknownDevice, got %v", err)
	}
}
