package css

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownDevice is returned when a query refers to a device which was never
// registered.
var ErrUnknownDevice = errors.New("unknown device")

// RangeError reports a max query anchored to the largest registered device.
// There is no next breakpoint to derive an exclusive upper bound from, so this
// is always a programming error on the caller side.
type RangeError struct {
	Device string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("device %q is the last breakpoint, max-width cannot be computed", e.Device)
}

// Device is a named breakpoint.
type Device struct {
	Name      string
	Threshold int // in pixels
}

// Breakpoints keeps devices sorted by ascending threshold.
// NOTE: not safe for concurrent use.
type Breakpoints struct {
	devices []Device
}

// NewBreakpoints creates registry and adds devices in order.
func NewBreakpoints(devices ...Device) *Breakpoints {
	b := &Breakpoints{}
	for _, d := range devices {
		b.AddDevice(d.Name, d.Threshold)
	}
	return b
}

// DefaultBreakpoints returns registry with mobile, tablet and desktop devices.
func DefaultBreakpoints() *Breakpoints {
	return NewBreakpoints(
		Device{Name: "mobile", Threshold: 0},
		Device{Name: "tablet", Threshold: 768},
		Device{Name: "desktop", Threshold: 1025},
	)
}

// AddDevice registers device or redefines threshold of already known one and
// keeps registry sorted.
func (b *Breakpoints) AddDevice(name string, threshold int) {
	if i := b.index(name); i >= 0 {
		b.devices[i].Threshold = threshold
	} else {
		b.devices = append(b.devices, Device{Name: name, Threshold: threshold})
	}
	slices.SortStableFunc(b.devices, func(x, y Device) int {
		return cmp.Compare(x.Threshold, y.Threshold)
	})
}

// Devices returns copy of registered devices in ascending threshold order.
func (b *Breakpoints) Devices() []Device {
	return slices.Clone(b.devices)
}

// Has reports if device is registered.
func (b *Breakpoints) Has(name string) bool {
	return b.index(name) >= 0
}

// Threshold returns pixel threshold of the device.
func (b *Breakpoints) Threshold(name string) (int, bool) {
	if i := b.index(name); i >= 0 {
		return b.devices[i].Threshold, true
	}
	return 0, false
}

// MaxPixelBelowNext returns threshold of the device following name minus one.
func (b *Breakpoints) MaxPixelBelowNext(name string) (int, error) {
	i := b.index(name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDevice, name)
	}
	if i == len(b.devices)-1 {
		return 0, &RangeError{Device: name}
	}
	return b.devices[i+1].Threshold - 1, nil
}

func (b *Breakpoints) index(name string) int {
	return slices.IndexFunc(b.devices, func(d Device) bool { return d.Name == name })
}
