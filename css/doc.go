// Package css accumulates CSS declarations produced by page widgets and
// serializes them into a single, deterministically ordered stylesheet.
//
// Declarations are kept per selector inside "buckets" - one bucket per media
// query condition built from named breakpoints (devices) plus the
// unconditional "all" bucket. Many independent callers may add rules for the
// same selector under different viewport ranges in any order; the serializer
// orders buckets so that narrower viewport overrides are always emitted after
// broader ones and the cascade resolves to the intended per-breakpoint value.
//
// # Media queries
//
//   - Devices are registered with a pixel threshold (see [Breakpoints]).
//   - A [Query] names a min device, a max device or both. Min resolves to the
//     device threshold, max resolves to the threshold of the next device
//     minus one pixel.
//   - [Encode] and [Decode] convert between a caller ordered [Descriptor] and
//     its string hash ("min_tablet-max_desktop", or "all").
//
// # Output order
//
//   - custom properties, one block per root selector
//   - rules of the "all" bucket
//   - media buckets: pure max queries by descending max-width, then min
//     anchored queries by ascending min-width
//   - raw text blocks, wrapped into max-width of their device
//
// The final text is passed through a [Minifier].
package css
