// Package scroll resolves heterogeneous scroll-target descriptions into
// absolute, range-clamped coordinate pairs.
//
// A target may be a pixel count, a "px" or "%" string, a positional
// keyword (top/bottom/left/right), a "+="/"-=" relative offset, or a
// per-axis map of any of these. Resolution consults the container's
// measurable range and, for relative and merge semantics, the chain of
// still-pending targets in a queue, so chained calls compose correctly.
//
// The main entry points are [ResolveOptions], which derives the
// effective axis, queue, and mode from raw options and the shape of the
// target, and [Resolver.Resolve], which produces the final [Coords].
package scroll
