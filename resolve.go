package scroll

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Container is the measurable scroll surface consulted during
// resolution. Implementations report per-axis measurements for
// AxisHorizontal and AxisVertical only.
type Container interface {
	// ScrollPos returns the live scroll offset on the axis.
	ScrollPos(a Axis) int
	// MaxScroll returns the maximum scrollable offset on the axis (>= 0).
	MaxScroll(a Axis) int
}

// QueueView is a read-only view of the not-yet-executed targets for a
// named queue, oldest first. Entries may address either axis or both;
// the resolver never mutates the underlying store.
type QueueView interface {
	Pending(queue string) []Coords
}

// Resolver turns a Target into absolute, clamped Coords. It holds no
// state beyond its injected queue view and allocates a fresh result per
// call, so a single Resolver can serve any number of resolutions.
type Resolver struct {
	queue QueueView
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithQueue injects the view of pending targets consulted by append and
// merge modes. Without one, those modes fall back to the live position
// and merge inheritance finds nothing.
func WithQueue(q QueueView) Option {
	return func(r *Resolver) {
		r.queue = q
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve converts target into an absolute, range-clamped coordinate
// pair. Axes the operation does not address come back as Ignore. The
// target and settings are never modified.
func (r *Resolver) Resolve(target Target, c Container, s Settings) (Coords, error) {
	if target.isMap {
		return r.resolveMap(target.axes, c, s)
	}
	return r.resolvePrimitive(target.value, c, s)
}

// resolveMap resolves each axis of a per-axis map independently, with
// the settings axis pinned to that axis. An axis the overall settings
// exclude is not resolved: merge mode carries its queued target
// forward, every other mode ignores it.
func (r *Resolver) resolveMap(axes map[string]Value, c Container, s Settings) (Coords, error) {
	m := CanonicalizeAxisKeys(axes)
	var out Coords
	for _, a := range []Axis{AxisHorizontal, AxisVertical} {
		if !s.Axis.covers(a) {
			if s.Mode == Merge {
				out.set(a, r.lastQueuedTarget(s.Queue).Get(a))
			}
			continue
		}
		pinned := s
		pinned.Axis = a
		res, err := r.resolvePrimitive(m[a.String()], c, pinned)
		if err != nil {
			return Coords{}, err
		}
		out.set(a, res.Get(a))
	}
	return out, nil
}

// resolvePrimitive resolves one primitive value on the single axis the
// settings put in force. The other axis is always Ignore in the result.
func (r *Resolver) resolvePrimitive(v Value, c Container, s Settings) (Coords, error) {
	a := s.Axis
	if a != AxisHorizontal && a != AxisVertical {
		return Coords{}, fmt.Errorf("%w: a single-axis position needs horizontal or vertical, got %s", ErrAmbiguousAxis, a)
	}

	var out Coords
	switch v.kind {
	case ValueNone:
		// No movement requested. Merge mode inherits whatever the
		// queued chain already has in flight for this axis.
		if s.Mode == Merge {
			out.set(a, r.lastQueuedTarget(s.Queue).Get(a))
		}
		return out, nil
	case ValueNumber:
		out.set(a, clampOffset(v.num, c.MaxScroll(a)))
		return out, nil
	}

	str := strings.ToLower(v.str)

	sign, base := 1.0, 0.0
	switch {
	case strings.HasPrefix(str, "+="):
		str = str[2:]
		base = float64(r.relativeBase(c, a, s))
	case strings.HasPrefix(str, "-="):
		sign = -1
		str = str[2:]
		base = float64(r.relativeBase(c, a, s))
	}

	maxPos := c.MaxScroll(a)

	var num float64
	switch {
	case strings.HasSuffix(str, "px"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(str, "px"), 64)
		if err != nil {
			return Coords{}, fmt.Errorf("%w: %q", ErrInvalidPosition, v.str)
		}
		num = f
	case strings.HasSuffix(str, "%"):
		f, err := strconv.ParseFloat(strings.TrimSuffix(str, "%"), 64)
		if err != nil {
			return Coords{}, fmt.Errorf("%w: %q", ErrInvalidPosition, v.str)
		}
		num = f * float64(maxPos) / 100
	default:
		if kw, ok := keywordPos(str, a, maxPos); ok {
			num = float64(kw)
		} else if isPositionKeyword(str) {
			return Coords{}, fmt.Errorf("%w: %q on the %s axis", ErrKeywordMismatch, v.str, a)
		} else {
			f, err := strconv.ParseFloat(str, 64)
			if err != nil {
				return Coords{}, fmt.Errorf("%w: %q", ErrInvalidPosition, v.str)
			}
			num = f
		}
	}

	out.set(a, clampOffset(base+sign*num, maxPos))
	return out, nil
}

// relativeBase picks the position a +=/-= offset applies to. Append and
// merge chain off the last queued target when one exists; replace
// always starts from the live position.
func (r *Resolver) relativeBase(c Container, a Axis, s Settings) int {
	if s.Mode == Append || s.Mode == Merge {
		if last := r.lastQueuedTarget(s.Queue).Get(a); !last.Ignored() {
			return last.Px()
		}
	}
	return c.ScrollPos(a)
}

// lastQueuedTarget folds the pending entries of a queue, oldest to
// newest, into the position the queued work eventually arrives at. An
// axis no entry addresses stays Ignore.
func (r *Resolver) lastQueuedTarget(queue string) Coords {
	var out Coords
	if r.queue == nil {
		return out
	}
	for _, entry := range r.queue.Pending(queue) {
		if !entry.Horizontal.Ignored() {
			out.Horizontal = entry.Horizontal
		}
		if !entry.Vertical.Ignored() {
			out.Vertical = entry.Vertical
		}
	}
	return out
}

// keywordPos resolves a positional keyword on its own axis.
func keywordPos(s string, a Axis, maxPos int) (int, bool) {
	switch a {
	case AxisHorizontal:
		switch s {
		case "left":
			return 0, true
		case "right":
			return maxPos, true
		}
	case AxisVertical:
		switch s {
		case "top":
			return 0, true
		case "bottom":
			return maxPos, true
		}
	}
	return 0, false
}

// isPositionKeyword reports whether s is a positional keyword for
// either axis.
func isPositionKeyword(s string) bool {
	switch s {
	case "top", "bottom", "left", "right":
		return true
	}
	return false
}

// clampOffset rounds to the nearest whole pixel, then clamps into
// [0, maxPos]. Scroll measurements truncate fractional pixels, so
// rounding first keeps repeated relative moves from drifting.
func clampOffset(pos float64, maxPos int) Offset {
	px := int(math.Round(pos))
	px = min(px, maxPos)
	px = max(px, 0)
	return MoveTo(px)
}
