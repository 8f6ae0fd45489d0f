package scroll

import (
	"fmt"
	"strings"
)

// Mode selects which base position relative offsets and omitted axes
// reference during resolution.
type Mode int

const (
	// Replace resolves against the live position (default).
	Replace Mode = iota
	// Append resolves relative offsets against the last queued target,
	// so chained calls compose.
	Append
	// Merge behaves like Append and additionally inherits axes this
	// call leaves unspecified from the queued target.
	Merge
)

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case Replace:
		return "replace"
	case Append:
		return "append"
	case Merge:
		return "merge"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode canonicalizes a mode name, case-insensitively. The empty
// string is Replace.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(name) {
	case "", "replace":
		return Replace, nil
	case "append":
		return Append, nil
	case "merge":
		return Merge, nil
	}
	return 0, fmt.Errorf("unknown scroll mode %q", name)
}

// DefaultQueue is the queue consulted when options name none.
const DefaultQueue = "fx"

// Options carries caller-supplied scroll options. Zero values mean
// "derive a default": an empty Axis is derived from the shape of the
// target, an empty Queue becomes DefaultQueue. Axis accepts any
// recognized alias.
type Options struct {
	Axis  string
	Queue string
	Mode  Mode
}

// Settings is a fully resolved option set, ready for Resolve.
type Settings struct {
	Axis  Axis
	Queue string
	Mode  Mode
}

// ResolveOptions fills defaults and derives the effective axis from the
// shape of the target. An explicit Options.Axis always wins; an
// unrecognized one fails with ErrInvalidAxis. The inputs are never
// modified.
func ResolveOptions(opts Options, target Target) (Settings, error) {
	s := Settings{
		Axis:  deriveAxis(target),
		Queue: DefaultQueue,
		Mode:  opts.Mode,
	}
	if opts.Queue != "" {
		s.Queue = opts.Queue
	}
	if opts.Axis != "" {
		a, err := ParseAxis(opts.Axis)
		if err != nil {
			return Settings{}, err
		}
		s.Axis = a
	}
	return s, nil
}

// deriveAxis picks the default axis from the target's shape, in
// priority order: a per-axis map with both axes set means Both, with
// one axis set means that axis; the keywords top/bottom mean Vertical
// and left/right mean Horizontal; everything else means Vertical.
func deriveAxis(target Target) Axis {
	if target.isMap {
		m := CanonicalizeAxisKeys(target.axes)
		h := !m[AxisHorizontal.String()].IsNone()
		v := !m[AxisVertical.String()].IsNone()
		switch {
		case h && v:
			return AxisBoth
		case h:
			return AxisHorizontal
		}
		return AxisVertical
	}
	if target.value.kind == ValueString {
		switch strings.ToLower(target.value.str) {
		case "top", "bottom":
			return AxisVertical
		case "left", "right":
			return AxisHorizontal
		}
	}
	return AxisVertical
}
