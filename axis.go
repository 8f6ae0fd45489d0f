package scroll

import (
	"fmt"
	"strings"
)

// Axis identifies a scroll direction.
type Axis int

const (
	// AxisVertical scrolls along the y direction (default).
	AxisVertical Axis = iota
	// AxisHorizontal scrolls along the x direction.
	AxisHorizontal
	// AxisBoth addresses both directions. Valid at the options level
	// only; a single-axis resolution never receives it.
	AxisBoth
)

// String returns the canonical axis name.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	case AxisBoth:
		return "both"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// covers reports whether an option-level axis addresses a.
func (a Axis) covers(single Axis) bool {
	return a == AxisBoth || a == single
}

// axisAliases maps every recognized spelling to its canonical axis.
var axisAliases = map[string]Axis{
	"v": AxisVertical, "y": AxisVertical, "top": AxisVertical, "vertical": AxisVertical,
	"h": AxisHorizontal, "x": AxisHorizontal, "left": AxisHorizontal, "horizontal": AxisHorizontal,
	"vh": AxisBoth, "hv": AxisBoth, "xy": AxisBoth, "yx": AxisBoth, "all": AxisBoth, "both": AxisBoth,
}

// ParseAxis canonicalizes an axis name or alias, case-insensitively.
// Unrecognized names fail with ErrInvalidAxis.
func ParseAxis(name string) (Axis, error) {
	a, ok := axisAliases[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, name)
	}
	return a, nil
}

// CanonicalizeAxisKeys returns a copy of m with every key that is a
// recognized axis alias rewritten to its canonical name. Keys that are
// not axis aliases are carried over untouched. The input map is never
// modified.
func CanonicalizeAxisKeys[V any](m map[string]V) map[string]V {
	out := make(map[string]V, len(m))
	for k, v := range m {
		if a, ok := axisAliases[strings.ToLower(k)]; ok {
			out[a.String()] = v
		} else {
			out[k] = v
		}
	}
	return out
}
