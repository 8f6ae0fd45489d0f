package scroll

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the primitive position forms.
type ValueKind uint8

const (
	// ValueNone requests no movement. It stands in for every
	// "undefined-like" input: an absent entry, null, false, or "".
	ValueNone ValueKind = iota
	// ValueNumber is an absolute pixel count.
	ValueNumber
	// ValueString is a string form, parsed during resolution.
	ValueString
)

// Value is one primitive position for a single axis.
// The zero Value is None.
type Value struct {
	kind ValueKind
	num  float64
	str  string
}

// At returns a numeric pixel position.
func At(px float64) Value {
	return Value{kind: ValueNumber, num: px}
}

// Str returns a string position: a bare number ("120"), a pixel count
// ("120px"), a percentage of the scrollable range ("45%"), a positional
// keyword (top/bottom/left/right), or a relative offset ("+=50",
// "-=10%"). The empty string is the None value.
func Str(s string) Value {
	if s == "" {
		return Value{}
	}
	return Value{kind: ValueString, str: s}
}

// None returns the explicit "no position" value.
func None() Value {
	return Value{}
}

// Kind returns the value's form.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNone reports whether the value requests no movement.
func (v Value) IsNone() bool {
	return v.kind == ValueNone
}

// Target is a user-supplied scroll destination: a single primitive
// value, or a per-axis map whose keys may be any recognized axis alias.
type Target struct {
	value Value
	axes  map[string]Value
	isMap bool
}

// TargetValue wraps a primitive value addressing the axis the options
// put in force.
func TargetValue(v Value) Target {
	return Target{value: v}
}

// TargetMap wraps a per-axis map. Keys are canonicalized during
// resolution; keys that name neither axis are ignored. The map is
// copied, so later mutation by the caller has no effect.
func TargetMap(axes map[string]Value) Target {
	copied := make(map[string]Value, len(axes))
	for k, v := range axes {
		copied[k] = v
	}
	return Target{axes: copied, isMap: true}
}

// IsMap reports whether the target is the per-axis form.
func (t Target) IsMap() bool {
	return t.isMap
}

// Offset is the resolved position for one axis: an absolute pixel
// offset, or the Ignore sentinel. The zero Offset is Ignore.
type Offset struct {
	px    int
	moved bool
}

// Ignore is the sentinel for an axis the operation leaves untouched.
var Ignore = Offset{}

// MoveTo returns an Offset at the given absolute position.
func MoveTo(px int) Offset {
	return Offset{px: px, moved: true}
}

// Ignored reports whether the axis is left untouched.
func (o Offset) Ignored() bool {
	return !o.moved
}

// Px returns the absolute position. Meaningful only when not Ignored.
func (o Offset) Px() int {
	return o.px
}

// String returns the offset in pixels, or "ignore".
func (o Offset) String() string {
	if !o.moved {
		return "ignore"
	}
	return strconv.Itoa(o.px)
}

// Coords is a fully resolved coordinate pair, the engine's only output.
// Each slot is an in-range absolute offset or Ignore.
type Coords struct {
	Horizontal Offset
	Vertical   Offset
}

// String renders the pair in the form "x=400 y=ignore".
func (c Coords) String() string {
	return fmt.Sprintf("x=%s y=%s", c.Horizontal, c.Vertical)
}

// Get returns the offset for a single axis.
func (c Coords) Get(a Axis) Offset {
	switch a {
	case AxisHorizontal:
		return c.Horizontal
	case AxisVertical:
		return c.Vertical
	}
	return Offset{}
}

// set stores the offset for a single axis.
func (c *Coords) set(a Axis, o Offset) {
	switch a {
	case AxisHorizontal:
		c.Horizontal = o
	case AxisVertical:
		c.Vertical = o
	}
}
