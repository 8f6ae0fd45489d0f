package scroll

// Surface is an in-memory scrollable area: a content extent viewed
// through a smaller viewport. It implements Container and stands in for
// a host-provided element or window in tests and demos.
type Surface struct {
	contentWidth   int
	contentHeight  int
	viewportWidth  int
	viewportHeight int
	scrollX        int
	scrollY        int
}

// NewSurface creates a surface with the given content and viewport
// dimensions, scrolled to the origin.
func NewSurface(contentWidth, contentHeight, viewportWidth, viewportHeight int) *Surface {
	return &Surface{
		contentWidth:   contentWidth,
		contentHeight:  contentHeight,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// ScrollPos returns the current offset on the axis.
func (s *Surface) ScrollPos(a Axis) int {
	switch a {
	case AxisHorizontal:
		return s.scrollX
	case AxisVertical:
		return s.scrollY
	}
	return 0
}

// MaxScroll returns the maximum scroll offset on the axis.
func (s *Surface) MaxScroll(a Axis) int {
	switch a {
	case AxisHorizontal:
		return max(0, s.contentWidth-s.viewportWidth)
	case AxisVertical:
		return max(0, s.contentHeight-s.viewportHeight)
	}
	return 0
}

// ContentSize returns the total scrollable content dimensions.
func (s *Surface) ContentSize() (width, height int) {
	return s.contentWidth, s.contentHeight
}

// ViewportSize returns the visible area dimensions.
func (s *Surface) ViewportSize() (width, height int) {
	return s.viewportWidth, s.viewportHeight
}

// ScrollTo sets the offsets directly, clamped to the valid range.
func (s *Surface) ScrollTo(x, y int) {
	s.scrollX = clamp(x, 0, s.MaxScroll(AxisHorizontal))
	s.scrollY = clamp(y, 0, s.MaxScroll(AxisVertical))
}

// ScrollBy adjusts the offsets by a delta.
func (s *Surface) ScrollBy(dx, dy int) {
	s.ScrollTo(s.scrollX+dx, s.scrollY+dy)
}

// Apply commits a resolved pair, leaving ignored axes untouched.
func (s *Surface) Apply(c Coords) {
	if !c.Horizontal.Ignored() {
		s.scrollX = clamp(c.Horizontal.Px(), 0, s.MaxScroll(AxisHorizontal))
	}
	if !c.Vertical.Ignored() {
		s.scrollY = clamp(c.Vertical.Px(), 0, s.MaxScroll(AxisVertical))
	}
}

// clamp restricts v to the range [minVal, maxVal].
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
