package scroll

import "testing"

func TestSurface_MaxScroll(t *testing.T) {
	type tc struct {
		contentW, contentH   int
		viewportW, viewportH int
		expectedX, expectedY int
	}

	tests := map[string]tc{
		"content larger than viewport": {
			contentW: 4000, contentH: 6000,
			viewportW: 800, viewportH: 600,
			expectedX: 3200, expectedY: 5400,
		},
		"content fits viewport": {
			contentW: 500, contentH: 400,
			viewportW: 800, viewportH: 600,
			expectedX: 0, expectedY: 0,
		},
		"one axis scrollable": {
			contentW: 800, contentH: 6000,
			viewportW: 800, viewportH: 600,
			expectedX: 0, expectedY: 5400,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSurface(tt.contentW, tt.contentH, tt.viewportW, tt.viewportH)
			if got := s.MaxScroll(AxisHorizontal); got != tt.expectedX {
				t.Errorf("MaxScroll(horizontal) = %d, want %d", got, tt.expectedX)
			}
			if got := s.MaxScroll(AxisVertical); got != tt.expectedY {
				t.Errorf("MaxScroll(vertical) = %d, want %d", got, tt.expectedY)
			}
		})
	}
}

func TestSurface_ScrollTo(t *testing.T) {
	type tc struct {
		x, y                 int
		expectedX, expectedY int
	}

	tests := map[string]tc{
		"within bounds": {
			x: 100, y: 200,
			expectedX: 100, expectedY: 200,
		},
		"clamped to max": {
			x: 9999, y: 9999,
			expectedX: 3200, expectedY: 5400,
		},
		"clamped to zero": {
			x: -10, y: -20,
			expectedX: 0, expectedY: 0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewSurface(4000, 6000, 800, 600)
			s.ScrollTo(tt.x, tt.y)
			if x := s.ScrollPos(AxisHorizontal); x != tt.expectedX {
				t.Errorf("ScrollTo x = %d, want %d", x, tt.expectedX)
			}
			if y := s.ScrollPos(AxisVertical); y != tt.expectedY {
				t.Errorf("ScrollTo y = %d, want %d", y, tt.expectedY)
			}
		})
	}
}

func TestSurface_ScrollBy(t *testing.T) {
	s := NewSurface(4000, 6000, 800, 600)
	s.ScrollTo(100, 100)

	s.ScrollBy(50, -30)
	if x, y := s.ScrollPos(AxisHorizontal), s.ScrollPos(AxisVertical); x != 150 || y != 70 {
		t.Errorf("ScrollBy got (%d, %d), want (150, 70)", x, y)
	}

	s.ScrollBy(-9999, 0)
	if x := s.ScrollPos(AxisHorizontal); x != 0 {
		t.Errorf("ScrollBy underflow x = %d, want 0", x)
	}
}

func TestSurface_Apply(t *testing.T) {
	s := NewSurface(4000, 6000, 800, 600)
	s.ScrollTo(100, 100)

	// Only the vertical slot is set; horizontal must stay put.
	s.Apply(Coords{Vertical: MoveTo(400)})
	if x, y := s.ScrollPos(AxisHorizontal), s.ScrollPos(AxisVertical); x != 100 || y != 400 {
		t.Errorf("Apply got (%d, %d), want (100, 400)", x, y)
	}

	// A full pair moves both, clamped.
	s.Apply(Coords{Horizontal: MoveTo(9999), Vertical: MoveTo(0)})
	if x, y := s.ScrollPos(AxisHorizontal), s.ScrollPos(AxisVertical); x != 3200 || y != 0 {
		t.Errorf("Apply got (%d, %d), want (3200, 0)", x, y)
	}

	// An all-Ignore pair is a no-op.
	s.Apply(Coords{})
	if x, y := s.ScrollPos(AxisHorizontal), s.ScrollPos(AxisVertical); x != 3200 || y != 0 {
		t.Errorf("Apply of empty pair moved surface to (%d, %d)", x, y)
	}
}

func TestSurface_ResolveIntegration(t *testing.T) {
	// End to end: resolve against a surface, apply, resolve again.
	s := NewSurface(4000, 6000, 800, 600)
	q := NewQueue()
	r := New(WithQueue(q))

	settings, err := ResolveOptions(Options{}, TargetValue(Str("50%")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	coords, err := r.Resolve(TargetValue(Str("50%")), s, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Apply(coords)
	if y := s.ScrollPos(AxisVertical); y != 2700 {
		t.Fatalf("after 50%%: y = %d, want 2700", y)
	}

	coords, err = r.Resolve(TargetValue(Str("+=300")), s, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Apply(coords)
	if y := s.ScrollPos(AxisVertical); y != 3000 {
		t.Errorf("after +=300: y = %d, want 3000", y)
	}
}
