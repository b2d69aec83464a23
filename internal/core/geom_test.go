package core

import "testing"

func TestRectIntersects(t *testing.T) {
	player := RectFromCenter(400, 550, 35, 35)

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"drop on the player", RectFromCenter(410, 540, 18, 35), true},
		{"drop beside the player", RectFromCenter(450, 550, 18, 35), false},
		{"drop above the player", RectFromCenter(400, 480, 18, 35), false},
		{"touching right edge", RectFromCenter(417.5+9, 550, 18, 35), false},
		{"sweeper through the player", RectFromCenter(380, 550, 150, 20), true},
		{"sub-pixel overlap", RectFromCenter(417.5+8.9, 550+17.5+17.4, 18, 35), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(player); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectOverlapsX(t *testing.T) {
	band := RectFromCenter(120, 300, 40, 600)

	if !band.OverlapsX(RectFromCenter(125, 5000, 10, 10)) {
		t.Error("OverlapsX should ignore vertical position")
	}
	if band.OverlapsX(RectFromCenter(145, 300, 10, 10)) {
		t.Error("OverlapsX should treat touching edges as no overlap")
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(50, 40, 20, 10)

	if r.X != 40 || r.Y != 35 {
		t.Errorf("RectFromCenter corner = (%v, %v), expected (40, 35)", r.X, r.Y)
	}
	cx, cy := r.Center()
	if cx != 50 || cy != 40 {
		t.Errorf("Center() = (%v, %v), expected (50, 40)", cx, cy)
	}
	if r.Right() != 60 || r.Bottom() != 45 {
		t.Errorf("edges = (%v, %v), expected (60, 45)", r.Right(), r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		v, lo, hi, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
		{17.5, 17.5, 782.5, 17.5},
	}

	for _, tc := range tests {
		if got := ClampF(tc.v, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.v, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
