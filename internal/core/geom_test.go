package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 5, 5)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{14, 14, true},  // Bottom-right (inside)
		{15, 15, false}, // Just outside
		{12, 12, true},  // Center
		{9, 10, false},  // Left of rect
		{10, 9, false},  // Above rect
	}

	for _, tt := range tests {
		result := r.Contains(tt.x, tt.y)
		if result != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, expected %v", tt.x, tt.y, result, tt.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 25 || cy != 40 {
		t.Errorf("Center() = (%d, %d), expected (25, 40)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},   // Within range
		{-5, 0, 10, 0},  // Below min
		{15, 0, 10, 10}, // Above max
		{0, 0, 10, 0},   // At min
		{10, 0, 10, 10}, // At max
	}

	for _, tt := range tests {
		result := Clamp(tt.val, tt.lo, tt.hi)
		if result != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, result, tt.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if ClampF(1.5, 0, 1) != 1 {
		t.Error("ClampF should clamp above max")
	}
	if ClampF(-0.5, 0, 1) != 0 {
		t.Error("ClampF should clamp below min")
	}
	if ClampF(0.25, 0, 1) != 0.25 {
		t.Error("ClampF should keep values in range")
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0.4, 0},
		{0.5, 1},
		{2.6, 3},
		{-0.6, -1},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"contained", NewRect(0, 0, 10, 10), NewRect(2, 3, 4, 4), NewRect(2, 3, 4, 4)},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(5, 5, 2, 2), Rect{}},
		{"touching edge", NewRect(0, 0, 2, 2), NewRect(2, 0, 2, 2), Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}
			if got.Empty() != (tt.want == Rect{}) {
				t.Errorf("Empty = %v for %+v", got.Empty(), got)
			}
		})
	}
}
