package core

import (
	"math"
	"testing"
)

func TestBoundsIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Bounds
		expected bool
	}{
		{
			name:     "overlapping boxes",
			a:        Bounds{0, 0, 10, 10},
			b:        Bounds{5, 5, 15, 15},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Bounds{0, 0, 10, 10},
			b:        Bounds{15, 0, 25, 10},
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        Bounds{0, 0, 10, 10},
			b:        Bounds{0, 15, 10, 25},
			expected: false,
		},
		{
			name:     "touching edges (no overlap)",
			a:        Bounds{0, 0, 10, 10},
			b:        Bounds{10, 0, 20, 10},
			expected: false,
		},
		{
			name:     "contained box",
			a:        Bounds{0, 0, 20, 20},
			b:        Bounds{5, 5, 10, 10},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsContains(t *testing.T) {
	pad := BoundsAround(NewVector(400, 100), 134, 134)

	tests := []struct {
		name     string
		inner    Bounds
		expected bool
	}{
		{"centered", BoundsAround(NewVector(400, 100), 80, 80), true},
		{"shifted but inside", BoundsAround(NewVector(420, 90), 80, 80), true},
		{"sticking out", BoundsAround(NewVector(440, 100), 80, 80), false},
		{"larger than pad", BoundsAround(NewVector(400, 100), 200, 200), false},
		{"same box", pad, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pad.Contains(tc.inner); got != tc.expected {
				t.Errorf("Contains() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestBoundsAround(t *testing.T) {
	b := BoundsAround(NewVector(10, 20), 6, 4)

	if b.MinX != 7 || b.MaxX != 13 || b.MinY != 18 || b.MaxY != 22 {
		t.Errorf("BoundsAround() = %+v", b)
	}
	if b.Width() != 6 || b.Height() != 4 {
		t.Errorf("size = %vx%v, expected 6x4", b.Width(), b.Height())
	}
	c := b.Center()
	if c.X() != 10 || c.Y() != 20 {
		t.Errorf("Center() = %v, expected (10, 20)", c)
	}
}

func TestCenterDistance(t *testing.T) {
	a := BoundsAround(NewVector(0, 0), 10, 10)
	b := BoundsAround(NewVector(3, 4), 50, 2)

	if d := CenterDistance(a, b); math.Abs(d-5) > 1e-9 {
		t.Errorf("CenterDistance() = %v, expected 5", d)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		value     float64
		precision int
		expected  float64
	}{
		{0.1 + 0.2, 1, 0.3},
		{1.96, 1, 2.0},
		{-1.94, 1, -1.9},
		{3.14159, 2, 3.14},
		{7, 0, 7},
	}

	for _, tc := range tests {
		if got := Round(tc.value, tc.precision); got != tc.expected {
			t.Errorf("Round(%v, %d) = %v, expected %v", tc.value, tc.precision, got, tc.expected)
		}
	}
}

func TestAngleDiff(t *testing.T) {
	tests := []struct {
		a, b, expected float64
	}{
		{0, 10, 10},
		{350, 10, 20},
		{10, 350, 20},
		{-10, 10, 20},
		{90, 270, 180},
		{720, 0, 0},
	}

	for _, tc := range tests {
		if got := AngleDiff(tc.a, tc.b); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("AngleDiff(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}
