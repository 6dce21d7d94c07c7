package shape

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/rainmaker/internal/core"
)

func TestRectanglePlaceBounds(t *testing.T) {
	r := Rectangle(40, 60).Place(core.NewVector(100, 200), 0)
	b := r.Bounds()

	if b.MinX != 80 || b.MaxX != 120 || b.MinY != 170 || b.MaxY != 230 {
		t.Errorf("Bounds() = %+v", b)
	}
}

func TestRectangleRotation(t *testing.T) {
	r := Rectangle(40, 60).Place(core.NewVector(0, 0), math.Pi/2)
	b := r.Bounds()

	if math.Abs(b.Width()-60) > 1e-9 || math.Abs(b.Height()-40) > 1e-9 {
		t.Errorf("rotated size = %vx%v, expected 60x40", b.Width(), b.Height())
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Placed
		expected bool
	}{
		{
			name:     "overlapping rectangles",
			a:        Rectangle(10, 10).Place(core.NewVector(0, 0), 0),
			b:        Rectangle(10, 10).Place(core.NewVector(5, 5), 0),
			expected: true,
		},
		{
			name:     "separate rectangles",
			a:        Rectangle(10, 10).Place(core.NewVector(0, 0), 0),
			b:        Rectangle(10, 10).Place(core.NewVector(50, 0), 0),
			expected: false,
		},
		{
			name:     "circles apart but bounding boxes overlap",
			a:        Circle(10).Place(core.NewVector(0, 0), 0),
			b:        Circle(10).Place(core.NewVector(16, 16), 0),
			expected: false,
		},
		{
			name:     "circles overlapping",
			a:        Circle(10).Place(core.NewVector(0, 0), 0),
			b:        Circle(10).Place(core.NewVector(12, 0), 0),
			expected: true,
		},
		{
			name:     "rectangle inside circle",
			a:        Circle(50).Place(core.NewVector(0, 0), 0),
			b:        Rectangle(4, 4).Place(core.NewVector(3, 3), 0),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := Intersects([]Placed{tc.b}, []Placed{tc.a}); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIntersectsAnyPair(t *testing.T) {
	origin := core.NewVector(0, 0)
	a := []Placed{
		Rectangle(2, 2).Place(origin, 0),
		Rectangle(2, 2).Place(core.NewVector(100, 100), 0),
	}
	b := []Placed{Circle(5).Place(core.NewVector(100, 103), 0)}

	if !Intersects(a, b) {
		t.Error("second outline overlaps, expected intersection")
	}
	if Intersects(a, nil) {
		t.Error("empty outline set should never intersect")
	}
}

func TestCloudOutlineEnclosesEllipse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	o := CloudOutline(rng, DefaultCloudParams(55, 35))
	b := o.Bounds()

	// The anchor at 0 degrees is (0, ry); the others spread around the ellipse.
	if b.MaxY < 35 || b.MaxX < 40 || b.MinX > -40 || b.MinY > -25 {
		t.Errorf("cloud bounds %+v should roughly cover the base ellipse", b)
	}
	// Control points sit at most OffsetMax outside the ellipse.
	if b.MaxX > 55+20 || b.MaxY > 35+20 {
		t.Errorf("cloud bounds %+v bulge further than the control offset", b)
	}
	if len(o.Points()) < 5*curveSamples {
		t.Errorf("expected at least 5 curves, got %d points", len(o.Points()))
	}
}

func TestCloudOutlinesFormValidPolygons(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := range 2000 {
		rx := 50 + rng.Float64()*10
		ry := 30 + rng.Float64()*10
		placed := CloudOutline(rng, DefaultCloudParams(rx, ry)).Place(core.NewVector(400, 400), 0)
		if _, err := placed.Geometry(); err != nil {
			t.Fatalf("cloud %d (rx=%.1f ry=%.1f): %v", i, rx, ry, err)
		}
	}
}

func TestDegenerateOutlineOverlapsNothing(t *testing.T) {
	line := Outline{points: []core.Vector{core.NewVector(-10, 0), core.NewVector(10, 0)}}.
		Place(core.NewVector(0, 0), 0)
	if _, err := line.Geometry(); err == nil {
		t.Error("Geometry() of a two-point outline should fail")
	}

	square := Rectangle(40, 40).Place(core.NewVector(0, 0), 0)
	if line.Overlaps(square) || square.Overlaps(line) {
		t.Error("an outline without area should not overlap")
	}
}

func TestCloudOutlineDeterministic(t *testing.T) {
	a := CloudOutline(rand.New(rand.NewSource(7)), DefaultCloudParams(50, 30)).Points()
	b := CloudOutline(rand.New(rand.NewSource(7)), DefaultCloudParams(50, 30)).Points()

	if len(a) != len(b) {
		t.Fatalf("point count differs: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestBoundsOf(t *testing.T) {
	ps := []Placed{
		Rectangle(10, 10).Place(core.NewVector(0, 0), 0),
		Rectangle(10, 10).Place(core.NewVector(20, 30), 0),
	}
	b := BoundsOf(ps)

	if b.MinX != -5 || b.MinY != -5 || b.MaxX != 25 || b.MaxY != 35 {
		t.Errorf("BoundsOf() = %+v", b)
	}
	if BoundsOf(nil) != (core.Bounds{}) {
		t.Error("BoundsOf(nil) should be the zero box")
	}
}

func TestContainsPoint(t *testing.T) {
	r := Rectangle(10, 10).Place(core.NewVector(0, 0), 0)
	c := Circle(10).Place(core.NewVector(100, 100), 0)

	tests := []struct {
		name     string
		p        Placed
		pt       core.Vector
		expected bool
	}{
		{"rectangle center", r, core.NewVector(0, 0), true},
		{"rectangle near corner", r, core.NewVector(4.9, -4.9), true},
		{"rectangle outside", r, core.NewVector(6, 0), false},
		{"circle center", c, core.NewVector(100, 100), true},
		{"circle bounding box corner", c, core.NewVector(109, 109), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.ContainsPoint(tc.pt); got != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tc.pt, got, tc.expected)
			}
		})
	}
}
