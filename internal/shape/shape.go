// Package shape provides the precise outlines entities use for overlap tests.
// An Outline is defined in local coordinates around the entity's origin and is
// placed into world space with Place before testing. Overlap is decided by
// simplefeatures after a cheap bounding-box rejection.
package shape

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/vovakirdan/rainmaker/internal/core"
)

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 32

// curveSamples is the number of points sampled per quadratic curve.
const curveSamples = 6

// Outline is a closed polygon in local coordinates.
type Outline struct {
	points []core.Vector
}

// Points returns a copy of the outline vertices.
func (o Outline) Points() []core.Vector {
	out := make([]core.Vector, len(o.points))
	copy(out, o.points)
	return out
}

// Bounds returns the local bounding box of the outline.
func (o Outline) Bounds() core.Bounds {
	return boundsOf(o.points)
}

// Circle returns a polygon approximation of a circle of radius r.
func Circle(r float64) Outline {
	return Ellipse(r, r)
}

// Ellipse returns a polygon approximation of an axis-aligned ellipse.
func Ellipse(rx, ry float64) Outline {
	pts := make([]core.Vector, 0, circleSegments)
	for i := 0; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts = append(pts, core.NewVector(rx*math.Cos(a), ry*math.Sin(a)))
	}
	return Outline{points: pts}
}

// Rectangle returns a w by h rectangle centered on the origin.
func Rectangle(w, h float64) Outline {
	return Outline{points: []core.Vector{
		core.NewVector(-w/2, -h/2),
		core.NewVector(w/2, -h/2),
		core.NewVector(w/2, h/2),
		core.NewVector(-w/2, h/2),
	}}
}

// CloudParams controls the irregular cloud outline.
type CloudParams struct {
	RadiusX, RadiusY float64
	// Angular step between perimeter anchors, in whole degrees.
	StepMin, StepMax int
	// How far curve control points are pushed outside the ellipse.
	OffsetMin, OffsetMax int
}

// DefaultCloudParams returns the bumpy-cloud settings for an ellipse.
func DefaultCloudParams(rx, ry float64) CloudParams {
	return CloudParams{
		RadiusX:   rx,
		RadiusY:   ry,
		StepMin:   60,
		StepMax:   72,
		OffsetMin: 10,
		OffsetMax: 20,
	}
}

// CloudOutline builds an irregular, bulging oval. Anchors are taken on the
// ellipse at random angular steps; consecutive anchors are joined by quadratic
// curves whose control point lies outside the ellipse. The curves are sampled
// into a single polygon.
func CloudOutline(rng *rand.Rand, p CloudParams) Outline {
	if p.StepMin <= 0 {
		p.StepMin = 1
	}
	if p.StepMax < p.StepMin {
		p.StepMax = p.StepMin
	}
	if p.OffsetMax < p.OffsetMin {
		p.OffsetMax = p.OffsetMin
	}

	anchor := func(deg float64) core.Vector {
		rad := core.Radians(deg)
		return core.NewVector(p.RadiusX*math.Sin(rad), p.RadiusY*math.Cos(rad))
	}

	var pts []core.Vector
	prevAngle := 0
	prev := anchor(0)
	for prevAngle < 360 {
		angle := prevAngle + p.StepMin + rng.Intn(p.StepMax-p.StepMin+1)
		if angle > 360 {
			angle = 360
		}
		next := anchor(float64(angle))

		ctrlAngle := core.Radians(float64(prevAngle) + rng.Float64()*float64(angle-prevAngle))
		offset := float64(p.OffsetMin + rng.Intn(p.OffsetMax-p.OffsetMin+1))
		ctrl := core.NewVector(
			(p.RadiusX+offset)*math.Sin(ctrlAngle),
			(p.RadiusY+offset)*math.Cos(ctrlAngle),
		)

		// The end point of each curve is the start of the next one.
		for i := 0; i < curveSamples; i++ {
			pts = append(pts, quadPoint(prev, ctrl, next, float64(i)/curveSamples))
		}

		prev = next
		prevAngle = angle
	}
	return Outline{points: pts}
}

func quadPoint(p0, c, p1 core.Vector, t float64) core.Vector {
	u := 1 - t
	return core.NewVector(
		u*u*p0.X()+2*u*t*c.X()+t*t*p1.X(),
		u*u*p0.Y()+2*u*t*c.Y()+t*t*p1.Y(),
	)
}

// Placed is an outline positioned in world space.
type Placed struct {
	points []core.Vector
	bounds core.Bounds
}

// Place rotates the outline by rotation radians around its origin and
// translates it to pos.
func (o Outline) Place(pos core.Vector, rotation float64) Placed {
	sin, cos := math.Sincos(rotation)
	pts := make([]core.Vector, len(o.points))
	for i, p := range o.points {
		x := p.X()*cos - p.Y()*sin
		y := p.X()*sin + p.Y()*cos
		pts[i] = core.NewVector(pos.X()+x, pos.Y()+y)
	}
	return Placed{points: pts, bounds: boundsOf(pts)}
}

// Bounds returns the world-space bounding box.
func (p Placed) Bounds() core.Bounds {
	return p.bounds
}

// Points returns the world-space vertices.
func (p Placed) Points() []core.Vector {
	return p.points
}

// Geometry converts the placed outline into a simplefeatures polygon. It
// fails when the ring is degenerate or self-intersecting.
func (p Placed) Geometry() (geom.Geometry, error) {
	if len(p.points) < 3 {
		return geom.Geometry{}, fmt.Errorf("shape: outline has %d points, need 3", len(p.points))
	}
	flat := make([]float64, 0, 2*len(p.points)+2)
	for _, v := range p.points {
		flat = append(flat, v.X(), v.Y())
	}
	flat = append(flat, p.points[0].X(), p.points[0].Y())

	ring, err := geom.NewLineString(geom.NewSequence(flat, geom.DimXY))
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("shape: invalid ring: %w", err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("shape: invalid polygon: %w", err)
	}
	return poly.AsGeometry(), nil
}

// Overlaps reports whether two placed outlines share any area. An outline
// that cannot form a valid polygon overlaps nothing.
func (p Placed) Overlaps(other Placed) bool {
	if !p.bounds.Intersects(other.bounds) {
		return false
	}
	a, err := p.Geometry()
	if err != nil {
		return false
	}
	b, err := other.Geometry()
	if err != nil {
		return false
	}
	return geom.Intersects(a, b)
}

// Intersects reports whether any outline of a overlaps any outline of b.
func Intersects(a, b []Placed) bool {
	for _, pa := range a {
		for _, pb := range b {
			if pa.Overlaps(pb) {
				return true
			}
		}
	}
	return false
}

// BoundsOf returns the box enclosing every placed outline.
func BoundsOf(ps []Placed) core.Bounds {
	if len(ps) == 0 {
		return core.Bounds{}
	}
	b := ps[0].bounds
	for _, p := range ps[1:] {
		b.MinX = math.Min(b.MinX, p.bounds.MinX)
		b.MinY = math.Min(b.MinY, p.bounds.MinY)
		b.MaxX = math.Max(b.MaxX, p.bounds.MaxX)
		b.MaxY = math.Max(b.MaxY, p.bounds.MaxY)
	}
	return b
}

func boundsOf(pts []core.Vector) core.Bounds {
	if len(pts) == 0 {
		return core.Bounds{}
	}
	b := core.Bounds{MinX: pts[0].X(), MinY: pts[0].Y(), MaxX: pts[0].X(), MaxY: pts[0].Y()}
	for _, v := range pts[1:] {
		b.MinX = math.Min(b.MinX, v.X())
		b.MinY = math.Min(b.MinY, v.Y())
		b.MaxX = math.Max(b.MaxX, v.X())
		b.MaxY = math.Max(b.MaxY, v.Y())
	}
	return b
}

// ContainsPoint reports whether v lies inside the placed outline using the
// even-odd rule. It is used for rasterizing, where building a geometry per
// sample would be wasteful.
func (p Placed) ContainsPoint(v core.Vector) bool {
	if !p.bounds.ContainsPoint(v) {
		return false
	}
	inside := false
	n := len(p.points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.points[i], p.points[j]
		if (a.Y() > v.Y()) != (b.Y() > v.Y()) {
			x := (b.X()-a.X())*(v.Y()-a.Y())/(b.Y()-a.Y()) + a.X()
			if v.X() < x {
				inside = !inside
			}
		}
	}
	return inside
}
