package core

import (
	"fmt"
	"math"
)

// Vector is an immutable 2D vector. Both the Cartesian and the polar form are
// computed at construction, so reads never recompute trigonometry.
// Angles are radians.
type Vector struct {
	x, y      float64
	magnitude float64
	angle     float64
}

// NewVector builds a vector from Cartesian components.
func NewVector(x, y float64) Vector {
	return Vector{
		x:         x,
		y:         y,
		magnitude: math.Sqrt(x*x + y*y),
		angle:     math.Atan2(y, x),
	}
}

// NewPolarVector builds a vector from a magnitude and an angle in radians.
func NewPolarVector(magnitude, angle float64) Vector {
	return Vector{
		x:         magnitude * math.Cos(angle),
		y:         magnitude * math.Sin(angle),
		magnitude: magnitude,
		angle:     angle,
	}
}

// X returns the horizontal component.
func (v Vector) X() float64 { return v.x }

// Y returns the vertical component.
func (v Vector) Y() float64 { return v.y }

// Magnitude returns the vector length.
func (v Vector) Magnitude() float64 { return v.magnitude }

// Angle returns the direction in radians.
func (v Vector) Angle() float64 { return v.angle }

// Add returns v + o.
func (v Vector) Add(o Vector) Vector {
	return NewVector(v.x+o.x, v.y+o.y)
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	return NewVector(v.x-o.x, v.y-o.y)
}

// Multiply scales both components.
func (v Vector) Multiply(scalar float64) Vector {
	return NewVector(v.x*scalar, v.y*scalar)
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vector) DistanceTo(o Vector) float64 {
	return math.Hypot(v.x-o.x, v.y-o.y)
}

// String implements fmt.Stringer.
func (v Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.x, v.y)
}
