// Package core provides fundamental types and utilities for the rainmaker game.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Bounds is a world-space axis-aligned bounding box.
// It is the cheap filter used before precise outline tests.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// BoundsAround returns the box of the given size centered on c.
func BoundsAround(c Vector, w, h float64) Bounds {
	return Bounds{
		MinX: c.X() - w/2,
		MinY: c.Y() - h/2,
		MaxX: c.X() + w/2,
		MaxY: c.Y() + h/2,
	}
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the vertical extent.
func (b Bounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the midpoint of the box.
func (b Bounds) Center() Vector {
	return NewVector((b.MinX+b.MaxX)/2, (b.MinY+b.MaxY)/2)
}

// Intersects reports whether the two boxes overlap.
// Touching edges do not count as overlap.
func (b Bounds) Intersects(other Bounds) bool {
	if b.MinX >= other.MaxX || other.MinX >= b.MaxX {
		return false
	}
	if b.MinY >= other.MaxY || other.MinY >= b.MaxY {
		return false
	}
	return true
}

// Contains reports whether other lies entirely inside b (edges inclusive).
func (b Bounds) Contains(other Bounds) bool {
	return other.MinX >= b.MinX && other.MaxX <= b.MaxX &&
		other.MinY >= b.MinY && other.MaxY <= b.MaxY
}

// ContainsPoint reports whether p is inside b (edges inclusive).
func (b Bounds) ContainsPoint(p Vector) bool {
	return p.X() >= b.MinX && p.X() <= b.MaxX && p.Y() >= b.MinY && p.Y() <= b.MaxY
}

// Expand grows the box by d on every side.
func (b Bounds) Expand(d float64) Bounds {
	return Bounds{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

// CenterDistance returns the Euclidean distance between two box centers.
func CenterDistance(a, b Bounds) float64 {
	return a.Center().DistanceTo(b.Center())
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round rounds value to the given number of decimal places.
func Round(value float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(value*scale) / scale
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// NormalizeDegrees maps an angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngleDiff returns the smallest absolute difference between two angles in degrees.
func AngleDiff(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
