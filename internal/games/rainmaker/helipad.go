package rainmaker

import (
	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// Helipad is the fixed landing pad: a circle inside a square border.
type Helipad struct {
	position core.Vector
	radius   float64
	border   float64
}

// NewHelipad creates the pad from config.
func NewHelipad(cfg config.HelipadConfig) Helipad {
	return Helipad{
		position: core.NewVector(cfg.X, cfg.Y),
		radius:   cfg.Radius,
		border:   cfg.Border,
	}
}

// Bounds returns the box including the border.
func (p Helipad) Bounds() core.Bounds {
	side := 2 * (p.radius + p.border)
	return core.BoundsAround(p.position, side, side)
}

// Outlines returns the pad circle in world space.
func (p Helipad) Outlines() []shape.Placed {
	return []shape.Placed{shape.Circle(p.radius).Place(p.position, 0)}
}

func (p Helipad) Position() core.Vector { return p.position }
func (p Helipad) Radius() float64       { return p.radius }
