package rainmaker

import (
	"math"

	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// Pond is a fixed body of water that grows as rain falls into it.
type Pond struct {
	id          int
	position    core.Vector
	area        float64
	water       float64
	areaPerUnit float64
}

func newPond(id int, pos core.Vector, water, areaPerUnit float64) *Pond {
	return &Pond{
		id:          id,
		position:    pos,
		area:        water * areaPerUnit,
		water:       water,
		areaPerUnit: areaPerUnit,
	}
}

// AddWater grows the pond. Non-positive amounts are ignored so water and
// area never shrink.
func (p *Pond) AddWater(amount float64) {
	if amount <= 0 {
		return
	}
	p.area += p.areaPerUnit * amount
	p.water += amount
}

// Radius is derived from the current area.
func (p *Pond) Radius() float64 {
	return math.Sqrt(p.area / math.Pi)
}

// Diameter returns twice the radius.
func (p *Pond) Diameter() float64 {
	return 2 * p.Radius()
}

// Outlines returns the pond's circle in world space.
func (p *Pond) Outlines() []shape.Placed {
	return []shape.Placed{shape.Circle(p.Radius()).Place(p.position, 0)}
}

// Bounds returns the box around the pond circle.
func (p *Pond) Bounds() core.Bounds {
	d := p.Diameter()
	return core.BoundsAround(p.position, d, d)
}

func (p *Pond) ID() int               { return p.id }
func (p *Pond) Position() core.Vector { return p.position }
func (p *Pond) Area() float64         { return p.area }
func (p *Pond) WaterLevel() float64   { return p.water }
