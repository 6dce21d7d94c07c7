package rainmaker

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// Blimp is a slow airship carrying fuel the helicopter can siphon in flight.
type Blimp struct {
	Transient

	id        int
	speed     float64
	heading   float64 // math degrees, 0 moves towards +x
	fuel      float64
	refueling bool
	body      shape.Outline
}

// randomBlimp creates a blimp just off the left edge heading right.
func randomBlimp(rng *rand.Rand, id int, cfg config.BlimpsConfig, world core.Bounds) *Blimp {
	fuel := uniform(rng, cfg.FuelMin, cfg.FuelMax)
	if cfg.FuelGranularity > 0 {
		fuel = math.Round(fuel/cfg.FuelGranularity) * cfg.FuelGranularity
	}

	x := world.MinX - (cfg.BodyWidth + cfg.PropellerWidth)
	y := uniform(rng, world.MinY+cfg.BodyHeight/2, world.MaxY-cfg.BodyHeight/2)

	return &Blimp{
		Transient: newTransient(core.NewVector(x, y), cfg.BodyWidth, cfg.BodyHeight),
		id:        id,
		speed:     uniform(rng, cfg.SpeedMin, cfg.SpeedMax),
		heading:   0,
		fuel:      fuel,
		body:      shape.Rectangle(cfg.BodyWidth, cfg.BodyHeight),
	}
}

// SiphonFuel removes up to amount of fuel and returns what was removed.
func (b *Blimp) SiphonFuel(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if b.fuel < amount {
		amount = b.fuel
	}
	b.fuel -= amount
	return amount
}

// SetRefueling marks whether the helicopter is currently siphoning.
func (b *Blimp) SetRefueling(on bool) {
	b.refueling = on
}

func (b *Blimp) update(dt, speedMultiplier float64, world core.Bounds) {
	v := core.NewPolarVector(b.speed*speedMultiplier, core.Radians(b.heading))
	b.advance(dt, v, world)
}

// Outlines returns the body in world space.
func (b *Blimp) Outlines() []shape.Placed {
	return []shape.Placed{b.body.Place(b.position, 0)}
}

// Bounds returns the body box.
func (b *Blimp) Bounds() core.Bounds {
	return core.BoundsAround(b.position, b.width, b.height)
}

func (b *Blimp) ID() int          { return b.id }
func (b *Blimp) Speed() float64   { return b.speed }
func (b *Blimp) Heading() float64 { return b.heading }
func (b *Blimp) Fuel() float64    { return b.fuel }
func (b *Blimp) Refueling() bool  { return b.refueling }
