package rainmaker

import (
	"math/rand"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// maxSaturation is the saturation percentage cap.
const maxSaturation = 100

// Cloud is a drifting cloud that can be seeded until it rains.
type Cloud struct {
	Transient

	id            int
	saturation    int
	rainThreshold int
	speedOffset   float64
	outline       shape.Outline
}

// newCloud builds a cloud with an irregular outline centered on pos.
func newCloud(id int, pos core.Vector, outline shape.Outline, speedOffset float64, rainThreshold int) *Cloud {
	b := outline.Bounds()
	return &Cloud{
		Transient:     newTransient(pos, b.Width(), b.Height()),
		id:            id,
		rainThreshold: rainThreshold,
		speedOffset:   speedOffset,
		outline:       outline,
	}
}

// randomCloud creates a cloud either somewhere on screen or just off the
// upwind edge so the wind carries it in.
func randomCloud(rng *rand.Rand, id int, cfg config.CloudsConfig, world core.Bounds, wind *Wind, onScreen bool) *Cloud {
	rx := uniform(rng, cfg.RadiusXMin, cfg.RadiusXMax)
	ry := uniform(rng, cfg.RadiusYMin, cfg.RadiusYMax)
	outline := shape.CloudOutline(rng, shape.DefaultCloudParams(rx, ry))

	// Place by the outline's extent, which bulges past the base ellipse, so
	// an on-screen cloud is fully in view.
	b := outline.Bounds()
	hw, hh := b.Width()/2, b.Height()/2

	var x float64
	switch {
	case onScreen:
		x = uniform(rng, world.MinX+hw, world.MaxX-hw)
	case wind.BlowsWest():
		x = world.MaxX + hw + cfg.SpawnMargin
	default:
		x = world.MinX - hw - cfg.SpawnMargin
	}
	y := uniform(rng, world.MinY+hh, world.MaxY-hh)

	offset := uniform(rng, cfg.SpeedOffsetMin, cfg.SpeedOffsetMax)
	return newCloud(id, core.NewVector(x, y), outline, offset, cfg.RainThreshold)
}

// Saturate adds one percent of saturation, up to 100. It reports whether
// saturation changed.
func (c *Cloud) Saturate() bool {
	if c.saturation >= maxSaturation {
		return false
	}
	c.saturation++
	return true
}

// Rain removes one percent of saturation, down to 0.
func (c *Cloud) Rain() {
	if c.saturation <= 0 {
		return
	}
	c.saturation--
}

// IsRaining reports whether saturation has reached the rain threshold.
func (c *Cloud) IsRaining() bool {
	return c.saturation >= c.rainThreshold
}

// update drifts the cloud with the wind.
func (c *Cloud) update(dt float64, wind *Wind, world core.Bounds) {
	v := core.NewPolarVector(wind.Speed()*c.speedOffset, core.Radians(wind.Direction()))
	c.advance(dt, v, world)
}

// Outlines returns the cloud outline in world space.
func (c *Cloud) Outlines() []shape.Placed {
	return []shape.Placed{c.outline.Place(c.position, 0)}
}

// Bounds returns the world-space box of the outline.
func (c *Cloud) Bounds() core.Bounds {
	return c.outline.Place(c.position, 0).Bounds()
}

func (c *Cloud) ID() int              { return c.id }
func (c *Cloud) Saturation() int      { return c.saturation }
func (c *Cloud) SpeedOffset() float64 { return c.speedOffset }

// uniform returns a random value in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// flipCoin returns true half of the time.
func flipCoin(rng *rand.Rand) bool {
	return rng.Intn(2) == 0
}
