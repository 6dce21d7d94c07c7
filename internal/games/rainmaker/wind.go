package rainmaker

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
)

// Wind pushes clouds. A variable wind picks a new speed after a random
// interval; a constant wind never changes.
type Wind struct {
	direction float64
	speed     float64
	elapsed   float64
	nextAt    float64

	cfg config.WindConfig
	rng *rand.Rand
}

// NewWind creates the wind for a round.
func NewWind(rng *rand.Rand, cfg config.WindConfig) *Wind {
	w := &Wind{direction: cfg.Direction, cfg: cfg, rng: rng}
	if cfg.Variable {
		w.speed = uniform(rng, cfg.MinSpeed, cfg.MaxSpeed)
		w.nextAt = uniform(rng, cfg.ChangeMin, cfg.ChangeMax)
	} else {
		w.speed = cfg.Speed
	}
	return w
}

// Update advances the change timer. maxSpeed caps the next sampled speed
// and lets difficulty strengthen gusts. It reports whether the speed changed.
func (w *Wind) Update(dt, maxSpeed float64) bool {
	if !w.cfg.Variable {
		return false
	}

	w.elapsed += dt
	if w.elapsed <= w.nextAt {
		return false
	}
	w.elapsed = 0
	w.nextAt = uniform(w.rng, w.cfg.ChangeMin, w.cfg.ChangeMax)
	w.speed = uniform(w.rng, w.cfg.MinSpeed, math.Max(w.cfg.MinSpeed, maxSpeed))
	return true
}

// Speed returns the current wind speed.
func (w *Wind) Speed() float64 { return w.speed }

// Direction returns the direction the wind blows towards, in degrees.
func (w *Wind) Direction() float64 { return w.direction }

// BlowsWest reports whether the wind carries clouds towards -x.
func (w *Wind) BlowsWest() bool {
	return math.Cos(core.Radians(w.direction)) < 0
}
