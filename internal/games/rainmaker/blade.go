package rainmaker

import (
	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
)

// BladeRamp is the direction the rotor speed is moving in.
type BladeRamp int

const (
	BladeIdle BladeRamp = iota
	BladeSpinningUp
	BladeSpinningDown
)

// BladeSignal reports a ramp completing during an update.
type BladeSignal int

const (
	BladeNoSignal BladeSignal = iota
	BladeAtMax
	BladeStopped
)

// Blade models the rotor spin-up and spin-down. Speed is in degrees per
// second and changes by the ramp rate while spinning up or down.
type Blade struct {
	speed float64
	angle float64
	ramp  BladeRamp

	maxSpeed float64
	rampRate float64
}

// NewBlade creates a stopped rotor.
func NewBlade(cfg config.BladeConfig) Blade {
	return Blade{maxSpeed: cfg.MaxSpeed, rampRate: cfg.Ramp}
}

// SpinUp starts accelerating from the current speed.
func (b *Blade) SpinUp() {
	b.ramp = BladeSpinningUp
}

// SpinDown starts decelerating from the current speed.
func (b *Blade) SpinDown() {
	b.ramp = BladeSpinningDown
}

// Update advances the ramp by dt seconds. The returned signal is set on the
// update in which the rotor reaches full speed or comes to rest.
func (b *Blade) Update(dt float64) BladeSignal {
	signal := BladeNoSignal

	switch b.ramp {
	case BladeSpinningUp:
		b.speed += b.rampRate * dt
		if b.speed >= b.maxSpeed {
			b.speed = b.maxSpeed
			b.ramp = BladeIdle
			signal = BladeAtMax
		}
	case BladeSpinningDown:
		b.speed -= b.rampRate * dt
		if b.speed <= 0 {
			b.speed = 0
			b.ramp = BladeIdle
			signal = BladeStopped
		}
	}

	b.angle = core.NormalizeDegrees(b.angle - b.speed*dt)
	return signal
}

// Speed returns the rotational speed in degrees per second.
func (b Blade) Speed() float64 { return b.speed }

// Angle returns the rotor angle in degrees.
func (b Blade) Angle() float64 { return b.angle }

// Ramp returns the current ramp direction.
func (b Blade) Ramp() BladeRamp { return b.ramp }

// Proportion returns speed as a fraction of full speed.
func (b Blade) Proportion() float64 {
	if b.maxSpeed <= 0 {
		return 0
	}
	return b.speed / b.maxSpeed
}
