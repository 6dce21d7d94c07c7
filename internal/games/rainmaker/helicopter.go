package rainmaker

import (
	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// Helicopter is the player's aircraft. All control methods are routed
// through the flight state; controls the state does not accept are no-ops.
type Helicopter struct {
	position core.Vector
	heading  float64 // compass degrees, 0 is up, clockwise positive
	speed    float64
	fuel     float64
	state    FlightState
	blade    Blade

	hoverRate       float64
	speedMultiplier float64
	cfg             config.HelicopterConfig

	body    shape.Outline
	landing core.Bounds
	hasPad  bool
}

// NewHelicopter creates a helicopter at rest at the configured start position.
func NewHelicopter(cfg config.HelicopterConfig, blade config.BladeConfig, speedMultiplier float64) *Helicopter {
	return &Helicopter{
		position:        core.NewVector(cfg.StartX, cfg.StartY),
		fuel:            cfg.InitialFuel,
		state:           StateOff,
		blade:           NewBlade(blade),
		hoverRate:       cfg.HoverFuelRate,
		speedMultiplier: speedMultiplier,
		cfg:             cfg,
		body:            shape.Rectangle(cfg.BodyWidth, cfg.BodyHeight),
	}
}

// SetLandingPad sets the area the helicopter must hover inside to land.
func (h *Helicopter) SetLandingPad(b core.Bounds) {
	h.landing = b
	h.hasPad = true
}

// SetHoverRate overrides the hover fuel rate.
func (h *Helicopter) SetHoverRate(rate float64) {
	h.hoverRate = rate
}

// SpeedUp accelerates by one step, rounded to one decimal and capped at max speed.
func (h *Helicopter) SpeedUp() {
	if !h.state.AcceptsControls() || h.speed >= h.cfg.MaxSpeed {
		return
	}
	h.speed = core.ClampF(core.Round(h.speed+h.cfg.Acceleration, 1), h.cfg.MinSpeed, h.cfg.MaxSpeed)
}

// SpeedDown decelerates by one step, rounded to one decimal and floored at min speed.
func (h *Helicopter) SpeedDown() {
	if !h.state.AcceptsControls() || h.speed <= h.cfg.MinSpeed {
		return
	}
	h.speed = core.ClampF(core.Round(h.speed-h.cfg.Acceleration, 1), h.cfg.MinSpeed, h.cfg.MaxSpeed)
}

// TurnLeft rotates the heading counter-clockwise by one step.
func (h *Helicopter) TurnLeft() {
	if !h.state.AcceptsControls() {
		return
	}
	h.heading = core.NormalizeDegrees(h.heading - h.cfg.TurnStep)
}

// TurnRight rotates the heading clockwise by one step.
func (h *Helicopter) TurnRight() {
	if !h.state.AcceptsControls() {
		return
	}
	h.heading = core.NormalizeDegrees(h.heading + h.cfg.TurnStep)
}

// ToggleIgnition starts or stops the engine. Stopping from flight requires
// hovering over the landing pad at near-zero speed. It reports whether the
// state changed.
func (h *Helicopter) ToggleIgnition() bool {
	before := h.state
	h.apply(InputIgnition)
	return h.state != before
}

// SeedCloud saturates c if the helicopter is flying. The caller is
// responsible for checking that the helicopter overlaps c.
func (h *Helicopter) SeedCloud(c *Cloud) bool {
	if !h.state.AcceptsControls() {
		return false
	}
	return c.Saturate()
}

// Refuel adds fuel without a cap.
func (h *Helicopter) Refuel(amount float64) {
	if amount > 0 {
		h.fuel += amount
	}
}

// Update integrates position, burns fuel, and advances the rotor.
func (h *Helicopter) Update(dt float64) []Event {
	angle := core.Radians(h.CartesianHeading())
	velocity := core.NewPolarVector(h.speed, angle).Multiply(dt * h.speedMultiplier)
	h.position = h.position.Add(velocity)

	var events []Event

	if burn := h.state.FuelBurn(h.speed, h.hoverRate) * dt; burn > 0 {
		h.fuel -= burn
		if h.fuel <= 0 {
			h.fuel = 0
			events = append(events, h.apply(InputFuelEmpty)...)
		}
	}

	switch h.blade.Update(dt) {
	case BladeAtMax:
		events = append(events, h.apply(InputBladeAtMax)...)
	case BladeStopped:
		events = append(events, h.apply(InputBladeStopped)...)
	}
	return events
}

// apply runs one transition and carries out its effects.
func (h *Helicopter) apply(in FlightInput) []Event {
	next, effects := Transition(h.state, in, FlightContext{
		Speed:        h.speed,
		Fuel:         h.fuel,
		OverHelipad:  h.OverHelipad(),
		LandingSpeed: h.cfg.LandingSpeed,
	})
	h.state = next

	var events []Event
	for _, eff := range effects {
		switch eff {
		case EffectSpinUp:
			h.blade.SpinUp()
		case EffectSpinDown:
			h.blade.SpinDown()
		case EffectCrash:
			events = append(events, Event{Kind: EventCrash})
		case EffectFlying:
			events = append(events, Event{Kind: EventFlyingStarted})
		case EffectLanded:
			events = append(events, Event{Kind: EventLanded})
		}
	}
	return events
}

// OverHelipad reports whether the helicopter's box lies inside the pad's box.
func (h *Helicopter) OverHelipad() bool {
	return h.hasPad && h.landing.Contains(h.Bounds())
}

// CartesianHeading converts the compass heading to a math angle in degrees.
func (h *Helicopter) CartesianHeading() float64 {
	return core.NormalizeDegrees(450 - h.heading)
}

// Outlines returns the body outline in world space.
func (h *Helicopter) Outlines() []shape.Placed {
	rotation := core.Radians(h.CartesianHeading() - 90)
	return []shape.Placed{h.body.Place(h.position, rotation)}
}

// Bounds returns the world-space box of the body.
func (h *Helicopter) Bounds() core.Bounds {
	return shape.BoundsOf(h.Outlines())
}

func (h *Helicopter) Position() core.Vector { return h.position }
func (h *Helicopter) Heading() float64      { return h.heading }
func (h *Helicopter) Speed() float64        { return h.speed }
func (h *Helicopter) Fuel() float64         { return h.fuel }
func (h *Helicopter) State() FlightState    { return h.state }
func (h *Helicopter) Blade() Blade          { return h.blade }
