package rainmaker

import "math"

// FlightState is the helicopter's engine state.
type FlightState int

const (
	StateOff FlightState = iota
	StateStarting
	StateReady
	StateStopping
)

// String returns the label shown to the player.
func (s FlightState) String() string {
	switch s {
	case StateOff:
		return "Off"
	case StateStarting:
		return "Starting"
	case StateReady:
		return "Flying"
	case StateStopping:
		return "Stopping"
	default:
		return "Unknown"
	}
}

// AcceptsControls reports whether speed, heading, and seeding respond.
func (s FlightState) AcceptsControls() bool {
	return s == StateReady
}

// FuelBurn returns fuel consumed per second in this state.
func (s FlightState) FuelBurn(speed, hoverRate float64) float64 {
	switch s {
	case StateStarting:
		return hoverRate
	case StateReady:
		return hoverRate + math.Abs(speed)*hoverRate
	default:
		return 0
	}
}

// FlightInput is a stimulus to the flight state machine.
type FlightInput int

const (
	InputIgnition FlightInput = iota
	InputBladeAtMax
	InputBladeStopped
	InputFuelEmpty
)

// FlightEffect is a side effect the helicopter must carry out after a transition.
type FlightEffect int

const (
	EffectSpinUp FlightEffect = iota
	EffectSpinDown
	EffectCrash
	EffectFlying
	EffectLanded
)

// FlightContext carries the helicopter facts some transitions depend on.
type FlightContext struct {
	Speed        float64
	Fuel         float64
	OverHelipad  bool
	LandingSpeed float64
}

// Transition is the complete flight state table. Inputs a state does not
// handle leave it unchanged with no effects. An empty tank cannot be started.
func Transition(s FlightState, in FlightInput, ctx FlightContext) (FlightState, []FlightEffect) {
	switch s {
	case StateOff:
		if in == InputIgnition && ctx.Fuel > 0 {
			return StateStarting, []FlightEffect{EffectSpinUp}
		}

	case StateStarting:
		switch in {
		case InputIgnition:
			return StateStopping, []FlightEffect{EffectSpinDown}
		case InputBladeAtMax:
			return StateReady, []FlightEffect{EffectFlying}
		case InputFuelEmpty:
			return StateStopping, []FlightEffect{EffectSpinDown, EffectCrash}
		}

	case StateReady:
		switch in {
		case InputIgnition:
			if math.Abs(ctx.Speed) < ctx.LandingSpeed && ctx.OverHelipad {
				return StateStopping, []FlightEffect{EffectSpinDown}
			}
		case InputFuelEmpty:
			return StateStopping, []FlightEffect{EffectSpinDown, EffectCrash}
		}

	case StateStopping:
		switch in {
		case InputIgnition:
			if ctx.Fuel > 0 {
				return StateStarting, []FlightEffect{EffectSpinUp}
			}
		case InputBladeStopped:
			return StateOff, []FlightEffect{EffectLanded}
		}
	}
	return s, nil
}
