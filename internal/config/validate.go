package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is returned when a configuration cannot drive a game.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
func (c RainMakerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0,
		"world size %vx%v must be positive", c.World.Width, c.World.Height)
	check(c.World.SpeedMultiplier > 0, "world.speed_multiplier must be positive")

	h := c.Helicopter
	check(h.MinSpeed <= 0 && h.MaxSpeed > 0,
		"helicopter speed range [%v, %v] must contain zero", h.MinSpeed, h.MaxSpeed)
	check(h.Acceleration > 0, "helicopter.acceleration must be positive")
	check(h.InitialFuel > 0, "helicopter.initial_fuel must be positive")
	check(h.HoverFuelRate >= 0, "helicopter.hover_fuel_rate must not be negative")
	check(h.BodyWidth > 0 && h.BodyHeight > 0, "helicopter body must have a size")

	check(c.Blade.MaxSpeed > 0 && c.Blade.Ramp > 0, "blade max_speed and ramp must be positive")
	check(c.Helipad.Radius > 0, "helipad.radius must be positive")

	cl := c.Clouds
	check(cl.Min >= 0 && cl.Min <= cl.Max, "clouds min %d must be within [0, max %d]", cl.Min, cl.Max)
	check(cl.Max > 0, "clouds.max must be positive")
	check(cl.RainThreshold >= 0 && cl.RainThreshold <= 100, "clouds.rain_threshold must be a percentage")
	check(cl.RainPeriod > 0 && cl.SpawnPeriod > 0, "cloud periods must be positive")
	check(cl.RadiusXMin > 0 && cl.RadiusXMin <= cl.RadiusXMax, "cloud radius_x range is invalid")
	check(cl.RadiusYMin > 0 && cl.RadiusYMin <= cl.RadiusYMax, "cloud radius_y range is invalid")
	check(cl.SpeedOffsetMin <= cl.SpeedOffsetMax, "cloud speed offset range is invalid")

	w := c.Wind
	check(w.MinSpeed >= 0 && w.MinSpeed <= w.MaxSpeed, "wind speed range is invalid")
	check(w.ChangeMin > 0 && w.ChangeMin <= w.ChangeMax, "wind change interval is invalid")

	p := c.Ponds
	check(p.Count > 0, "ponds.count must be positive")
	check(p.WaterMin > 0 && p.WaterMin <= p.WaterMax, "pond water range is invalid")
	check(p.AreaPerUnit > 0, "ponds.area_per_unit must be positive")
	check(p.MaxAttempts > 0, "ponds.max_attempts must be positive")
	// Each pond claims a disc of half the separation; they must fit.
	footprint := float64(p.Count) * math.Pi * math.Pow(p.MinSeparation/2, 2)
	check(footprint < c.World.Width*c.World.Height,
		"%d ponds %v apart cannot fit in the world", p.Count, p.MinSeparation)

	if c.Blimps.Enabled {
		b := c.Blimps
		check(b.Min >= 0 && b.Min <= b.Max, "blimps min %d must be within [0, max %d]", b.Min, b.Max)
		check(b.SpawnPeriod > 0, "blimps.spawn_period must be positive")
		check(b.SpeedMin <= b.SpeedMax, "blimp speed range is invalid")
		check(b.FuelMin >= 0 && b.FuelMin <= b.FuelMax, "blimp fuel range is invalid")
	}

	check(c.Rain.MaxDistanceFactor > 0, "rain.max_distance_factor must be positive")
	check(c.Refuel.Rate >= 0, "refuel.rate must not be negative")
	check(c.Scoring.WinWaterLevel > 0, "scoring.win_water_level must be positive")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
