package rainmaker

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/rainmaker/internal/config"
)

func newTestHelicopter() *Helicopter {
	cfg := config.DefaultRainMakerConfig()
	h := NewHelicopter(cfg.Helicopter, cfg.Blade, cfg.World.SpeedMultiplier)
	h.SetLandingPad(NewHelipad(cfg.Helipad).Bounds())
	return h
}

// flyUp starts the engine and waits out the blade ramp.
func flyUp(t *testing.T, h *Helicopter) {
	t.Helper()
	if !h.ToggleIgnition() {
		t.Fatal("ignition from Off should start the engine")
	}
	var events []Event
	for i := 0; i < 5; i++ {
		events = append(events, h.Update(1.0)...)
	}
	if h.State() != StateReady {
		t.Fatalf("state after ramp = %v, expected Ready", h.State())
	}
	if countEvents(events, EventFlyingStarted) != 1 {
		t.Fatalf("expected one FlyingStarted event, got %v", events)
	}
}

func isStepMultiple(v float64) bool {
	return math.Abs(v*10-math.Round(v*10)) < 1e-9
}

func TestSpeedStaysClampedAndStepped(t *testing.T) {
	h := newTestHelicopter()
	flyUp(t, h)

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 5000; i++ {
		if rng.Intn(2) == 0 {
			h.SpeedUp()
		} else {
			h.SpeedDown()
		}
		if i%500 == 0 {
			// Long runs in one direction hit the limits.
			for j := 0; j < 200; j++ {
				if i%1000 == 0 {
					h.SpeedUp()
				} else {
					h.SpeedDown()
				}
			}
		}

		s := h.Speed()
		if s < -2 || s > 10 {
			t.Fatalf("speed %v escaped [-2, 10]", s)
		}
		if !isStepMultiple(s) {
			t.Fatalf("speed %v is not a multiple of 0.1", s)
		}
	}
}

func TestSpeedUpTwentyTimes(t *testing.T) {
	h := newTestHelicopter()
	flyUp(t, h)

	for i := 0; i < 20; i++ {
		h.SpeedUp()
	}
	if h.Speed() != 2.0 {
		t.Errorf("Speed() = %v, expected 2.0", h.Speed())
	}
}

func TestControlsIgnoredUnlessFlying(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *Helicopter)
		state FlightState
	}{
		{"off", func(h *Helicopter) {}, StateOff},
		{"starting", func(h *Helicopter) {
			h.ToggleIgnition()
			h.Update(1.0)
		}, StateStarting},
		{"stopping", func(h *Helicopter) {
			h.ToggleIgnition()
			h.Update(2.0)
			h.ToggleIgnition()
		}, StateStopping},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestHelicopter()
			tc.setup(h)
			if h.State() != tc.state {
				t.Fatalf("state = %v, expected %v", h.State(), tc.state)
			}
			c := newCloud(1, h.Position(), cloudOutlineForTest(), 50, 30)

			h.SpeedUp()
			h.SpeedDown()
			h.SpeedUp()
			h.TurnLeft()
			h.TurnLeft()
			h.TurnRight()
			if h.SeedCloud(c) {
				t.Error("SeedCloud should be a no-op")
			}
			if h.Speed() != 0 || h.Heading() != 0 {
				t.Errorf("controls changed speed %v heading %v", h.Speed(), h.Heading())
			}
			if c.Saturation() != 0 {
				t.Errorf("cloud saturation = %d, expected 0", c.Saturation())
			}
			if h.State() != tc.state {
				t.Errorf("controls changed state to %v", h.State())
			}
		})
	}
}

func TestTurningWrapsHeading(t *testing.T) {
	h := newTestHelicopter()
	flyUp(t, h)

	h.TurnLeft()
	if h.Heading() != 359 {
		t.Errorf("Heading() = %v, expected 359", h.Heading())
	}
	h.TurnRight()
	h.TurnRight()
	if h.Heading() != 1 {
		t.Errorf("Heading() = %v, expected 1", h.Heading())
	}
}

func TestHeadingDrivesMovement(t *testing.T) {
	h := newTestHelicopter()
	flyUp(t, h)
	start := h.Position()

	for i := 0; i < 10; i++ {
		h.SpeedUp()
	}
	h.Update(1.0)

	// Heading 0 points up: +y by speed * multiplier * dt.
	if math.Abs(h.Position().X()-start.X()) > 1e-9 {
		t.Errorf("x moved from %v to %v", start.X(), h.Position().X())
	}
	if math.Abs(h.Position().Y()-start.Y()-30) > 1e-9 {
		t.Errorf("y moved %v, expected 30", h.Position().Y()-start.Y())
	}

	for i := 0; i < 90; i++ {
		h.TurnRight()
	}
	before := h.Position()
	h.Update(0.5)
	if math.Abs(h.Position().X()-before.X()-15) > 1e-9 {
		t.Errorf("heading 90 should move +x by 15, moved %v", h.Position().X()-before.X())
	}
}

func TestLandingPrecondition(t *testing.T) {
	h := newTestHelicopter()
	flyUp(t, h)

	for i := 0; i < 20; i++ {
		h.SpeedUp()
	}
	if h.ToggleIgnition() {
		t.Fatal("ignition at speed 2.0 should not stop the engine")
	}
	if h.State() != StateReady {
		t.Fatalf("state = %v, expected Ready", h.State())
	}

	for i := 0; i < 20; i++ {
		h.SpeedDown()
	}
	if h.Speed() != 0 {
		t.Fatalf("Speed() = %v, expected 0", h.Speed())
	}
	if !h.ToggleIgnition() || h.State() != StateStopping {
		t.Fatalf("state = %v, expected Stopping over the pad at rest", h.State())
	}
}

func TestNoLandingAwayFromPad(t *testing.T) {
	h := newTestHelicopter()
	flyUp(t, h)

	h.SpeedUp()
	h.Update(10) // 0.1 * 30 * 10 = 30 units up, partly off the pad box
	h.Update(10)
	h.SpeedDown()

	if h.OverHelipad() {
		t.Fatalf("helicopter at %v should have left the pad", h.Position())
	}
	if h.ToggleIgnition() {
		t.Error("ignition away from the pad should not stop the engine")
	}
}

func TestFuelRunsOutExactlyOnce(t *testing.T) {
	h := newTestHelicopter()
	if h.Fuel() != 25000 {
		t.Fatalf("initial fuel = %v, expected 25000", h.Fuel())
	}
	flyUp(t, h)
	for i := 0; i < 20; i++ {
		h.SpeedUp()
	}

	crashes := 0
	landed := 0
	prevFuel := h.Fuel()
	for i := 0; i < 1000 && h.State() == StateReady; i++ {
		evs := h.Update(1.0)
		crashes += countEvents(evs, EventCrash)
		landed += countEvents(evs, EventLanded)
		if h.Fuel() > prevFuel {
			t.Fatalf("fuel increased from %v to %v without refueling", prevFuel, h.Fuel())
		}
		prevFuel = h.Fuel()
	}

	if h.State() != StateStopping {
		t.Fatalf("state = %v, expected Stopping after fuel ran out", h.State())
	}
	if h.Fuel() != 0 {
		t.Errorf("Fuel() = %v, expected 0", h.Fuel())
	}
	if crashes != 1 {
		t.Fatalf("crash fired %d times, expected 1", crashes)
	}

	for i := 0; i < 10; i++ {
		evs := h.Update(1.0)
		crashes += countEvents(evs, EventCrash)
		landed += countEvents(evs, EventLanded)
	}
	if crashes != 1 {
		t.Errorf("crash fired again while stopping: %d", crashes)
	}
	if h.State() != StateOff {
		t.Errorf("state = %v, expected Off after the rotor stopped", h.State())
	}
	if landed != 1 {
		t.Errorf("landed fired %d times, expected 1", landed)
	}
}

func TestCrashWhileStarting(t *testing.T) {
	cfg := config.DefaultRainMakerConfig()
	cfg.Helicopter.InitialFuel = 60
	h := NewHelicopter(cfg.Helicopter, cfg.Blade, cfg.World.SpeedMultiplier)

	h.ToggleIgnition()
	var events []Event
	for i := 0; i < 3; i++ {
		events = append(events, h.Update(1.0)...)
	}

	if countEvents(events, EventCrash) != 1 {
		t.Fatalf("expected a crash while starting, got %v", events)
	}
	if countEvents(events, EventFlyingStarted) != 0 {
		t.Error("helicopter should never have reached Ready")
	}
	if h.State() != StateStopping {
		t.Errorf("state = %v, expected Stopping", h.State())
	}
}

func TestEmptyTankCannotRestart(t *testing.T) {
	cfg := config.DefaultRainMakerConfig()
	cfg.Helicopter.InitialFuel = 60
	h := NewHelicopter(cfg.Helicopter, cfg.Blade, cfg.World.SpeedMultiplier)

	h.ToggleIgnition()
	var events []Event
	for i := 0; i < 3; i++ {
		events = append(events, h.Update(1.0)...)
	}
	if h.State() != StateStopping || h.Fuel() != 0 {
		t.Fatalf("state = %v fuel = %v, expected Stopping with an empty tank", h.State(), h.Fuel())
	}

	if h.ToggleIgnition() {
		t.Error("ignition while stopping with an empty tank should be refused")
	}
	for i := 0; i < 10; i++ {
		events = append(events, h.Update(1.0)...)
	}
	if h.State() != StateOff {
		t.Fatalf("state = %v, expected Off", h.State())
	}

	if h.ToggleIgnition() {
		t.Error("ignition while off with an empty tank should be refused")
	}
	for i := 0; i < 10; i++ {
		events = append(events, h.Update(1.0)...)
	}

	if n := countEvents(events, EventCrash); n != 1 {
		t.Errorf("crash fired %d times, expected 1", n)
	}
	if n := countEvents(events, EventLanded); n != 1 {
		t.Errorf("landed fired %d times, expected 1", n)
	}

	h.Refuel(100)
	if !h.ToggleIgnition() || h.State() != StateStarting {
		t.Errorf("state = %v, expected Starting once refueled", h.State())
	}
}

func TestAbortAndRestartStart(t *testing.T) {
	h := newTestHelicopter()
	h.ToggleIgnition()
	h.Update(2.0) // blade at 400

	if !h.ToggleIgnition() || h.State() != StateStopping {
		t.Fatalf("state = %v, expected Stopping after abort", h.State())
	}
	h.Update(1.0) // blade at 200

	if !h.ToggleIgnition() || h.State() != StateStarting {
		t.Fatalf("state = %v, expected Starting again", h.State())
	}

	var events []Event
	for i := 0; i < 4; i++ {
		events = append(events, h.Update(1.0)...)
	}
	if h.State() != StateReady {
		t.Errorf("state = %v, expected Ready once the blade caught up", h.State())
	}
	if countEvents(events, EventLanded) != 0 {
		t.Error("aborted stop should not report a landing")
	}
}

func TestRefuelIsUncapped(t *testing.T) {
	h := newTestHelicopter()
	h.Refuel(1000)
	h.Refuel(-50)

	if h.Fuel() != 26000 {
		t.Errorf("Fuel() = %v, expected 26000", h.Fuel())
	}
}
