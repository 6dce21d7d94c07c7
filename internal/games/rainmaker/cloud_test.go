package rainmaker

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

func cloudOutlineForTest() shape.Outline {
	return shape.Ellipse(50, 30)
}

func testWorldBounds() core.Bounds {
	return core.Bounds{MaxX: 800, MaxY: 800}
}

func TestSaturationBounds(t *testing.T) {
	c := newCloud(1, core.NewVector(400, 400), cloudOutlineForTest(), 1, 30)

	c.Rain()
	if c.Saturation() != 0 {
		t.Fatalf("Saturation() = %d after rain on a dry cloud", c.Saturation())
	}

	for i := 0; i < 150; i++ {
		c.Saturate()
	}
	if c.Saturation() != 100 {
		t.Fatalf("Saturation() = %d, expected cap of 100", c.Saturation())
	}
	if c.Saturate() {
		t.Error("Saturate() at the cap should report no change")
	}
}

func TestRainThreshold(t *testing.T) {
	c := newCloud(1, core.NewVector(400, 400), cloudOutlineForTest(), 1, 30)

	for i := 0; i < 29; i++ {
		c.Saturate()
	}
	if c.IsRaining() {
		t.Error("cloud at 29% should not rain")
	}
	c.Saturate()
	if !c.IsRaining() {
		t.Error("cloud at 30% should rain")
	}
}

func TestTransientLifecycleOrder(t *testing.T) {
	world := testWorldBounds()
	tr := newTransient(core.NewVector(-80, 400), 100, 60)
	velocity := core.NewVector(20, 0)

	var seen []Lifecycle
	for i := 0; i < 200 && !tr.IsDead(); i++ {
		tr.advance(1.0, velocity, world)
		if len(seen) == 0 || seen[len(seen)-1] != tr.Lifecycle() {
			seen = append(seen, tr.Lifecycle())
		}
		if tr.IsDead() && tr.Position().X() <= world.MaxX+50 {
			t.Fatalf("died at x=%v before clearing the right edge", tr.Position().X())
		}
	}

	expected := []Lifecycle{LifecycleCreated, LifecycleInView, LifecycleDead}
	if len(seen) != len(expected) {
		t.Fatalf("lifecycle sequence = %v, expected %v", seen, expected)
	}
	for i := range expected {
		if seen[i] != expected[i] {
			t.Fatalf("lifecycle sequence = %v, expected %v", seen, expected)
		}
	}

	pos := tr.Position()
	tr.advance(1.0, velocity, world)
	if tr.Position() != pos {
		t.Error("dead transient should not move")
	}
}

func TestTransientLeavingFromSpawnMargin(t *testing.T) {
	tr := newTransient(core.NewVector(-100, 400), 100, 60)
	tr.advance(1.0, core.NewVector(-10, 0), testWorldBounds())

	if !tr.IsDead() {
		t.Error("entity moving away outside the world should die")
	}
}

func TestOffScreenCloudDriftsIn(t *testing.T) {
	cfg := config.DefaultRainMakerConfig()
	world := testWorldBounds()

	tests := []struct {
		name      string
		direction float64
	}{
		{"east wind", 0},
		{"west wind", 180},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(5))
			windCfg := cfg.Wind
			windCfg.Variable = false
			windCfg.Direction = tc.direction
			windCfg.Speed = 1
			wind := NewWind(rng, windCfg)

			for i := 0; i < 20; i++ {
				c := randomCloud(rng, i, cfg.Clouds, world, wind, false)
				if c.Lifecycle() != LifecycleCreated {
					t.Fatalf("new cloud lifecycle = %v", c.Lifecycle())
				}

				entered := false
				for step := 0; step < 2000 && !c.IsDead(); step++ {
					c.update(0.1, wind, world)
					if c.Lifecycle() == LifecycleInView {
						entered = true
					}
				}
				if !entered {
					t.Fatalf("cloud %d died at %v without entering the world", i, c.Position())
				}
				if !c.IsDead() {
					t.Fatalf("cloud %d never left the world", i)
				}
			}
		})
	}
}

func TestOnScreenCloudsFitTheWorld(t *testing.T) {
	cfg := config.DefaultRainMakerConfig()
	world := testWorldBounds()
	rng := rand.New(rand.NewSource(300))
	windCfg := cfg.Wind
	windCfg.Variable = false
	windCfg.Speed = 1
	wind := NewWind(rng, windCfg)

	for i := range 500 {
		c := randomCloud(rng, i, cfg.Clouds, world, wind, true)
		if b := c.Bounds(); b.Height() > world.Height() {
			t.Fatalf("cloud %d is taller than the world: %+v", i, b)
		}
		if !c.withinBounds(world) {
			t.Fatalf("cloud %d at %v spawned on screen but is not fully in view", i, c.Position())
		}
	}
}

func TestCloudPopulationStaysInRange(t *testing.T) {
	cfg := config.DefaultRainMakerConfig()
	rng := rand.New(rand.NewSource(11))
	windCfg := cfg.Wind
	windCfg.Variable = false
	windCfg.Speed = 2
	wind := NewWind(rng, windCfg)
	clouds := NewClouds(rng, cfg.Clouds, testWorldBounds())

	events := clouds.Update(0.1, wind)
	if clouds.Len() != cfg.Clouds.Max {
		t.Fatalf("initial population = %d, expected %d", clouds.Len(), cfg.Clouds.Max)
	}
	if countEvents(events, EventCloudSpawned) != cfg.Clouds.Max {
		t.Errorf("expected %d spawn events, got %v", cfg.Clouds.Max, events)
	}

	destroyed := 0
	for i := 0; i < 5000; i++ {
		evs := clouds.Update(0.1, wind)
		destroyed += countEvents(evs, EventCloudDestroyed)
		if n := clouds.Len(); n < cfg.Clouds.Min || n > cfg.Clouds.Max {
			t.Fatalf("tick %d: population %d outside [%d, %d]", i, n, cfg.Clouds.Min, cfg.Clouds.Max)
		}
		for _, c := range clouds.Items() {
			if c.IsDead() {
				t.Fatalf("tick %d: dead cloud %d still listed", i, c.ID())
			}
		}
	}
	if destroyed == 0 {
		t.Error("expected some clouds to drift off screen")
	}
}

func TestRainDecaysSaturation(t *testing.T) {
	cfg := config.DefaultRainMakerConfig()
	rng := rand.New(rand.NewSource(3))
	windCfg := cfg.Wind
	windCfg.Variable = false
	windCfg.Speed = 0
	wind := NewWind(rng, windCfg)
	clouds := NewClouds(rng, cfg.Clouds, testWorldBounds())
	clouds.Update(0.1, wind)

	c := clouds.Items()[0]
	for i := 0; i < 40; i++ {
		c.Saturate()
	}
	if clouds.Raining() < 1 {
		t.Fatal("expected at least one raining cloud")
	}

	for i := 0; i < 30; i++ {
		clouds.Update(0.1, wind)
	}
	if c.Saturation() >= 40 {
		t.Errorf("Saturation() = %d, expected decay after 3s of rain", c.Saturation())
	}
	if c.Saturation() < 36 {
		t.Errorf("Saturation() = %d, decayed faster than once per second", c.Saturation())
	}
}

func TestBlimpPopulationAndFuel(t *testing.T) {
	cfg := config.DefaultRainMakerConfig()
	rng := rand.New(rand.NewSource(21))
	blimps := NewBlimps(rng, cfg.Blimps, testWorldBounds(), cfg.World.SpeedMultiplier)

	spawned := 0
	for i := 0; i < 3000; i++ {
		evs := blimps.Update(0.1)
		spawned += countEvents(evs, EventBlimpSpawned)
		if blimps.Len() > cfg.Blimps.Max {
			t.Fatalf("tick %d: %d blimps, max %d", i, blimps.Len(), cfg.Blimps.Max)
		}
		for _, b := range blimps.Items() {
			if b.Fuel() < cfg.Blimps.FuelMin-cfg.Blimps.FuelGranularity || b.Fuel() > cfg.Blimps.FuelMax+cfg.Blimps.FuelGranularity {
				t.Fatalf("blimp fuel %v outside configured range", b.Fuel())
			}
		}
	}
	if spawned == 0 {
		t.Error("expected at least one blimp to spawn in 300s")
	}
}

func TestSiphonFuel(t *testing.T) {
	b := &Blimp{fuel: 700}

	if got := b.SiphonFuel(500); got != 500 {
		t.Errorf("SiphonFuel(500) = %v, expected 500", got)
	}
	if got := b.SiphonFuel(500); got != 200 {
		t.Errorf("SiphonFuel(500) = %v, expected remaining 200", got)
	}
	if got := b.SiphonFuel(500); got != 0 {
		t.Errorf("SiphonFuel on empty blimp = %v", got)
	}
	if got := b.SiphonFuel(-1); got != 0 {
		t.Errorf("SiphonFuel(-1) = %v", got)
	}
}
