package rainmaker

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/shape"
)

// World is one round of the simulation. It owns every entity and advances
// them in a fixed order on each Tick. It is not safe for concurrent use.
type World struct {
	cfg  config.RainMakerConfig
	seed int64
	rng  *rand.Rand

	helicopter *Helicopter
	helipad    Helipad
	clouds     *Clouds
	ponds      *Ponds
	blimps     *Blimps
	wind       *Wind
	difficulty *config.DifficultyManager

	elapsed float64
	ticks   uint64

	mode    string
	logger  *log.Logger
	metrics *simMetrics
}

// WorldOption configures a World.
type WorldOption func(*World)

// WithLogger sets the logger. A nil logger discards output.
func WithLogger(l *log.Logger) WorldOption {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithMode labels metrics and logs with the game mode.
func WithMode(mode string) WorldOption {
	return func(w *World) {
		w.mode = mode
	}
}

// NewWorld builds a round from cfg. The same seed and inputs always produce
// the same round.
func NewWorld(cfg config.RainMakerConfig, seed int64, opts ...WorldOption) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("rainmaker: %w", err)
	}

	w := &World{
		cfg:    cfg,
		mode:   "rainmaker",
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	m, err := newSimMetrics(w.mode)
	if err != nil {
		return nil, fmt.Errorf("rainmaker: %w", err)
	}
	w.metrics = m

	if err := w.Reset(seed); err != nil {
		return nil, err
	}
	return w, nil
}

// Reset discards every entity and rebuilds the round. It must be called
// between ticks.
func (w *World) Reset(seed int64) error {
	rng := rand.New(rand.NewSource(seed))
	bounds := w.Bounds()

	helipad := NewHelipad(w.cfg.Helipad)
	helicopter := NewHelicopter(w.cfg.Helicopter, w.cfg.Blade, w.cfg.World.SpeedMultiplier)
	helicopter.SetLandingPad(helipad.Bounds())

	ponds, err := PlacePonds(rng, w.cfg.Ponds, bounds, []core.Bounds{helipad.Bounds()})
	if err != nil {
		return err
	}

	w.seed = seed
	w.rng = rng
	w.helipad = helipad
	w.helicopter = helicopter
	w.ponds = ponds
	w.wind = NewWind(rng, w.cfg.Wind)
	w.clouds = NewClouds(rng, w.cfg.Clouds, bounds)
	w.blimps = NewBlimps(rng, w.cfg.Blimps, bounds, w.cfg.World.SpeedMultiplier)
	w.difficulty = config.NewDifficultyManager(w.cfg.Difficulty)
	w.elapsed = 0
	w.ticks = 0

	w.logger.Debug("round reset", "mode", w.mode, "seed", seed, "ponds", len(ponds.Items()))
	return nil
}

// Tick advances the world by dt seconds: wind, helicopter, clouds, blimps,
// then rain transfer and refueling. Ponds only change through rain.
// Non-positive dt is ignored.
func (w *World) Tick(dt float64) []Event {
	if dt <= 0 {
		return nil
	}
	w.elapsed += dt
	w.ticks++

	var events []Event

	if w.wind.Update(dt, w.difficulty.WindSpeed(w.cfg.Wind.MaxSpeed, w.elapsed)) {
		w.logger.Debug("wind changed", "speed", w.wind.Speed())
	}

	w.helicopter.SetHoverRate(w.difficulty.FuelRate(w.cfg.Helicopter.HoverFuelRate, w.elapsed))
	events = append(events, w.helicopter.Update(dt)...)
	events = append(events, w.clouds.Update(dt, w.wind)...)
	if w.cfg.Blimps.Enabled {
		events = append(events, w.blimps.Update(dt)...)
	}

	w.transferRain(dt)
	w.refuel(dt)

	w.metrics.recordEvents(events)
	w.logEvents(events)
	return events
}

// transferRain moves water from every raining cloud into nearby ponds.
// The amount falls off linearly with distance and is zero beyond
// MaxDistanceFactor pond diameters.
func (w *World) transferRain(dt float64) {
	for _, c := range w.clouds.Items() {
		if !c.IsRaining() {
			continue
		}
		for _, p := range w.ponds.Items() {
			amount := RainAmount(Distance(c.Bounds(), p.Bounds()), p.Diameter(),
				c.Saturation(), dt, w.cfg.Rain)
			if amount <= 0 {
				continue
			}
			p.AddWater(amount)
			w.metrics.recordWater(amount)
		}
	}
}

// RainAmount is the water a cloud with the given saturation adds to a pond
// of diameter pondDiameter at distance d over dt seconds.
func RainAmount(d, pondDiameter float64, saturation int, dt float64, cfg config.RainConfig) float64 {
	maxDistance := cfg.MaxDistanceFactor * pondDiameter
	if d >= maxDistance {
		return 0
	}
	return (1 - d/maxDistance) * (float64(saturation) / 100) * dt * cfg.TransferRate
}

// refuel lets the helicopter siphon from any blimp it overlaps while
// matching its speed and heading.
func (w *World) refuel(dt float64) {
	for _, b := range w.blimps.Items() {
		if !w.CanRefuelFrom(b) {
			b.SetRefueling(false)
			continue
		}
		siphoned := b.SiphonFuel(w.cfg.Refuel.Rate * dt)
		w.helicopter.Refuel(siphoned)
		b.SetRefueling(siphoned > 0)
		w.metrics.recordFuel(siphoned)
	}
}

// CanRefuelFrom reports whether the helicopter is matched with b.
func (w *World) CanRefuelFrom(b *Blimp) bool {
	h := w.helicopter
	if abs(h.Speed()-b.Speed()) > w.cfg.Refuel.SpeedTolerance {
		return false
	}
	if core.AngleDiff(h.CartesianHeading(), b.Heading()) > w.cfg.Refuel.HeadingTolerance {
		return false
	}
	return shape.Intersects(h.Outlines(), b.Outlines())
}

// SeedOverlapping seeds every cloud the helicopter overlaps and returns how
// many clouds gained saturation. Nothing happens unless the helicopter flies.
func (w *World) SeedOverlapping() int {
	if !w.helicopter.State().AcceptsControls() {
		return 0
	}
	seeded := 0
	heli := w.helicopter.Outlines()
	for _, c := range w.clouds.Items() {
		if !shape.Intersects(heli, c.Outlines()) {
			continue
		}
		if w.helicopter.SeedCloud(c) {
			seeded++
		}
	}
	return seeded
}

// Distance is the center-to-center distance between two boxes.
func Distance(a, b core.Bounds) float64 {
	return core.CenterDistance(a, b)
}

func (w *World) logEvents(events []Event) {
	for _, e := range events {
		switch e.Kind {
		case EventCrash:
			w.logger.Info("helicopter crashed", "elapsed", w.elapsed, "water", w.ponds.AverageWaterLevel())
		case EventLanded:
			w.logger.Info("helicopter landed", "fuel", w.helicopter.Fuel(), "water", w.ponds.AverageWaterLevel())
		case EventFlyingStarted:
			w.logger.Info("helicopter airborne", "fuel", w.helicopter.Fuel())
		default:
			w.logger.Debug("entity event", "event", e.String())
		}
	}
}

// Bounds returns the world rectangle.
func (w *World) Bounds() core.Bounds {
	return core.Bounds{MaxX: w.cfg.World.Width, MaxY: w.cfg.World.Height}
}

func (w *World) Helicopter() *Helicopter        { return w.helicopter }
func (w *World) Helipad() Helipad               { return w.helipad }
func (w *World) Clouds() *Clouds                { return w.clouds }
func (w *World) Ponds() *Ponds                  { return w.ponds }
func (w *World) Blimps() *Blimps                { return w.blimps }
func (w *World) Wind() *Wind                    { return w.wind }
func (w *World) Config() config.RainMakerConfig { return w.cfg }
func (w *World) Elapsed() float64               { return w.elapsed }
func (w *World) Ticks() uint64                  { return w.ticks }
func (w *World) Seed() int64                    { return w.seed }

// HasWon reports whether the average pond level meets the win threshold.
func (w *World) HasWon() bool {
	return w.ponds.AverageWaterLevel() >= w.cfg.Scoring.WinWaterLevel
}

// Score is the round score: the average water fraction times remaining fuel.
func (w *World) Score() int {
	return int(w.ponds.AverageWaterLevel() / 100 * w.helicopter.Fuel())
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
