// Package rainmaker implements the Rain Maker simulation: fly a helicopter
// into clouds, seed them until they rain into the ponds, and land back on the
// pad before the fuel runs out.
package rainmaker

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rainmaker/internal/config"
	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/registry"
)

// GameMode selects the rule set.
type GameMode int

const (
	ModeStandard GameMode = iota // Variable wind and refueling blimps
	ModeClassic                  // Constant breeze, no blimps
)

// Outcome is how a round ended.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeWon     Outcome = "won"
	OutcomeCrashed Outcome = "crashed"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation logs; nil discards them
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

// RoundResult summarizes a finished round for the scoreboard.
type RoundResult struct {
	Outcome  Outcome
	Score    int
	Fuel     float64
	AvgWater float64
	Duration float64 // simulated seconds
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	mode    GameMode
	preset  *config.DifficultyPreset
	runtime core.RuntimeConfig
	cfg     config.RainMakerConfig
	world   *World
	err     error

	state      core.GameState
	outcome    Outcome
	lastEvents []Event
	message    string
}

// New creates a new Rain Maker game in standard mode.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewClassic creates a new Rain Maker game in classic mode.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "rainmaker_classic"
	}
	return "rainmaker"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Rain Maker (Classic)"
	}
	return "Rain Maker"
}

// SetDifficulty overrides the package-level preset for this game only.
// SSH sessions use it so players do not share one setting.
func (g *Game) SetDifficulty(preset string) {
	p := config.ParsePreset(preset)
	g.preset = &p
}

// Reset loads the configuration and builds a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadRainMaker(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("falling back to default config", "err", err)
		}
		cfg = config.DefaultRainMakerConfig()
	}

	// Apply difficulty preset if set
	preset := difficultyPreset
	if g.preset != nil {
		preset = *g.preset
	}
	if preset != "" {
		config.ApplyRainMakerPreset(&cfg, preset)
	}
	if g.mode == ModeClassic {
		cfg = config.ClassicRainMakerConfig(cfg)
	}

	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig builds a new round from an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.RainMakerConfig) {
	g.runtime = runtime
	g.cfg = cfg
	g.state = core.GameState{}
	g.outcome = OutcomeNone
	g.lastEvents = nil
	g.message = "Press I to start the engine"

	g.world, g.err = NewWorld(cfg, runtime.Seed, WithLogger(logger), WithMode(g.ID()))
	if g.err != nil {
		g.state.GameOver = true
		if logger != nil {
			logger.Error("cannot build round", "err", g.err)
		}
	}
}

// Step applies the frame's input and advances the world by dt seconds.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.state}
	}
	if g.err != nil {
		return core.StepResult{State: g.state}
	}

	if in.Has(core.ActionPause) && !g.state.GameOver {
		g.state.Paused = !g.state.Paused
	}
	if g.state.Paused || g.state.GameOver {
		return core.StepResult{State: g.state}
	}

	g.applyControls(in)

	g.lastEvents = g.world.Tick(dt)
	for _, e := range g.lastEvents {
		g.handleEvent(e)
	}

	return core.StepResult{State: g.state}
}

func (g *Game) applyControls(in core.InputFrame) {
	h := g.world.Helicopter()

	for range in.Count(core.ActionSpeedUp) {
		h.SpeedUp()
	}
	for range in.Count(core.ActionSpeedDown) {
		h.SpeedDown()
	}
	for range in.Count(core.ActionTurnLeft) {
		h.TurnLeft()
	}
	for range in.Count(core.ActionTurnRight) {
		h.TurnRight()
	}
	for range in.Count(core.ActionIgnition) {
		if !h.ToggleIgnition() && h.State() == StateReady {
			g.message = "Land on the pad at zero speed to stop the engine"
		}
	}
	for range in.Count(core.ActionSeed) {
		g.world.SeedOverlapping()
	}
}

func (g *Game) handleEvent(e Event) {
	switch e.Kind {
	case EventCrash:
		g.finish(OutcomeCrashed)
	case EventLanded:
		if g.world.HasWon() {
			g.finish(OutcomeWon)
			return
		}
		g.message = "Landed. The ponds need more rain"
	case EventFlyingStarted:
		g.message = "Airborne. Fly into clouds and press Space to seed"
	}
}

func (g *Game) finish(outcome Outcome) {
	if g.state.GameOver {
		return
	}
	g.outcome = outcome
	g.state.GameOver = true
	g.state.Won = outcome == OutcomeWon
	if g.state.Won {
		g.state.Score = g.world.Score()
	}
	if logger != nil {
		logger.Info("round over", "mode", g.ID(), "outcome", string(outcome),
			"score", g.state.Score, "elapsed", g.world.Elapsed())
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Result returns the summary of the current round.
func (g *Game) Result() RoundResult {
	if g.world == nil {
		return RoundResult{Outcome: g.outcome}
	}
	return RoundResult{
		Outcome:  g.outcome,
		Score:    g.state.Score,
		Fuel:     g.world.Helicopter().Fuel(),
		AvgWater: g.world.Ponds().AverageWaterLevel(),
		Duration: g.world.Elapsed(),
	}
}

// World exposes the running round, nil if it failed to build.
func (g *Game) World() *World {
	return g.world
}

// Err returns the error that prevented the round from starting.
func (g *Game) Err() error {
	return g.err
}

// LastEvents returns the events produced by the latest step.
func (g *Game) LastEvents() []Event {
	return g.lastEvents
}

func init() {
	registry.Register("rainmaker", func() registry.Game {
		return New()
	})
	registry.Register("rainmaker_classic", func() registry.Game {
		return NewClassic()
	})
}
