// Package config provides YAML-based tuning for the Rain Maker simulation and
// difficulty management.
package config

// RainMakerConfig contains all tunable constants of the simulation.
type RainMakerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Helicopter HelicopterConfig `yaml:"helicopter"`
	Blade      BladeConfig      `yaml:"blade"`
	Helipad    HelipadConfig    `yaml:"helipad"`
	Clouds     CloudsConfig     `yaml:"clouds"`
	Wind       WindConfig       `yaml:"wind"`
	Ponds      PondsConfig      `yaml:"ponds"`
	Blimps     BlimpsConfig     `yaml:"blimps"`
	Rain       RainConfig       `yaml:"rain"`
	Refuel     RefuelConfig     `yaml:"refuel"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // world units per speed unit per second
}

// HelicopterConfig defines flight and fuel parameters.
type HelicopterConfig struct {
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	BodyWidth     float64 `yaml:"body_width"`
	BodyHeight    float64 `yaml:"body_height"`
	InitialFuel   float64 `yaml:"initial_fuel"`
	HoverFuelRate float64 `yaml:"hover_fuel_rate"` // fuel per second while the rotor turns
	MinSpeed      float64 `yaml:"min_speed"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Acceleration  float64 `yaml:"acceleration"` // speed change per key press
	TurnStep      float64 `yaml:"turn_step"`    // degrees per key press
	LandingSpeed  float64 `yaml:"landing_speed"`
}

// BladeConfig defines the rotor ramp.
type BladeConfig struct {
	MaxSpeed float64 `yaml:"max_speed"` // degrees per second
	Ramp     float64 `yaml:"ramp"`      // degrees per second squared
}

// HelipadConfig defines the landing pad.
type HelipadConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Border float64 `yaml:"border"`
}

// CloudsConfig defines cloud population and rain behavior.
type CloudsConfig struct {
	Min            int     `yaml:"min"`
	Max            int     `yaml:"max"`
	SpawnPeriod    float64 `yaml:"spawn_period"` // seconds between coin-flip spawns
	RainPeriod     float64 `yaml:"rain_period"`  // seconds between saturation decays
	RainThreshold  int     `yaml:"rain_threshold"`
	RadiusXMin     float64 `yaml:"radius_x_min"`
	RadiusXMax     float64 `yaml:"radius_x_max"`
	RadiusYMin     float64 `yaml:"radius_y_min"`
	RadiusYMax     float64 `yaml:"radius_y_max"`
	SpeedOffsetMin float64 `yaml:"speed_offset_min"`
	SpeedOffsetMax float64 `yaml:"speed_offset_max"`
	SpawnMargin    float64 `yaml:"spawn_margin"` // off-screen gap for new clouds
}

// WindConfig defines the wind that drifts clouds.
type WindConfig struct {
	Variable  bool    `yaml:"variable"`
	Direction float64 `yaml:"direction"` // degrees, 0 blows towards +x
	Speed     float64 `yaml:"speed"`     // used when not variable
	MinSpeed  float64 `yaml:"min_speed"`
	MaxSpeed  float64 `yaml:"max_speed"`
	ChangeMin float64 `yaml:"change_min"` // seconds
	ChangeMax float64 `yaml:"change_max"`
}

// PondsConfig defines pond placement and growth.
type PondsConfig struct {
	Count         int     `yaml:"count"`
	WaterMin      int     `yaml:"water_min"`
	WaterMax      int     `yaml:"water_max"`
	AreaPerUnit   float64 `yaml:"area_per_unit"`
	MinSeparation float64 `yaml:"min_separation"`
	MaxAttempts   int     `yaml:"max_attempts"`
}

// BlimpsConfig defines the refueling blimps.
type BlimpsConfig struct {
	Enabled         bool    `yaml:"enabled"`
	Min             int     `yaml:"min"`
	Max             int     `yaml:"max"`
	SpawnPeriod     float64 `yaml:"spawn_period"`
	BodyWidth       float64 `yaml:"body_width"`
	BodyHeight      float64 `yaml:"body_height"`
	PropellerWidth  float64 `yaml:"propeller_width"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	FuelMin         float64 `yaml:"fuel_min"`
	FuelMax         float64 `yaml:"fuel_max"`
	FuelGranularity float64 `yaml:"fuel_granularity"`
}

// RainConfig defines cloud to pond water transfer.
type RainConfig struct {
	TransferRate      float64 `yaml:"transfer_rate"`
	MaxDistanceFactor float64 `yaml:"max_distance_factor"` // in pond diameters
}

// RefuelConfig defines blimp refueling compatibility.
type RefuelConfig struct {
	SpeedTolerance   float64 `yaml:"speed_tolerance"`
	HeadingTolerance float64 `yaml:"heading_tolerance"` // degrees
	Rate             float64 `yaml:"rate"`              // fuel per second
}

// ScoringConfig defines the win condition.
type ScoringConfig struct {
	WinWaterLevel float64 `yaml:"win_water_level"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "time" or "none"
	MaxAt float64 `yaml:"max_at"` // seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	WindMultiplier float64 `yaml:"wind_multiplier"` // added to max wind speed at max difficulty
	FuelMultiplier float64 `yaml:"fuel_multiplier"` // added to fuel burn at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset converts a CLI string into a preset. Unknown names yield normal.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return DifficultyNormal
	}
}
