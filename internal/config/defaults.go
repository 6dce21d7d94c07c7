package config

import (
	_ "embed"
)

//go:embed defaults/rainmaker.yaml
var defaultRainMakerYAML []byte

// DefaultRainMakerConfig returns the built-in Rain Maker configuration.
func DefaultRainMakerConfig() RainMakerConfig {
	return RainMakerConfig{
		World: WorldConfig{
			Width:           800,
			Height:          800,
			SpeedMultiplier: 30,
		},
		Helicopter: HelicopterConfig{
			StartX:        400,
			StartY:        100,
			BodyWidth:     40,
			BodyHeight:    60,
			InitialFuel:   25000,
			HoverFuelRate: 25,
			MinSpeed:      -2,
			MaxSpeed:      10,
			Acceleration:  0.1,
			TurnStep:      1,
			LandingSpeed:  0.1,
		},
		Blade: BladeConfig{
			MaxSpeed: 1000,
			Ramp:     200,
		},
		Helipad: HelipadConfig{
			X:      400,
			Y:      100,
			Radius: 57,
			Border: 10,
		},
		Clouds: CloudsConfig{
			Min:            2,
			Max:            5,
			SpawnPeriod:    5,
			RainPeriod:     1,
			RainThreshold:  30,
			RadiusXMin:     50,
			RadiusXMax:     60,
			RadiusYMin:     30,
			RadiusYMax:     40,
			SpeedOffsetMin: 40,
			SpeedOffsetMax: 70,
			SpawnMargin:    10,
		},
		Wind: WindConfig{
			Variable:  true,
			Direction: 0,
			Speed:     0.4,
			MinSpeed:  0.2,
			MaxSpeed:  2,
			ChangeMin: 5,
			ChangeMax: 10,
		},
		Ponds: PondsConfig{
			Count:         3,
			WaterMin:      10,
			WaterMax:      30,
			AreaPerUnit:   100,
			MinSeparation: 200,
			MaxAttempts:   10000,
		},
		Blimps: BlimpsConfig{
			Enabled:         true,
			Min:             0,
			Max:             2,
			SpawnPeriod:     3,
			BodyWidth:       180,
			BodyHeight:      70,
			PropellerWidth:  30,
			SpeedMin:        2,
			SpeedMax:        4,
			FuelMin:         5000,
			FuelMax:         10000,
			FuelGranularity: 1000,
		},
		Rain: RainConfig{
			TransferRate:      2,
			MaxDistanceFactor: 4,
		},
		Refuel: RefuelConfig{
			SpeedTolerance:   0.5,
			HeadingTolerance: 20,
			Rate:             500,
		},
		Scoring: ScoringConfig{
			WinWaterLevel: 80,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 600, // 10 minutes
			},
			Scaling: ScalingConfig{
				WindMultiplier: 1.0,
				FuelMultiplier: 0.5,
			},
		},
	}
}

// ClassicRainMakerConfig returns the configuration of the classic mode:
// a constant breeze and no blimps.
func ClassicRainMakerConfig(cfg RainMakerConfig) RainMakerConfig {
	cfg.Wind.Variable = false
	cfg.Blimps.Enabled = false
	return cfg
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultRainMakerYAML
}
