// Package config provides YAML-based game configuration loading for
// knife-hit. The rules engine is parameterized over these tables rather
// than hardcoding values, so alternate configs can be swapped in for
// testing or tuning.
package config

// GameConfig contains all configuration for the knife-hit game.
type GameConfig struct {
	Scoring ScoringConfig `yaml:"scoring"`
	Gaps    GapConfig     `yaml:"gaps"`
	Pacing  PacingConfig  `yaml:"pacing"`
	Stages  StagesConfig  `yaml:"stages"`
	Daily   DailyConfig   `yaml:"daily"`
}

// ScoringConfig defines score and coin values.
type ScoringConfig struct {
	ThrowPoints int `yaml:"throw_points"` // Score per knife stuck
	ApplePoints int `yaml:"apple_points"` // Score per apple sliced
	AppleCoins  int `yaml:"apple_coins"`  // Coins per apple sliced
}

// GapConfig defines the angular separation thresholds in degrees.
type GapConfig struct {
	KnifeGap float64 `yaml:"knife_gap"` // Min separation between stuck knives
	AppleGap float64 `yaml:"apple_gap"` // Max distance to slice an apple
}

// PacingConfig defines tick counts for throw resolution and win crediting,
// plus the knife count restored by an ad continue.
type PacingConfig struct {
	ThrowTicks     int `yaml:"throw_ticks"`     // Flight time of a thrown knife
	WinDelayTicks  int `yaml:"win_delay_ticks"` // Delay before the stage reward lands
	ContinueKnives int `yaml:"continue_knives"` // Knives restored by continue
}

// StagesConfig defines the normal-stage parameters, the per-stage speed
// ramp, and the boss table.
type StagesConfig struct {
	NormalKnives  int          `yaml:"normal_knives"`
	NormalTargets int          `yaml:"normal_targets"`
	NormalSpeed   float64      `yaml:"normal_speed"`
	NormalReward  int          `yaml:"normal_reward"`
	SpeedRamp     float64      `yaml:"speed_ramp"` // Added per stage past the first
	Bosses        []BossConfig `yaml:"bosses"`
}

// BossConfig defines one boss stage entry.
type BossConfig struct {
	Stage   int     `yaml:"stage"`
	Name    string  `yaml:"name"`
	Color   string  `yaml:"color"`
	Knives  int     `yaml:"knives"`
	Targets int     `yaml:"targets"`
	Speed   float64 `yaml:"speed"`
	Reward  int     `yaml:"reward"`
}

// DailyConfig defines the escalating daily login reward streak.
type DailyConfig struct {
	Rewards []int `yaml:"rewards"`
}
