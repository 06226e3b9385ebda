package config

import (
	_ "embed"
)

//go:embed defaults/knifehit.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the canonical game configuration.
// Used as the last-resort fallback if the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Scoring: ScoringConfig{
			ThrowPoints: 10,
			ApplePoints: 5,
			AppleCoins:  5,
		},
		Gaps: GapConfig{
			KnifeGap: 18.0,
			AppleGap: 15.0,
		},
		Pacing: PacingConfig{
			ThrowTicks:     6,
			WinDelayTicks:  30,
			ContinueKnives: 3,
		},
		Stages: StagesConfig{
			NormalKnives:  10,
			NormalTargets: 10,
			NormalSpeed:   1.5,
			NormalReward:  50,
			SpeedRamp:     0.1,
			Bosses: []BossConfig{
				{Stage: 5, Name: "Furious Tomato", Color: "red", Knives: 12, Targets: 8, Speed: 2.0, Reward: 200},
				{Stage: 10, Name: "Sour Lemon", Color: "bright-yellow", Knives: 13, Targets: 7, Speed: 2.25, Reward: 350},
				{Stage: 15, Name: "Old Cheddar", Color: "orange", Knives: 15, Targets: 5, Speed: 2.5, Reward: 500},
				{Stage: 20, Name: "Hard Candy", Color: "bright-magenta", Knives: 16, Targets: 4, Speed: 2.75, Reward: 750},
				{Stage: 25, Name: "Juicy Orange", Color: "bright-red", Knives: 18, Targets: 3, Speed: 3.0, Reward: 1000},
			},
		},
		Daily: DailyConfig{
			Rewards: []int{50, 100, 150, 200, 300, 500, 1000},
		},
	}
}
