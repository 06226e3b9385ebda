package game

import (
	"github.com/vovakirdan/knife-hit/internal/config"
	"github.com/vovakirdan/knife-hit/internal/core"
)

// Boss describes one boss stage: a special board with its own knife
// budget, apple count, rotation speed and completion reward.
type Boss struct {
	Stage         int
	Name          string
	Color         core.Color
	KnifeBudget   int
	TargetCount   int
	RotationSpeed float64
	RewardCoins   int
}

// Progression is the stage lookup table. A stage is a boss stage iff it
// has an entry; every other stage uses the normal parameters.
type Progression struct {
	bosses map[int]Boss

	normalKnives  int
	normalTargets int
	normalSpeed   float64
	normalReward  int
	speedRamp     float64
}

// NewProgression builds the stage table from configuration.
func NewProgression(cfg config.StagesConfig) Progression {
	p := Progression{
		bosses:        make(map[int]Boss, len(cfg.Bosses)),
		normalKnives:  cfg.NormalKnives,
		normalTargets: cfg.NormalTargets,
		normalSpeed:   cfg.NormalSpeed,
		normalReward:  cfg.NormalReward,
		speedRamp:     cfg.SpeedRamp,
	}

	for _, b := range cfg.Bosses {
		p.bosses[b.Stage] = Boss{
			Stage:         b.Stage,
			Name:          b.Name,
			Color:         core.ColorByName(b.Color),
			KnifeBudget:   b.Knives,
			TargetCount:   b.Targets,
			RotationSpeed: b.Speed,
			RewardCoins:   b.Reward,
		}
	}
	return p
}

// BossFor returns the boss entry for a stage, or nil for normal stages.
func (p Progression) BossFor(stage int) *Boss {
	if b, ok := p.bosses[stage]; ok {
		return &b
	}
	return nil
}

// KnifeBudget returns the knife budget for a stage.
func (p Progression) KnifeBudget(stage int) int {
	if b := p.BossFor(stage); b != nil {
		return b.KnifeBudget
	}
	return p.normalKnives
}

// TargetCount returns the apple count for a stage.
func (p Progression) TargetCount(stage int) int {
	if b := p.BossFor(stage); b != nil {
		return b.TargetCount
	}
	return p.normalTargets
}

// Reward returns the completion reward in coins for a stage.
func (p Progression) Reward(stage int) int {
	if b := p.BossFor(stage); b != nil {
		return b.RewardCoins
	}
	return p.normalReward
}

// EffectiveSpeed returns the rotation speed for a stage in degrees per
// tick: the boss or normal base speed plus a linear per-stage ramp.
func (p Progression) EffectiveSpeed(stage int) float64 {
	base := p.normalSpeed
	if b := p.BossFor(stage); b != nil {
		base = b.RotationSpeed
	}
	return base + float64(stage-1)*p.speedRamp
}
