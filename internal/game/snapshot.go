package game

import "github.com/vovakirdan/knife-hit/internal/core"

// Snapshot captures the round state for determinism testing and replay.
type Snapshot struct {
	Tick         int
	Phase        Phase
	Stage        int
	BossName     string // Empty on normal stages
	Rotation     core.Angle
	KnivesLeft   int
	KnifeBudget  int
	TargetsHit   int
	Score        int
	UsedContinue bool
	InFlight     bool
	StuckKnives  []core.Angle
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	bossName := ""
	if g.activeBoss != nil {
		bossName = g.activeBoss.Name
	}

	return Snapshot{
		Tick:         g.tickCount,
		Phase:        g.phase,
		Stage:        g.stage,
		BossName:     bossName,
		Rotation:     g.rotation,
		KnivesLeft:   g.knivesLeft,
		KnifeBudget:  g.roundBudget,
		TargetsHit:   g.targetsHit,
		Score:        g.score,
		UsedContinue: g.usedContinue,
		InFlight:     g.inFlight,
		StuckKnives:  append([]core.Angle(nil), g.ledger.angles...),
	}
}
