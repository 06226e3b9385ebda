// Package game implements the knife-hit rules engine: a rotating circular
// board the player throws knives into, which must stick without touching
// previously stuck knives while optionally slicing bonus apples. The
// package is pure logic with no terminal dependencies; the platform layer
// drives it tick by tick and renders the resulting state.
package game

import (
	"math/rand"

	"github.com/vovakirdan/knife-hit/internal/config"
	"github.com/vovakirdan/knife-hit/internal/core"
)

// Phase is the round state machine phase.
type Phase string

const (
	PhaseReady     Phase = "ready"      // No active round yet
	PhaseBossIntro Phase = "boss_intro" // Showing boss stats, waiting for confirm
	PhasePlaying   Phase = "playing"    // Board rotating, throws accepted
	PhaseFailed    Phase = "failed"     // A knife hit a stuck knife
	PhaseWin       Phase = "win"        // Knife budget exhausted without collision
)

// throwReference is the board-relative angle of the launcher before the
// current rotation is subtracted: knives fly straight up into the bottom
// of the board.
const throwReference = 180.0

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the knife-hit round state machine.
type Game struct {
	cfg  config.GameConfig
	prog Progression
	rng  *rand.Rand

	// Round state
	phase        Phase
	paused       bool
	stage        int
	rotation     core.Angle
	knivesLeft   int
	roundBudget  int
	targetsHit   int
	score        int
	usedContinue bool
	activeBoss   *Boss

	ledger  collisionLedger
	targets targetField

	// Throw-in-flight and win pacing
	inFlight       bool
	throwTicksLeft int
	winPending     bool
	winDelayLeft   int

	tickCount int
	events    []core.Event

	wallet Wallet
	ads    AdGate

	runtime        core.RuntimeConfig
	knifeStyle     string
	screenTooSmall bool
}

// New creates a new knife-hit game instance.
func New() *Game {
	return &Game{
		phase:  PhaseReady,
		wallet: nopWallet{},
		ads:    grantAllAds{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "knifehit"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Knife Hit"
}

// AttachWallet routes coin credits to the given wallet.
func (g *Game) AttachWallet(w Wallet) {
	if w == nil {
		g.wallet = nopWallet{}
		return
	}
	g.wallet = w
}

// AttachAdGate routes continue/double-reward requests to the given gate.
func (g *Game) AttachAdGate(a AdGate) {
	if a == nil {
		g.ads = grantAllAds{}
		return
	}
	g.ads = a
}

// SetKnifeStyle sets the cosmetic knife style used by the renderer.
func (g *Game) SetKnifeStyle(style string) {
	g.knifeStyle = style
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	g.cfg = cfg
	g.prog = NewProgression(cfg.Stages)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.tickCount = 0
	g.paused = false
	g.restart()
}

// restart resets the run to stage 1 with a zero score.
func (g *Game) restart() {
	g.stage = 1
	g.score = 0
	g.activeBoss = nil
	g.startRound(g.stage)
}

// startRound enters a stage: boss stages show an intro first, normal
// stages initialize round data and go straight to playing.
func (g *Game) startRound(stage int) {
	g.stage = stage

	if boss := g.prog.BossFor(stage); boss != nil {
		g.activeBoss = boss
		g.phase = PhaseBossIntro
		return
	}

	g.activeBoss = nil
	g.initRound(g.prog.KnifeBudget(stage), g.prog.TargetCount(stage))
	g.phase = PhasePlaying
}

// confirmBossStart initializes round data from the boss parameters.
func (g *Game) confirmBossStart() {
	if g.phase != PhaseBossIntro || g.activeBoss == nil {
		return
	}
	g.initRound(g.activeBoss.KnifeBudget, g.activeBoss.TargetCount)
	g.phase = PhasePlaying
}

// initRound resets all per-round state. The session score is untouched:
// it persists across stages and resets only on restart.
func (g *Game) initRound(knives, targets int) {
	g.ledger.clear()
	g.targets.generate(g.rng, targets)
	g.knivesLeft = knives
	g.roundBudget = knives
	g.targetsHit = 0
	g.usedContinue = false
	g.rotation = 0
	g.inFlight = false
	g.throwTicksLeft = 0
	g.winPending = false
	g.winDelayLeft = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall {
		return g.result()
	}

	if in.Has(core.ActionRestart) && (g.phase == PhaseFailed || g.phase == PhaseWin) {
		g.restart()
		return g.result()
	}

	if in.Has(core.ActionPause) && g.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tickCount++

	switch g.phase {
	case PhaseBossIntro:
		if in.Has(core.ActionConfirm) {
			g.confirmBossStart()
		}

	case PhasePlaying:
		g.rotation = core.WrapAngle(g.rotation + g.prog.EffectiveSpeed(g.stage))

		switch {
		case g.inFlight:
			g.throwTicksLeft--
			if g.throwTicksLeft <= 0 {
				g.resolveThrow()
			}
		case g.winPending:
			g.winDelayLeft--
			if g.winDelayLeft <= 0 {
				g.completeWin()
			}
		case in.Has(core.ActionThrow):
			g.startThrow()
		}

	case PhaseFailed:
		if in.Has(core.ActionContinue) {
			g.continueRound()
		}

	case PhaseWin:
		if in.Has(core.ActionDoubleReward) {
			g.doubleReward()
		} else if in.Has(core.ActionConfirm) {
			g.advanceStage()
		}
	}

	return g.result()
}

// startThrow launches a knife. Rejected silently when no knives remain or
// another throw is still in flight.
func (g *Game) startThrow() {
	if g.knivesLeft <= 0 || g.inFlight || g.winPending {
		return
	}

	g.inFlight = true
	g.throwTicksLeft = g.cfg.Pacing.ThrowTicks
	g.emit(core.EventThrow)

	if g.throwTicksLeft <= 0 {
		g.resolveThrow()
	}
}

// resolveThrow computes where the knife lands and applies the outcome.
// The board has rotated under the fixed launcher, so the board-relative
// impact angle is the throw reference minus the current rotation.
func (g *Game) resolveThrow() {
	g.inFlight = false
	hitAngle := core.WrapAngle(throwReference - g.rotation)

	if g.ledger.wouldCollide(hitAngle, g.cfg.Gaps.KnifeGap) {
		// The offending knife is not recorded.
		g.emit(core.EventFail)
		g.phase = PhaseFailed
		return
	}

	g.emit(core.EventHit)

	if sliced := g.targets.resolveHits(hitAngle, g.cfg.Gaps.AppleGap); len(sliced) > 0 {
		g.targetsHit += len(sliced)
		g.score += len(sliced) * g.cfg.Scoring.ApplePoints
		g.wallet.CreditCoins(len(sliced) * g.cfg.Scoring.AppleCoins)
		g.emit(core.EventApple)
		g.emit(core.EventCoin)
	}

	g.ledger.accept(hitAngle)
	g.knivesLeft--
	g.score += g.cfg.Scoring.ThrowPoints

	if g.ledger.count() == g.roundBudget {
		g.winPending = true
		g.winDelayLeft = g.cfg.Pacing.WinDelayTicks
		if g.winDelayLeft <= 0 {
			g.completeWin()
		}
	}
}

// completeWin credits the stage reward and enters the win phase.
func (g *Game) completeWin() {
	g.winPending = false

	reward := g.prog.Reward(g.stage)
	g.score += reward
	g.wallet.CreditCoins(reward)
	g.emit(core.EventWin)
	g.emit(core.EventCoin)
	g.phase = PhaseWin
}

// continueRound resumes a failed round with a fixed number of knives.
// Usable once per round, and only when the ad gate grants the request.
// The ledger, targets and score are deliberately preserved.
func (g *Game) continueRound() {
	if g.phase != PhaseFailed || g.usedContinue {
		return
	}
	if !g.ads.RequestContinue() {
		return
	}

	g.usedContinue = true
	g.knivesLeft = g.cfg.Pacing.ContinueKnives
	g.inFlight = false
	g.phase = PhasePlaying
}

// CanContinue reports whether the current failed round can still be
// resumed. True exactly once per round, until the continue is spent.
func (g *Game) CanContinue() bool {
	return g.phase == PhaseFailed && !g.usedContinue
}

// doubleReward credits the stage reward a second time and advances.
// Rejected silently when the ad gate denies the request.
func (g *Game) doubleReward() {
	if g.phase != PhaseWin {
		return
	}
	if !g.ads.RequestDoubleReward() {
		return
	}

	reward := g.prog.Reward(g.stage)
	g.score += reward
	g.wallet.CreditCoins(reward)
	g.emit(core.EventCoin)
	g.advanceStage()
}

// advanceStage moves to the next stage.
func (g *Game) advanceStage() {
	if g.phase != PhaseWin {
		return
	}
	g.startRound(g.stage + 1)
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State()}
	if len(g.events) > 0 {
		res.Events = append([]core.Event(nil), g.events...)
	}
	return res
}

// State returns the current externally visible game state. A fail with
// the continue still available does not end the run yet, so GameOver
// stays false until the continue is spent.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Stage:    g.stage,
		GameOver: g.phase == PhaseFailed && !g.CanContinue(),
		Paused:   g.paused,
	}
}
