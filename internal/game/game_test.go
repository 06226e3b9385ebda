package game

import (
	"math"
	"testing"

	"github.com/vovakirdan/knife-hit/internal/core"
)

// fakeWallet records credited coins.
type fakeWallet struct {
	coins int
}

func (w *fakeWallet) CreditCoins(amount int) {
	w.coins += amount
}

// denyAds rejects every ad request.
type denyAds struct{}

func (denyAds) RequestContinue() bool     { return false }
func (denyAds) RequestDoubleReward() bool { return false }

// newTestGame returns a game on stage 1 with instant throw resolution
// and no win delay, so tests can drive throws directly.
func newTestGame(t *testing.T) *Game {
	t.Helper()

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	g.cfg.Pacing.ThrowTicks = 0
	g.cfg.Pacing.WinDelayTicks = 0
	return g
}

// throwAt rotates the board so the knife lands at the given board angle,
// then resolves the throw.
func throwAt(g *Game, angle float64) {
	g.rotation = core.WrapAngle(throwReference - angle)
	g.inFlight = true
	g.resolveThrow()
}

// clearApples removes all targets so scoring tests see throws only.
func clearApples(g *Game) {
	g.targets.targets = nil
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func hasEvent(events []core.Event, want core.Event) bool {
	for _, e := range events {
		if e == want {
			return true
		}
	}
	return false
}

func TestInitialRound(t *testing.T) {
	g := newTestGame(t)

	if g.phase != PhasePlaying {
		t.Fatalf("stage 1 should start playing, got %s", g.phase)
	}
	if g.stage != 1 {
		t.Errorf("stage = %d, expected 1", g.stage)
	}
	if g.knivesLeft != 10 || g.roundBudget != 10 {
		t.Errorf("knives = %d/%d, expected 10/10", g.knivesLeft, g.roundBudget)
	}
	if len(g.targets.targets) != 10 {
		t.Errorf("targets = %d, expected 10", len(g.targets.targets))
	}
	if g.rotation != 0 {
		t.Errorf("rotation = %v, expected 0", g.rotation)
	}
}

func TestRoundWinScore(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	wallet := &fakeWallet{}
	g.AttachWallet(wallet)

	// Ten throws 24 degrees apart: no collisions, no apples.
	for i := 0; i < 10; i++ {
		throwAt(g, float64(i)*24)
	}

	if g.phase != PhaseWin {
		t.Fatalf("phase = %s, expected win after exhausting the budget", g.phase)
	}
	if g.ledger.count() != 10 {
		t.Errorf("stuck knives = %d, expected 10", g.ledger.count())
	}
	if g.knivesLeft != 0 {
		t.Errorf("knivesLeft = %d, expected 0", g.knivesLeft)
	}

	// 10 throws x 10 points + 50 completion bonus.
	if g.score != 150 {
		t.Errorf("score = %d, expected 150", g.score)
	}
	if wallet.coins != 50 {
		t.Errorf("coins credited = %d, expected 50", wallet.coins)
	}
}

func TestCollisionEndsRound(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	throwAt(g, 0)
	throwAt(g, 10) // 10 degrees from the first knife: inside the 18 gap

	if g.phase != PhaseFailed {
		t.Fatalf("phase = %s, expected failed", g.phase)
	}

	// The offending throw is not recorded and scores nothing.
	if g.ledger.count() != 1 {
		t.Errorf("stuck knives = %d, expected 1", g.ledger.count())
	}
	if g.score != 10 {
		t.Errorf("score = %d, expected 10", g.score)
	}
}

func TestHitAngleFromRotation(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	g.rotation = 30
	g.inFlight = true
	g.resolveThrow()

	if g.ledger.count() != 1 {
		t.Fatal("throw should stick")
	}
	want := core.WrapAngle(180 - 30)
	if math.Abs(g.ledger.angles[0]-want) > 1e-9 {
		t.Errorf("hit angle = %v, expected %v", g.ledger.angles[0], want)
	}
}

func TestThrowInFlightDiscipline(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})

	res := step(g, core.ActionThrow)
	if !hasEvent(res.Events, core.EventThrow) {
		t.Fatal("first throw should emit a throw event")
	}
	if !g.inFlight {
		t.Fatal("throw should be in flight")
	}

	// A second throw during the flight window is rejected.
	res = step(g, core.ActionThrow)
	if hasEvent(res.Events, core.EventThrow) {
		t.Error("second throw while in flight should be a no-op")
	}

	// The knife lands once its flight time elapses.
	landed := false
	for i := 0; i < g.cfg.Pacing.ThrowTicks+1 && !landed; i++ {
		res = step(g)
		landed = hasEvent(res.Events, core.EventHit) || hasEvent(res.Events, core.EventFail)
	}
	if !landed {
		t.Error("throw never resolved within its flight time")
	}
	if g.inFlight {
		t.Error("inFlight should clear after resolution")
	}
}

func TestThrowRejectedWithoutKnives(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	g.knivesLeft = 0
	g.startThrow()

	if g.inFlight {
		t.Error("throw with no knives left should be rejected")
	}
}

func TestContinueRestoresKnives(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	throwAt(g, 0)
	throwAt(g, 120)
	throwAt(g, 5) // fail
	if g.phase != PhaseFailed {
		t.Fatal("setup: expected failed phase")
	}
	scoreBefore := g.score

	step(g, core.ActionContinue)

	if g.phase != PhasePlaying {
		t.Fatalf("phase = %s, expected playing after continue", g.phase)
	}
	if g.knivesLeft != 3 {
		t.Errorf("knivesLeft = %d, expected 3", g.knivesLeft)
	}
	if !g.usedContinue {
		t.Error("usedContinue should be set")
	}

	// Ledger, targets and score survive the continue.
	if g.ledger.count() != 2 {
		t.Errorf("stuck knives = %d, expected 2 preserved", g.ledger.count())
	}
	if g.score != scoreBefore {
		t.Errorf("score = %d, expected %d preserved", g.score, scoreBefore)
	}
}

func TestContinueOnlyOncePerRound(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	throwAt(g, 0)
	throwAt(g, 5) // fail
	step(g, core.ActionContinue)
	if g.phase != PhasePlaying {
		t.Fatal("setup: first continue should work")
	}

	throwAt(g, 10) // fail again in the same round
	if g.phase != PhaseFailed {
		t.Fatal("setup: expected second fail")
	}

	step(g, core.ActionContinue)

	if g.phase != PhaseFailed {
		t.Error("second continue in the same round must be rejected")
	}
	if g.CanContinue() {
		t.Error("CanContinue() should be false after the continue is spent")
	}
}

func TestContinueResetsAfterNewRound(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	throwAt(g, 0)
	throwAt(g, 5)
	step(g, core.ActionContinue)
	if !g.usedContinue {
		t.Fatal("setup: continue should be spent")
	}

	step(g, core.ActionRestart)

	if g.usedContinue {
		t.Error("usedContinue should reset at round start")
	}
}

func TestContinueDeniedByAdGate(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)
	g.AttachAdGate(denyAds{})

	throwAt(g, 0)
	throwAt(g, 5) // fail

	step(g, core.ActionContinue)

	if g.phase != PhaseFailed {
		t.Error("denied ad request must leave the failed state untouched")
	}
	if g.usedContinue {
		t.Error("a denied continue must not be counted as used")
	}
}

func TestGameOverWaitsForContinue(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	throwAt(g, 0)
	throwAt(g, 5) // fail

	if !g.CanContinue() {
		t.Fatal("first fail should leave the continue available")
	}
	if g.State().GameOver {
		t.Error("run must not report game over while the continue is available")
	}

	step(g, core.ActionContinue)
	if g.State().GameOver {
		t.Error("a resumed round is not game over")
	}

	throwAt(g, 10) // fail again
	if g.CanContinue() {
		t.Error("no continue left after it was spent")
	}
	if !g.State().GameOver {
		t.Error("run must report game over once the continue is spent")
	}
}

func TestAdvanceStageKeepsScore(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	for i := 0; i < 10; i++ {
		throwAt(g, float64(i)*24)
	}
	if g.phase != PhaseWin {
		t.Fatal("setup: expected win")
	}

	step(g, core.ActionConfirm)

	if g.stage != 2 {
		t.Errorf("stage = %d, expected 2", g.stage)
	}
	if g.phase != PhasePlaying {
		t.Errorf("phase = %s, expected playing", g.phase)
	}
	if g.score != 150 {
		t.Errorf("score = %d, expected 150 carried across stages", g.score)
	}
	if g.knivesLeft != 10 {
		t.Errorf("knivesLeft = %d, expected a fresh budget of 10", g.knivesLeft)
	}
	if g.ledger.count() != 0 {
		t.Errorf("ledger should be cleared at round start, got %d", g.ledger.count())
	}
}

func TestDoubleRewardCreditsAndAdvances(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	wallet := &fakeWallet{}
	g.AttachWallet(wallet)

	for i := 0; i < 10; i++ {
		throwAt(g, float64(i)*24)
	}
	if g.phase != PhaseWin {
		t.Fatal("setup: expected win")
	}

	step(g, core.ActionDoubleReward)

	// 100 throw points + 50 completion + 50 doubled.
	if g.score != 200 {
		t.Errorf("score = %d, expected 200", g.score)
	}
	if wallet.coins != 100 {
		t.Errorf("coins = %d, expected 100 (50 completion + 50 doubled)", wallet.coins)
	}
	if g.stage != 2 {
		t.Errorf("stage = %d, expected advance to 2", g.stage)
	}
}

func TestDoubleRewardDeniedByAdGate(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)
	g.AttachAdGate(denyAds{})

	for i := 0; i < 10; i++ {
		throwAt(g, float64(i)*24)
	}

	step(g, core.ActionDoubleReward)

	if g.phase != PhaseWin {
		t.Error("denied double reward must stay in the win state")
	}
	if g.stage != 1 {
		t.Errorf("stage = %d, expected no advance", g.stage)
	}
}

func TestBossIntroFlow(t *testing.T) {
	g := newTestGame(t)

	g.startRound(5)

	if g.phase != PhaseBossIntro {
		t.Fatalf("phase = %s, expected boss_intro at stage 5", g.phase)
	}
	if g.activeBoss == nil {
		t.Fatal("activeBoss should be set")
	}

	step(g, core.ActionConfirm)

	if g.phase != PhasePlaying {
		t.Fatalf("phase = %s, expected playing after confirm", g.phase)
	}
	if g.roundBudget != 12 {
		t.Errorf("boss knife budget = %d, expected 12", g.roundBudget)
	}
	if len(g.targets.targets) != 8 {
		t.Errorf("boss targets = %d, expected 8", len(g.targets.targets))
	}
}

func TestBossRewardOnWin(t *testing.T) {
	g := newTestGame(t)
	g.startRound(5)
	step(g, core.ActionConfirm)
	clearApples(g)

	wallet := &fakeWallet{}
	g.AttachWallet(wallet)

	for i := 0; i < 12; i++ {
		throwAt(g, float64(i)*28)
	}

	if g.phase != PhaseWin {
		t.Fatalf("phase = %s, expected win", g.phase)
	}
	if wallet.coins != 200 {
		t.Errorf("coins = %d, expected the boss reward of 200", wallet.coins)
	}
}

func TestRestartResetsRun(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	throwAt(g, 0)
	throwAt(g, 5) // fail with score 10

	step(g, core.ActionRestart)

	if g.stage != 1 {
		t.Errorf("stage = %d, expected 1", g.stage)
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0 after restart", g.score)
	}
	if g.phase != PhasePlaying {
		t.Errorf("phase = %s, expected playing", g.phase)
	}
}

func TestAppleScoring(t *testing.T) {
	g := newTestGame(t)

	wallet := &fakeWallet{}
	g.AttachWallet(wallet)

	g.targets.targets = []Target{{ID: 0, Angle: 100, Visible: true}}

	throwAt(g, 100)

	// 10 for the throw + 5 for the apple.
	if g.score != 15 {
		t.Errorf("score = %d, expected 15", g.score)
	}
	if wallet.coins != 5 {
		t.Errorf("coins = %d, expected 5", wallet.coins)
	}
	if g.targetsHit != 1 {
		t.Errorf("targetsHit = %d, expected 1", g.targetsHit)
	}
}

func TestFinalThrowDoubleCredit(t *testing.T) {
	// The final throw can slice an apple and complete the stage in one
	// resolution pass; both credits apply.
	g := newTestGame(t)

	wallet := &fakeWallet{}
	g.AttachWallet(wallet)

	g.targets.targets = []Target{{ID: 0, Angle: 40, Visible: true}}
	g.knivesLeft = 1
	g.roundBudget = 1

	throwAt(g, 40)

	if g.phase != PhaseWin {
		t.Fatalf("phase = %s, expected win", g.phase)
	}
	if g.score != 65 { // 10 throw + 5 apple + 50 completion
		t.Errorf("score = %d, expected 65", g.score)
	}
	if wallet.coins != 55 { // 5 apple + 50 completion
		t.Errorf("coins = %d, expected 55", wallet.coins)
	}
}

func TestWinDelayBlocksThrows(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)
	g.cfg.Pacing.WinDelayTicks = 30

	g.knivesLeft = 1
	g.roundBudget = 1
	throwAt(g, 0)

	if g.phase != PhasePlaying || !g.winPending {
		t.Fatalf("win should be pending, phase=%s pending=%v", g.phase, g.winPending)
	}

	// No throw may start while the win sequence is pending.
	g.knivesLeft = 1
	g.startThrow()
	if g.inFlight {
		t.Error("throw must be rejected while the win sequence is pending")
	}

	for i := 0; i < 30; i++ {
		step(g)
	}

	if g.phase != PhaseWin {
		t.Errorf("phase = %s, expected win after the delay", g.phase)
	}
}

func TestRotationAdvance(t *testing.T) {
	g := newTestGame(t)

	before := g.rotation
	step(g)

	want := core.WrapAngle(before + g.prog.EffectiveSpeed(1))
	if math.Abs(g.rotation-want) > 1e-9 {
		t.Errorf("rotation = %v, expected %v", g.rotation, want)
	}
}

func TestRotationHaltsOutsidePlaying(t *testing.T) {
	g := newTestGame(t)
	clearApples(g)

	throwAt(g, 0)
	throwAt(g, 5) // fail
	r := g.rotation

	step(g)
	step(g)

	if g.rotation != r {
		t.Errorf("rotation advanced in failed phase: %v -> %v", r, g.rotation)
	}
}

func TestPauseHaltsRotation(t *testing.T) {
	g := newTestGame(t)

	step(g, core.ActionPause)
	if !g.paused {
		t.Fatal("game should pause")
	}

	r := g.rotation
	step(g)
	if g.rotation != r {
		t.Errorf("rotation advanced while paused: %v -> %v", r, g.rotation)
	}

	step(g, core.ActionPause)
	if g.paused {
		t.Error("game should unpause")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if i%40 == 10 {
			in.Set(core.ActionThrow)
		}
		g1.Step(in)
		g2.Step(in)
	}

	s1 := g1.Snapshot()
	s2 := g2.Snapshot()

	if s1.Tick != s2.Tick || s1.Phase != s2.Phase || s1.Score != s2.Score {
		t.Errorf("snapshots diverged: %+v vs %+v", s1, s2)
	}
	if s1.Rotation != s2.Rotation {
		t.Errorf("rotation diverged: %v vs %v", s1.Rotation, s2.Rotation)
	}
	if len(s1.StuckKnives) != len(s2.StuckKnives) {
		t.Errorf("ledger diverged: %v vs %v", s1.StuckKnives, s2.StuckKnives)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.screenTooSmall {
		t.Error("game should detect the window is too small")
	}

	// Throws are ignored while the window is too small.
	res := step(g, core.ActionThrow)
	if hasEvent(res.Events, core.EventThrow) {
		t.Error("throw should be ignored on a too-small screen")
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "knifehit" {
		t.Errorf("ID() = %s, expected knifehit", g.ID())
	}
	if g.Title() != "Knife Hit" {
		t.Errorf("Title() = %s, expected Knife Hit", g.Title())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Fatal("rendered screen should not be empty")
	}
	if !containsString(content, "Stage 1") {
		t.Error("HUD should contain the stage label")
	}
	if !containsString(content, "Score:") {
		t.Error("HUD should contain the score label")
	}
}

func containsString(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
