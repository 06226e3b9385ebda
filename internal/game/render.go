package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/knife-hit/internal/core"
)

// Minimum screen size needed to fit the board and HUD.
const (
	minScreenW = 40
	minScreenH = 16
)

// Visual characters for rendering
const (
	RimChar        = '·'
	AppleChar      = '●'
	BoardChar      = '▒'
	KnifeTrailChar = '│'
)

// knifeGlyphs maps cosmetic knife styles to their glyph.
var knifeGlyphs = map[string]rune{
	"classic": '┃',
	"dagger":  '†',
	"arrow":   '↑',
	"pin":     '¡',
}

// KnifeStyles lists the available cosmetic styles.
func KnifeStyles() []string {
	return []string{"classic", "dagger", "arrow", "pin"}
}

// knifeGlyph returns the glyph for the configured style.
func (g *Game) knifeGlyph() rune {
	if r, ok := knifeGlyphs[g.knifeStyle]; ok {
		return r
	}
	return knifeGlyphs["classic"]
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	switch g.phase {
	case PhaseBossIntro:
		g.renderBossIntro(dst)
	default:
		g.renderBoard(dst)
		g.renderLauncher(dst)
		g.renderOverlay(dst)
	}
}

// boardLayout computes the board center and radii from the screen size.
// Horizontal radius is doubled to compensate for cell aspect ratio.
func (g *Game) boardLayout(dst *core.Screen) (cx, cy, ry int) {
	ry = core.Clamp((dst.Height()-9)/2, 4, 9)
	cx = dst.Width() / 2
	cy = 2 + ry + 1
	return cx, cy, ry
}

// boardPoint maps a world angle and radius to screen coordinates.
// Angle zero is straight up, increasing clockwise.
func boardPoint(cx, cy int, ry float64, angle core.Angle) (int, int) {
	rad := angle * math.Pi / 180
	x := cx + int(math.Round(2*ry*math.Sin(rad)))
	y := cy - int(math.Round(ry*math.Cos(rad)))
	return x, y
}

// renderBoard draws the rotating board, stuck knives and apples.
func (g *Game) renderBoard(dst *core.Screen) {
	cx, cy, ry := g.boardLayout(dst)

	rimColor := core.ColorYellow
	if g.activeBoss != nil {
		rimColor = g.activeBoss.Color
	}

	// Rim
	for deg := 0; deg < 360; deg += 2 {
		x, y := boardPoint(cx, cy, float64(ry), float64(deg))
		dst.SetColored(x, y, RimChar, rimColor)
	}

	// Apples rotate with the board
	for _, t := range g.targets.targets {
		if !t.Visible {
			continue
		}
		world := core.WrapAngle(t.Angle + g.rotation)
		x, y := boardPoint(cx, cy, float64(ry), world)
		dst.SetColored(x, y, AppleChar, core.ColorBrightRed)
	}

	// Stuck knives point outward from the rim
	glyph := g.knifeGlyph()
	for _, a := range g.ledger.angles {
		world := core.WrapAngle(a + g.rotation)
		for _, r := range []float64{float64(ry) + 0.8, float64(ry) + 1.6} {
			x, y := boardPoint(cx, cy, r, world)
			dst.SetColored(x, y, glyph, core.ColorBrightWhite)
		}
	}

	// Stage marker in the center
	label := fmt.Sprintf("%d", g.stage)
	if g.activeBoss != nil {
		label = "!"
	}
	dst.DrawTextColored(cx-len(label)/2, cy, label, rimColor)
}

// renderLauncher draws the next knife below the board.
func (g *Game) renderLauncher(dst *core.Screen) {
	if g.knivesLeft <= 0 && !g.inFlight {
		return
	}

	cx, cy, ry := g.boardLayout(dst)
	glyph := g.knifeGlyph()

	y := cy + ry + 3
	if g.inFlight {
		y = cy + ry + 1
	}
	dst.SetColored(cx, y, glyph, core.ColorBrightWhite)
	dst.SetColored(cx, y+1, KnifeTrailChar, core.ColorGray)
}

// renderHUD draws the score, stage and remaining knives.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(1, 0, scoreText)

	var stageText string
	if g.activeBoss != nil {
		stageText = fmt.Sprintf("Stage %d · %s", g.stage, g.activeBoss.Name)
	} else {
		stageText = fmt.Sprintf("Stage %d", g.stage)
	}
	dst.DrawTextCentered(0, stageText)

	applesText := fmt.Sprintf("Apples: %d/%d", g.targetsHit, len(g.targets.targets))
	dst.DrawText(dst.Width()-len(applesText)-1, 0, applesText)

	// One glyph per remaining knife
	if g.knivesLeft > 0 {
		knives := strings.Repeat(string(g.knifeGlyph())+" ", g.knivesLeft)
		dst.DrawTextColored(1, 1, strings.TrimRight(knives, " "), core.ColorGray)
	}
}

// renderBossIntro draws the boss announcement box.
func (g *Game) renderBossIntro(dst *core.Screen) {
	if g.activeBoss == nil {
		return
	}
	b := g.activeBoss

	title := fmt.Sprintf("BOSS  %s", strings.ToUpper(b.Name))
	stats := fmt.Sprintf("%d knives · %d apples · speed %.1f", b.KnifeBudget, b.TargetCount, b.RotationSpeed)
	reward := fmt.Sprintf("Reward: %d coins", b.RewardCoins)
	hint := "Press ENTER to fight"

	w := dst.Width()
	h := dst.Height()
	boxW := max(max(len(title), len(stats)), max(len(reward), len(hint))) + 6
	boxH := 9
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCenteredColored(boxY+2, title, b.Color)
	dst.DrawTextCentered(boxY+4, stats)
	dst.DrawTextCentered(boxY+5, reward)
	dst.DrawTextCenteredColored(boxY+7, hint, core.ColorGray)
}

// renderOverlay draws fail/win/pause message boxes.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case g.phase == PhaseFailed:
		subtitle := "R - restart"
		if g.CanContinue() {
			subtitle = fmt.Sprintf("C - continue (+%d knives)  |  R - restart", g.cfg.Pacing.ContinueKnives)
		}
		g.drawCenteredBox(dst, "SNAPPED!", subtitle)

	case g.phase == PhaseWin:
		title := "STAGE CLEAR!"
		if g.activeBoss != nil {
			title = fmt.Sprintf("%s DEFEATED!", strings.ToUpper(g.activeBoss.Name))
		}
		subtitle := fmt.Sprintf("+%d coins  |  ENTER - next  |  D - double reward", g.prog.Reward(g.stage))
		g.drawCenteredBox(dst, title, subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
