package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/knife-hit/internal/core"
	"github.com/vovakirdan/knife-hit/internal/economy"
	"github.com/vovakirdan/knife-hit/internal/game"
	"github.com/vovakirdan/knife-hit/internal/storage"
)

// Model is the Bubble Tea model driving a knife-hit session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	account    *economy.Account
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the run has been recorded for the current game over
	flash      string
	flashTicks int
}

// flashDuration is how many ticks an event flash stays on screen.
const flashDuration = 45

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, account *economy.Account, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		account:    account,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C bypasses the action pipeline entirely
	switch msg.String() {
	case "ctrl+c":
		m.flushAccount()
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	// Map key to action
	switch msg.String() {
	case " ", "up", "w":
		m.inputFrame.Set(core.ActionThrow)
	case "enter":
		m.inputFrame.Set(core.ActionConfirm)
	case "c":
		m.inputFrame.Set(core.ActionContinue)
	case "d":
		m.inputFrame.Set(core.ActionDoubleReward)
	case "p", "esc":
		m.inputFrame.Set(core.ActionPause)
	case "r":
		m.inputFrame.Set(core.ActionRestart)
	case "q":
		m.inputFrame.Set(core.ActionQuit)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize with the new dimensions if the run is still live
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionQuit) {
		m.flushAccount()
		m.quitting = true
		return m, tea.Quit
	}

	// A restart after game over gets a fresh seed so the apples land
	// somewhere new
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.noteEvents(result.Events)
	m.decayFlash()

	// Record the run on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.gameState.Score, m.gameState.Stage)
		}
		if m.account != nil {
			m.account.RecordScore(m.gameState.Score)
		}
		m.flushAccount()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// noteEvents turns gameplay events into a short HUD flash. Fails and
// wins already get full-screen overlays from the game renderer, so only
// the reward events flash here.
func (m *Model) noteEvents(events []core.Event) {
	for _, e := range events {
		switch e {
		case core.EventApple:
			m.flash = "Apple sliced!"
			m.flashTicks = flashDuration
		case core.EventCoin:
			m.flash = "Coins banked"
			m.flashTicks = flashDuration
		}
	}
}

// decayFlash ages the current flash by one tick.
func (m *Model) decayFlash() {
	if m.flashTicks == 0 {
		return
	}
	m.flashTicks--
	if m.flashTicks == 0 {
		m.flash = ""
	}
}

// flushAccount persists any pending coin balance.
func (m *Model) flushAccount() {
	if m.account != nil {
		m.account.Flush()
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.renderFrame()

	dir := filepath.Join(os.Getenv("HOME"), ".knifehit", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// renderFrame draws the game plus the persistent coin balance.
func (m *Model) renderFrame() {
	m.game.Render(m.screen)

	if m.account != nil && m.screen.Height() > 0 {
		label := fmt.Sprintf("Coins: %d", m.account.Coins())
		m.screen.DrawTextColored(1, m.screen.Height()-1, label, core.ColorYellow)
	}

	if m.flashTicks > 0 && m.screen.Height() > 0 {
		x := m.screen.Width() - len(m.flash) - 1
		if x < 0 {
			x = 0
		}
		m.screen.DrawTextColored(x, m.screen.Height()-1, m.flash, core.ColorGreen)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame()

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, account *economy.Account, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, account, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
