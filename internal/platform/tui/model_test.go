package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/knife-hit/internal/core"
	"github.com/vovakirdan/knife-hit/internal/game"
)

func newTestModel() Model {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	m := NewModel(game.New(), nil, nil, cfg)
	m.game.Reset(cfg)
	return m
}

func TestRewardEventsRaiseFlash(t *testing.T) {
	m := newTestModel()

	m.noteEvents([]core.Event{core.EventApple})
	if m.flash == "" || m.flashTicks != flashDuration {
		t.Fatalf("apple event should raise a flash, got %q/%d", m.flash, m.flashTicks)
	}

	m.noteEvents([]core.Event{core.EventCoin})
	if m.flash != "Coins banked" {
		t.Errorf("flash = %q, coin event should replace the message", m.flash)
	}
}

func TestFlashDecays(t *testing.T) {
	m := newTestModel()
	m.noteEvents([]core.Event{core.EventApple})

	for i := 0; i < flashDuration; i++ {
		m.decayFlash()
	}
	if m.flash != "" || m.flashTicks != 0 {
		t.Errorf("flash should clear after %d ticks, got %q/%d", flashDuration, m.flash, m.flashTicks)
	}
}

func TestQuitActionStopsTheSession(t *testing.T) {
	m := newTestModel()
	m.inputFrame.Set(core.ActionQuit)

	next, cmd := m.handleTick()
	if cmd == nil {
		t.Fatal("quit action should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit action should quit the program")
	}
	if !next.(Model).quitting {
		t.Error("quit action should mark the model as quitting")
	}
}
