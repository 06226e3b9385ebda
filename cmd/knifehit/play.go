package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/knife-hit/internal/core"
	"github.com/vovakirdan/knife-hit/internal/game"
	"github.com/vovakirdan/knife-hit/internal/platform/tui"
)

var (
	flagConfig string
	flagKnife  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a knife-hit run.

Controls:
  Space/Up   - Throw a knife
  Enter      - Confirm (boss intro, next stage)
  C          - Continue after a snapped knife (once per round)
  D          - Double the stage reward
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Knife styles: classic, dagger, arrow, pin

Examples:
  knifehit play
  knifehit play --knife dagger
  knifehit play --config ./my-knifehit.yaml
  knifehit play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagKnife, "knife", "", "Knife style (persisted for future runs)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game.SetConfigPath(flagConfig)

	// Open storage and the economy account
	store, account, err := openAccount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without persistence - the game still works
		store = nil
		account = nil
	}

	if flagKnife != "" {
		if !validKnifeStyle(flagKnife) {
			fmt.Fprintf(os.Stderr, "Error: unknown knife style %q\n", flagKnife)
			fmt.Fprintf(os.Stderr, "Available styles: %s\n", strings.Join(game.KnifeStyles(), ", "))
			if store != nil {
				store.Close()
			}
			os.Exit(1)
		}
		if account != nil {
			account.SetKnifeStyle(flagKnife)
		}
	}

	g := game.New()
	if account != nil {
		g.AttachWallet(account)
		g.SetKnifeStyle(account.KnifeStyle())
	} else {
		g.SetKnifeStyle(flagKnife)
	}

	// Run the game
	runErr := tui.Run(g, store, account, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

func validKnifeStyle(style string) bool {
	for _, s := range game.KnifeStyles() {
		if s == style {
			return true
		}
	}
	return false
}
