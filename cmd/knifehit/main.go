// knifehit is a terminal rendition of the knife-throwing arcade game:
// knives are thrown into a rotating board without touching each other,
// apples grant coins, and every fifth stage is a boss.
//
// Usage:
//
//	knifehit play            - Play the game
//	knifehit scores          - Show the run history
//	knifehit stats           - Show coins, high score and streak
//	knifehit daily           - Claim the daily coin reward
//	knifehit serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.knifehit/knifehit.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/knife-hit/internal/config"
	"github.com/vovakirdan/knife-hit/internal/economy"
	"github.com/vovakirdan/knife-hit/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "knifehit",
	Short: "Knife Hit - throw knives into a spinning board",
	Long: `Knife Hit is a terminal arcade game. Throw all your knives into a
rotating board without hitting the knives already stuck in it. Slice
apples for coins, survive boss stages, and keep your daily streak alive.

Available commands:
  play     - Play the game
  scores   - View the run history
  stats    - View coins, high score and daily streak
  daily    - Claim the daily coin reward
  serve    - Start SSH server for remote play

Examples:
  knifehit play
  knifehit play --knife dagger
  knifehit scores
  knifehit daily
  knifehit serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.knifehit/knifehit.db", "Path to database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(serveCmd)
}

// dailyRewards returns the configured daily reward table.
func dailyRewards() []int {
	cfg, err := config.Load("")
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	return cfg.Daily.Rewards
}

// openAccount opens the store and the economy account backed by it.
// The caller owns the store and must close it.
func openAccount() (*storage.Store, *economy.Account, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, err
	}
	return store, economy.New(store, dailyRewards()), nil
}
