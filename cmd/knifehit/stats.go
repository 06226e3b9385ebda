package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show coins, high score and daily streak",
	Long: `Display the persistent player statistics: coin balance, all-time
high score, best stage reached, games played and the daily streak.

Examples:
  knifehit stats`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, account, err := openAccount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Knife Hit - Player Stats")
	fmt.Println()
	fmt.Printf("  Coins:         %d\n", account.Coins())
	fmt.Printf("  High score:    %d\n", account.HighScore())
	fmt.Printf("  Best stage:    %d\n", stats.BestStage)
	fmt.Printf("  Games played:  %d\n", stats.GamesCount)
	if stats.GamesCount > 0 {
		fmt.Printf("  Average score: %.0f\n", stats.AvgScore)
		fmt.Printf("  Last played:   %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Printf("  Daily streak:  %d\n", account.Streak())
	if style := account.KnifeStyle(); style != "" {
		fmt.Printf("  Knife style:   %s\n", style)
	}

	if account.CanClaimDaily() {
		fmt.Println()
		fmt.Println("Today's daily reward is unclaimed - run 'knifehit daily'.")
	}
}
