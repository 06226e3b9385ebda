package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Claim the daily coin reward",
	Long: `Claim today's coin reward. Claiming on consecutive days advances the
streak through bigger rewards; after the last tier the streak wraps back
to the first. Missing a day resets the streak.

Examples:
  knifehit daily`,
	Args: cobra.NoArgs,
	Run:  runDaily,
}

func runDaily(cmd *cobra.Command, args []string) {
	store, account, err := openAccount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	reward, ok := account.ClaimDailyReward()
	if !ok {
		fmt.Println("Today's reward is already claimed. Come back tomorrow!")
		fmt.Printf("Current streak: %d\n", account.Streak())
		return
	}

	fmt.Printf("Daily reward claimed: +%d coins\n", reward)
	fmt.Printf("Streak: %d   Balance: %d coins\n", account.Streak(), account.Coins())
}
