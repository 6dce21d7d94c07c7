package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rainmaker/internal/registry"
	"github.com/vovakirdan/rainmaker/internal/storage"
)

var (
	flagRounds int
	flagClear  bool
	flagAll    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent rounds",
	Long: `Display the top 10 scores and the latest rounds for a mode.
Without a mode, the standard mode is shown.

Examples:
  rainmaker scores
  rainmaker scores rainmaker_classic --rounds 20
  rainmaker scores --all
  rainmaker scores rainmaker_classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRounds, "rounds", 5, "Number of recent rounds to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the scores and rounds of the mode")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Summarize every mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	s := loadSettings()

	gameID := "rainmaker"
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown mode %q, run 'rainmaker list' to see available modes", gameID)
	}

	store, err := storage.Open(s.DBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagAll {
		return printAllStats(store)
	}
	if flagClear {
		if err := store.ClearGame(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores and rounds for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'rainmaker play %s' and land with full ponds to set one!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if flagRounds <= 0 {
		return nil
	}
	rounds, err := store.RecentRounds(gameID, flagRounds)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}
	sum, err := store.GetRoundSummary(gameID)
	if err != nil {
		return fmt.Errorf("retrieving round summary: %w", err)
	}

	fmt.Println()
	fmt.Printf("Rounds: %d  Wins: %d  Crashes: %d  Best water: %.1f\n",
		sum.Rounds, sum.Wins, sum.Crashes, sum.BestWater)
	if len(rounds) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Printf("  %-8s  %-6s  %-7s  %-7s  %s\n", "Outcome", "Water", "Fuel", "Time", "Date")
	fmt.Printf("  %-8s  %-6s  %-7s  %-7s  %s\n", "-------", "-----", "----", "----", "----")
	for _, r := range rounds {
		fmt.Printf("  %-8s  %-6.1f  %-7d  %-7s  %s\n",
			r.Outcome, r.AvgWater, int(r.Fuel), formatSeconds(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// formatSeconds renders simulated seconds as m:ss.
func formatSeconds(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// printAllStats lists every registered mode with its winning-score stats.
func printAllStats(store *storage.Store) error {
	stats, err := store.AllGameStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Printf("  %-20s  %-5s  %-8s  %-8s  %s\n", "Mode", "Wins", "Best", "Average", "Last win")
	fmt.Printf("  %-20s  %-5s  %-8s  %-8s  %s\n", "----", "----", "----", "-------", "--------")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			fmt.Printf("  %-20s  %-5d  %-8s  %-8s  %s\n", info.ID, 0, "-", "-", "never")
			continue
		}
		fmt.Printf("  %-20s  %-5d  %-8d  %-8.0f  %s\n",
			info.ID, st.Wins, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
