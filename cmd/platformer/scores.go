package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termgames/platformer/internal/platform/tui"
	"github.com/termgames/platformer/internal/storage"
)

var (
	flagScoresLevel       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded runs",
	Long: `Display the top 10 runs, best score first.

Examples:
  platformer scores
  platformer scores --level 2
  platformer scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLevel, "level", 0, "Only show runs for this level (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(flagScoresLevel, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if flagScoresLevel > 0 {
		fmt.Printf("Top Runs - Level %d\n", flagScoresLevel)
	} else {
		fmt.Println("Top Runs - All Levels")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "Rank", "Level", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-5s  %-8s  %-8s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range runs {
		result := "defeat"
		if entry.Outcome == storage.OutcomeWin {
			result = "victory"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-5d  %-8d  %-8s  %s\n", i+1, entry.Level, entry.Score, result, dateStr)
	}

	fmt.Println()
	if highScore, err := store.HighScore(flagScoresLevel); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
