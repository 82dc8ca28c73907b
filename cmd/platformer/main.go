// platformer is a TUI side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer play          - Play in the current terminal
//	platformer scores        - Show recorded runs
//	platformer serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed (reserved; the simulation is deterministic)
//	--db <path>     - Set database path (default: ~/.platformer/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "platformer",
	Short: "Platformer Adventure - a side-scroller in your terminal",
	Long: `Platformer Adventure is a terminal-based side-scrolling platformer.
Run, jump between platforms, dodge patrolling enemies and collect every
coin to win.

Available commands:
  play     - Play in the current terminal
  scores   - View recorded runs
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play --level 2
  platformer serve --ssh :2222
  platformer scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (reserved; the simulation is deterministic)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
