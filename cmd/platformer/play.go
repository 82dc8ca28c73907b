package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/termgames/platformer/internal/audio"
	"github.com/termgames/platformer/internal/config"
	"github.com/termgames/platformer/internal/core"
	"github.com/termgames/platformer/internal/game"
	"github.com/termgames/platformer/internal/platform/tui"
	"github.com/termgames/platformer/internal/storage"
)

var (
	flagConfig string
	flagLevel  int
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a platformer session in the current terminal.

Controls:
  Left/A     - Run left
  Right/D    - Run right
  Space/Up/W - Jump
  Enter      - Start game, leave end screens
  Q/Ctrl+C   - Quit

Examples:
  platformer play
  platformer play --level 2
  platformer play --mute
  platformer play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to play")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size for the render buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var sounds audio.Player = audio.Nop{}
	if !flagMute {
		manager := audio.NewManager()
		if initErr := manager.Initialize(); initErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", initErr)
		} else {
			sounds = manager
			defer manager.Cleanup()
		}
	}

	// Run history is best-effort: play works without a database.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: runs will not be recorded: %v\n", err)
		store = nil
	} else {
		defer store.Close()
	}

	g := game.New(cfg, runtime, sounds)
	g.SetLevel(flagLevel)

	if err := tui.Run(g, store, runtime); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
