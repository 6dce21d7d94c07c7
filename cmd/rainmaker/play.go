package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rainmaker/internal/core"
	"github.com/vovakirdan/rainmaker/internal/games/rainmaker"
	"github.com/vovakirdan/rainmaker/internal/platform/tui"
	"github.com/vovakirdan/rainmaker/internal/registry"
	"github.com/vovakirdan/rainmaker/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Rain Maker",
	Long: `Start a round of Rain Maker. Without a mode, a menu lets you pick the
mode and difficulty, view the scoreboard, and come back after each round.

Controls:
  Up/W, Down/S      - Speed up / slow down
  Left/A, Right/D   - Turn
  I                 - Ignition (start, or stop when landed on the pad)
  Space             - Seed the cloud under the helicopter
  P                 - Pause
  R                 - Restart
  Esc/B             - Back to menu (when paused or over)
  ?                 - Toggle help
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - More fuel, lower water target
  normal - Default fuel and target, difficulty ramps over time
  hard   - Less fuel, higher water target
  fixed  - No progression

Examples:
  rainmaker play
  rainmaker play rainmaker
  rainmaker play rainmaker_classic --difficulty easy
  rainmaker play --config ./my-rainmaker.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	s := loadSettings()

	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown mode %q, run 'rainmaker list' to see available modes", args[0])
	}

	logger, closeLog := playLogger(s.LogLevel)
	defer closeLog()
	rainmaker.SetLogger(logger)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: s.FPS,
		Seed:     s.Seed,
	}

	// Open score storage
	store, err := storage.Open(s.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	if len(args) == 1 {
		_, err := playMode(args[0], "", store, cfg, logger)
		return err
	}
	return menuLoop(store, cfg, logger)
}

// menuLoop alternates between the menu, the scoreboard and rounds until the
// player quits.
func menuLoop(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return fmt.Errorf("scoreboard: %w", err)
			}
			if !back {
				return nil
			}

		default:
			back, err := playMode(result.GameID, result.Difficulty, store, cfg, logger)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}
		}
	}
}

// playMode runs one game until the player quits or asks for the menu.
func playMode(gameID, difficulty string, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, fmt.Errorf("creating game: %w", err)
	}
	if difficulty != "" {
		if g, ok := game.(*rainmaker.Game); ok {
			g.SetDifficulty(difficulty)
		}
	}

	logger.Info("starting game", "game", gameID, "difficulty", difficulty, "seed", cfg.Seed)
	back, err := tui.Run(game, store, cfg, logger)
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}
	return back, nil
}

// playLogger logs to the log file, or nowhere if it cannot be opened.
func playLogger(level string) (*log.Logger, func()) {
	f, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		return newLogger(io.Discard, level), func() {}
	}
	return newLogger(f, level), func() { f.Close() }
}
