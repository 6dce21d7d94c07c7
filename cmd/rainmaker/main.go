// rainmaker is a terminal helicopter game: seed the clouds, fill the ponds,
// and land back on the pad before the tank runs dry.
//
// Usage:
//
//	rainmaker list              - List available modes
//	rainmaker play [mode]       - Play a mode, or pick one from the menu
//	rainmaker sim               - Run a headless round with the autopilot
//	rainmaker serve             - Start SSH server for remote play
//	rainmaker scores [mode]     - Show high scores and recent rounds
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible rounds
//	--db <path>         - Set database path (default: ~/.rainmaker/scores.db)
//	--config <path>     - Use a custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level> - debug, info, warn, error
//
// Every global flag can also be set through a RAINMAKER_* environment
// variable or ~/.rainmaker/settings.yaml.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its modes
	_ "github.com/vovakirdan/rainmaker/internal/games/rainmaker"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rainmaker",
	Short: "Rain Maker - fly a helicopter and make it rain",
	Long: `Rain Maker is a terminal helicopter game. Start the engine on the pad,
fly into the clouds and seed them until they rain into the ponds below,
then land back on the pad before you run out of fuel.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly or pick one from the menu
  sim      - Run a headless round and print a summary
  serve    - Start SSH server for remote play
  scores   - View high scores and round history

Examples:
  rainmaker play
  rainmaker play rainmaker_classic --difficulty easy
  rainmaker sim --seed 42 --duration 300
  rainmaker serve --ssh :2222
  rainmaker scores`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initSettings)

	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 30, "Tick rate (frames per second)")
	flags.Int64("seed", 0, "RNG seed (0 = random based on time)")
	flags.String("db", "~/.rainmaker/scores.db", "Path to scores database")
	flags.String("config", "", "Path to custom game config YAML")
	flags.String("difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("settings", "", "Path to settings file (default ~/.rainmaker/settings.yaml)")

	bindFlags(flags)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
