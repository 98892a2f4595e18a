// dragon is Flappy Dragon, a terminal game: flap to stay airborne and
// thread the gaps of the walls scrolling toward you.
//
// Usage:
//
//	dragon play             - Play in this terminal
//	dragon scores           - Show recorded runs
//	dragon serve            - Serve the game over SSH
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search path, then built-in)
//	--fps <rate>        - Frames rendered per second (default: 60)
//	--seed <value>      - RNG seed for reproducible obstacles in play
//	--db <path>         - Scores database (default: ~/.dragon/scores.db, "" disables)
//	--log-level <level> - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

// logger reports to stderr outside the game screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "dragon",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - flap through the walls in your terminal",
	Long: `Flappy Dragon is a terminal game. Your dragon falls under gravity;
tap SPACE to flap and steer it through the gaps of the walls ahead.
Every wall passed scores a point and makes the next gap smaller.

Available commands:
  play     - Play in this terminal
  scores   - View recorded runs
  serve    - Start an SSH server for remote play

Examples:
  dragon play
  dragon play --seed 42
  dragon scores
  dragon serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frames rendered per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for play (0 = random based on time; serve seeds every session from the clock)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dragon/scores.db", "Path to scores database (empty disables scores)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the game config named by --config or found on the
// search path.
func loadConfig() (config.DragonConfig, error) {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// runtimeConfig derives the frame driver settings from the game config.
func runtimeConfig(cfg config.DragonConfig) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  cfg.Screen.Width,
		ScreenH:  cfg.Screen.Height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// gameFactory creates games that each own a random source.
func gameFactory(cfg config.DragonConfig) tui.GameFactory {
	return func(seed int64) tui.Game {
		return dragon.New(cfg, rand.New(rand.NewSource(seed)))
	}
}

// openStore opens the scores database. Failure is reported and the game
// runs without recording scores.
func openStore() *storage.Store {
	if flagDBPath == "" {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
