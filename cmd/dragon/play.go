package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var (
	flagLogFile string
	flagPlayer  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game on the main menu.

Controls:
  P        - Play (again)
  Q        - Quit from the menu or the death screen
  Space    - Flap
  Ctrl+C   - Exit at any time

The playfield is 80x50 characters; a smaller terminal clips it.

Examples:
  dragon play
  dragon play --seed 42
  dragon play --config ./my-dragon.yaml
  dragon play --log-file ./dragon.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name to record scores under (default: current user)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt := runtimeConfig(cfg)

	if err := tui.CheckTerminal(int(os.Stdout.Fd()), rt); err != nil {
		logger.Warn("playfield may be clipped", "error", err)
	}

	// The game owns the terminal; its logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	gameLogger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		Prefix:          "dragon",
		Level:           logger.GetLevel(),
	})

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	game := gameFactory(cfg)(rt.Seed)
	logger.Debug("starting game", "seed", rt.Seed, "fps", rt.TickRate)

	if err := tui.Run(game, store, rt,
		tui.WithPlayer(playerName()),
		tui.WithLogger(gameLogger),
	); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playerName returns the --player flag or the current user's name.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
