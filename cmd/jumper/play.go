package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/momentum-jumper/internal/config"
	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper"
	"github.com/vovakirdan/momentum-jumper/internal/platform/tui"
	"github.com/vovakirdan/momentum-jumper/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start Momentum Jumper in this terminal.

Controls:
  Space/Up   - Start charging, press again to jump
  Enter      - Start a run
  P/Esc      - Pause / resume
  B          - Back to the lobby (while paused)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Progression at half speed
  normal - Default progression
  hard   - Progression at 1.5x, starting at level 2
  fixed  - No progression

Game events are logged to ~/.jumper/jumper.log.

Examples:
  jumper play
  jumper play --difficulty easy
  jumper play --config ./tuning.yaml --watch`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload --config on change (applies at the next run)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagWatch && flagConfig == "" {
		return errors.New("--watch needs --config")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog := fileLogger()
	defer closeLog()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := jumper.New(cfg)
	game.SetLogger(logger)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		defer store.Close()
		scores := storage.NewBestScores(store, game.ID(), logger)
		game.SetScoreStore(scores)
		game.SetRunRecorder(scores)
	}

	var reload chan config.JumperConfig
	if flagWatch {
		watcher, watchErr := config.NewWatcher(flagConfig)
		if watchErr != nil {
			return watchErr
		}
		defer watcher.Close()
		reload = make(chan config.JumperConfig, 1)
		go forwardReloads(watcher, reload, logger)
	}

	if err := tui.Run(game, rc, logger, reload); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// forwardReloads reloads the config on every change and passes it on.
// Broken edits are logged and skipped.
func forwardReloads(w *config.Watcher, out chan config.JumperConfig, logger *log.Logger) {
	defer close(out)
	for {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			cfg, err := loadConfig()
			if err != nil {
				logger.Warn("config reload failed", "path", path, "err", err)
				continue
			}
			logger.Info("config changed", "path", path)
			select {
			case out <- cfg:
			default:
				// Drop the stale pending one.
				select {
				case <-out:
				default:
				}
				out <- cfg
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Warn("config watcher error", "err", err)
		}
	}
}

// fileLogger logs to ~/.jumper/jumper.log since the terminal belongs to
// the game. Falls back to discarding output.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".jumper")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "jumper.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "jumper",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }
}
