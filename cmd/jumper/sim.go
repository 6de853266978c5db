package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper"
	"github.com/vovakirdan/momentum-jumper/internal/storage"
)

var (
	flagSimSeconds int
	flagSimJitter  float64
	flagSimRecord  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Play a run with the built-in autopilot, without a terminal UI, and
report how it went. The same --seed always produces the same run.

Examples:
  jumper sim --seed 42
  jumper sim --seed 7 --seconds 300 --jitter 0.1 -v
  jumper sim --difficulty hard --record`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSeconds, "seconds", 120, "Simulated seconds to run at most")
	simCmd.Flags().Float64Var(&flagSimJitter, "jitter", 0.05, "Autopilot momentum error either way")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the scores database")
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger("sim")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := jumper.New(cfg)
	game.SetLogger(logger)

	if flagSimRecord {
		store, openErr := storage.Open(flagDBPath)
		if openErr != nil {
			return openErr
		}
		defer store.Close()
		scores := storage.NewBestScores(store, game.ID(), logger)
		game.SetScoreStore(scores)
		game.SetRunRecorder(scores)
	}

	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	game.StartGame()
	pilot := jumper.NewAutopilot(seed, flagSimJitter)

	frames := flagSimSeconds * flagFPS
	start := time.Now()
	ended := false
	for i := 0; i < frames; i++ {
		game.Step(pilot.Next(game))
		if game.Phase() == jumper.PhaseMenu {
			ended = true
			break
		}
	}
	if !ended && flagSimRecord {
		// Out of time: end the run so it is recorded.
		game.PauseGame()
		game.ReturnToLobby()
	}

	hud := game.HUD()
	logger.Info("simulation finished",
		"seed", seed,
		"sim_time", fmt.Sprintf("%.1fs", game.Time()),
		"wall_time", time.Since(start).Round(time.Millisecond),
	)

	fmt.Printf("Seed:        %d\n", seed)
	fmt.Printf("Game over:   %v\n", ended)
	fmt.Printf("Score:       %d (best %d)\n", hud.Score, hud.Best)
	fmt.Printf("Difficulty:  %.2f (level %d)\n", hud.Difficulty, hud.Level)
	fmt.Printf("Deaths:      %d\n", game.Deaths())
	fmt.Printf("Distance:    %.0f\n", game.Player().X)
	if lvl, ok := game.World().LevelAt(game.Player().X); ok {
		fmt.Printf("Position:    level %d of %d chunks\n", lvl.Index, len(lvl.Chunks))
	}
	fmt.Printf("Levels:      %d generated, %d retained\n",
		game.World().GeneratedCount(), len(game.World().Levels()))
	return nil
}
