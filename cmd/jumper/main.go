// jumper is Momentum Jumper: a charge-and-jump platformer over endless
// procedurally generated terrain, played in the terminal.
//
// Usage:
//
//	jumper play              - Play in this terminal
//	jumper sim               - Run a headless autopilot game
//	jumper scores            - Show the best runs
//	jumper chunks            - List the terrain templates
//	jumper serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible terrain
//	--db <path>     - Set database path (default: ~/.jumper/jumper.db)
//	--config <path> - Use a custom tuning YAML
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/momentum-jumper/internal/config"
	"github.com/vovakirdan/momentum-jumper/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Momentum Jumper - charge, leap and land in your terminal",
	Long: `Momentum Jumper is a side-scrolling platformer. Hold a charge to build
momentum, release to leap forward, and land on the floating terrain ahead.
Every checkpoint scores a point and makes the world harder.

Available commands:
  play     - Play in this terminal
  sim      - Headless autopilot run
  scores   - View the best runs
  chunks   - List terrain templates
  serve    - Start SSH server for remote play

Examples:
  jumper play
  jumper play --difficulty hard
  jumper sim --seed 42 --seconds 120
  jumper chunks --difficulty 1.5
  jumper serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log game events at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(chunksCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the stderr logger used by non-interactive commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig loads the tuning and applies the difficulty preset flag.
func loadConfig() (config.JumperConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}
