package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/momentum-jumper/internal/games/jumper/world"
)

var flagChunksD float64

var chunksCmd = &cobra.Command{
	Use:   "chunks",
	Short: "List the terrain templates",
	Long: `Shows every terrain template with its unlock threshold and, at the
given difficulty, its selection weight and the chance it is picked.

Examples:
  jumper chunks
  jumper chunks --at 2.5`,
	Args: cobra.NoArgs,
	Run:  runChunks,
}

func init() {
	chunksCmd.Flags().Float64Var(&flagChunksD, "at", 0, "Difficulty D to evaluate weights at")
}

func runChunks(_ *cobra.Command, _ []string) {
	defs := world.Registry()

	total := 0.0
	for _, def := range defs {
		if def.Eligible(flagChunksD) {
			total += def.Weight(flagChunksD)
		}
	}

	maxName := len("Template")
	for _, def := range defs {
		maxName = max(maxName, len(def.Type.String()))
	}

	fmt.Printf("Terrain templates at D=%.2f:\n\n", flagChunksD)
	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxName, "Template", "Unlock", "Weight", "Chance")
	fmt.Printf("  %-*s  %-7s  %-7s  %s\n", maxName, "--------", "------", "------", "------")
	for _, def := range defs {
		weight := def.Weight(flagChunksD)
		chance := "locked"
		if def.Eligible(flagChunksD) && total > 0 {
			chance = fmt.Sprintf("%5.1f%%", 100*weight/total)
		}
		fmt.Printf("  %-*s  %-7.1f  %-7.2f  %s\n", maxName, def.Type, def.MinD, weight, chance)
	}
}
