package jumper

import (
	"math"

	"github.com/vovakirdan/momentum-jumper/internal/core"
)

// respawnLift keeps a respawned player clear of the ground it stands on.
const respawnLift = 2

// Snapshot is the respawn state captured at the last checkpoint.
type Snapshot struct {
	X, Y       float64
	Difficulty float64
	Hearts     int
	Score      int
}

// checkCheckpoints marks every unreached checkpoint the player has passed.
func (g *Game) checkCheckpoints() {
	p := &g.player
	for _, cp := range g.world.Checkpoints() {
		if cp.Reached || p.X <= cp.X {
			continue
		}
		if !g.world.MarkReached(cp.Index) {
			continue
		}

		g.score++
		g.lastCheckpoint = cp.Index
		g.lastCheckpointLevel = cp.Level
		bonus := g.difficulty.CheckpointReached()

		g.snapshot = &Snapshot{
			X:          cp.X - p.W*0.5,
			Y:          cp.Y - p.H - respawnLift,
			Difficulty: g.difficulty.Level(),
			Hearts:     g.hearts,
			Score:      g.score,
		}
		g.ghost.clearBuffer()

		if g.score > g.best {
			g.best = g.score
			g.scores.SetBest(g.best)
		}

		g.logger.Debug("checkpoint reached",
			"index", cp.Index,
			"level", cp.Level,
			"score", g.score,
			"bonus", bonus,
			"difficulty", g.difficulty.Level())
	}
}

// Progress returns how far the player is between the last reached checkpoint
// and the next unreached one, in [0, 1]. With no checkpoint ahead it is 1.
func (g *Game) Progress() float64 {
	start, end := 0.0, 0.0
	haveNext := false
	for _, cp := range g.world.Checkpoints() {
		if cp.Index == g.lastCheckpoint {
			start = cp.X
		}
		if !cp.Reached && !haveNext {
			end = cp.X
			haveNext = true
		}
	}
	if !haveNext {
		return 1
	}
	span := math.Max(1, end-start)
	return core.ClampF((g.player.X-start)/span, 0, 1)
}
