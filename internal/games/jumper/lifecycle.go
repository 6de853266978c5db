package jumper

import (
	"github.com/vovakirdan/momentum-jumper/internal/config"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper/world"
)

// canAct reports whether input can affect the player.
func (g *Game) canAct() bool {
	return g.phase == PhasePlaying && !g.gameOver
}

// StartGame begins a fresh run from the menu: difficulty, score, hearts,
// world and ghost buffers are reset and a snapshot is seeded at spawn.
func (g *Game) StartGame() {
	if g.phase != PhaseMenu {
		return
	}
	g.phase = PhasePlaying
	g.time = 0
	g.frames = 0
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.world = world.New(g.cfg.World, g.difficulty, g.rng, g.logger)
	g.score = 0
	g.hearts = g.cfg.Life.Hearts
	g.deaths = 0
	g.lastCheckpoint = -1
	g.lastCheckpointLevel = 0
	g.gameOver = false
	g.gameOverTimer = 0
	g.respawnTimer = 0
	g.fade = 0
	g.ghost = newGhostTrail(g.cfg.Life.GhostCapacity)
	g.landing = g.landing[:0]
	g.trail = g.trail[:0]

	g.resetPlayer()
	g.world.Init()
	g.camera = Camera{}

	g.snapshot = &Snapshot{
		X:          g.player.X,
		Y:          g.player.Y,
		Difficulty: g.difficulty.Level(),
		Hearts:     g.hearts,
		Score:      0,
	}

	g.logger.Debug("run started", "hearts", g.hearts, "difficulty", g.difficulty.Level())
}

// PauseGame moves PLAYING to PAUSED. No-op from any other state.
func (g *Game) PauseGame() {
	if g.phase != PhasePlaying || g.gameOver {
		return
	}
	g.phase = PhasePaused
}

// ResumeGame moves PAUSED to PLAYING. No-op from any other state.
func (g *Game) ResumeGame() {
	if g.phase != PhasePaused {
		return
	}
	g.phase = PhasePlaying
}

// RequestPause toggles between PLAYING and PAUSED.
func (g *Game) RequestPause() {
	switch g.phase {
	case PhasePlaying:
		g.PauseGame()
	case PhasePaused:
		g.ResumeGame()
	}
}

// ReturnToLobby abandons a paused run and goes to the menu.
func (g *Game) ReturnToLobby() {
	if g.phase != PhasePaused {
		return
	}
	g.finishRun("quit")
	g.phase = PhaseMenu
	g.player.Charging = false
	g.player.Momentum = 0
}

// playerDeath handles a fall into the void.
func (g *Game) playerDeath() {
	if g.hearts > 0 {
		g.hearts--
	}
	g.deaths++
	g.player.Charging = false
	g.player.Momentum = 0
	g.logger.Debug("player died", "hearts", g.hearts, "score", g.score)

	if g.hearts > 0 && g.snapshot != nil {
		g.phase = PhaseRespawning
		g.respawnTimer = g.cfg.Life.RespawnDuration
		g.fade = 0
		g.relocated = false
		g.ghost.startPlayback()
		return
	}

	g.finishRun("out of hearts")
	g.gameOver = true
	g.gameOverTimer = g.cfg.Life.GameOverDelay
}

// finishRun finalizes the best score and reports the run.
func (g *Game) finishRun(reason string) {
	if g.score > g.best {
		g.best = g.score
		g.scores.SetBest(g.best)
	}
	if g.runs != nil {
		g.runs.RecordRun(g.score, g.difficulty.Level())
	}
	g.logger.Debug("run ended", "reason", reason, "score", g.score, "best", g.best, "deaths", g.deaths)
}

// updateGameOver holds the final frame before returning to the menu.
func (g *Game) updateGameOver(dt float64) {
	g.gameOverTimer -= dt
	if g.gameOverTimer <= 0 {
		g.phase = PhaseMenu
	}
}

// updateRespawn runs the fade: out over the first half, relocate at the
// midpoint, in over the second half, then resume play.
func (g *Game) updateRespawn(dt float64) {
	duration := g.cfg.Life.RespawnDuration
	half := duration / 2
	g.respawnTimer -= dt

	switch {
	case g.respawnTimer > half:
		g.fade = (duration - g.respawnTimer) / half
	case g.respawnTimer > 0:
		g.fade = g.respawnTimer / half
		if !g.relocated {
			g.respawnPlayer()
		}
	default:
		if !g.relocated {
			g.respawnPlayer()
		}
		g.fade = 0
		g.phase = PhasePlaying
	}
}

// respawnPlayer moves the player to the snapshot with zero velocity.
func (g *Game) respawnPlayer() {
	g.relocated = true
	if g.snapshot == nil {
		return
	}
	p := &g.player
	p.X, p.Y = g.snapshot.X, g.snapshot.Y
	p.LastX, p.LastY = p.X, p.Y
	p.VX, p.VY = 0, 0
	p.Grounded = true
	p.Momentum = 0
	p.Charging = false
	g.camera.snapTo(p, g.cfg.World.Width)
	g.ghost.clearBuffer()
	g.logger.Debug("player respawned", "x", p.X, "y", p.Y, "hearts", g.hearts)
}
