// Package jumper implements Momentum Jumper: a side-scrolling charge-and-jump
// platformer over endless procedurally generated floating terrain.
//
// Game is the whole simulation context. It owns the player, camera, world and
// run bookkeeping, and is driven one frame at a time through Step or Advance.
// It never draws and never blocks; renderers read Frame and HUD.
package jumper

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/momentum-jumper/internal/config"
	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper/world"
)

// Phase is the life-cycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseRespawning
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseRespawning:
		return "respawning"
	default:
		return "unknown"
	}
}

// Game implements the jumper simulation.
type Game struct {
	cfg     config.JumperConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	scores  ScoreStore
	runs    RunRecorder

	rng        *rand.Rand // Terrain
	fx         *rand.Rand // Particles, kept apart so effects never shift terrain
	world      *world.World
	difficulty *config.DifficultyManager

	phase  Phase
	time   float64 // Simulated seconds; drives moving tiles and charge timing
	frames uint64

	player  Player
	camera  Camera
	landing []Particle
	trail   []TrailParticle
	ghost   ghostTrail

	hearts              int
	score               int
	best                int
	lastCheckpoint      int // Index of the last reached checkpoint, -1 if none
	lastCheckpointLevel int
	snapshot            *Snapshot

	respawnTimer float64
	relocated    bool
	fade         float64

	gameOver      bool
	gameOverTimer float64
	deaths        int
}

// New creates a game with the given tuning. Call Reset before use.
func New(cfg config.JumperConfig) *Game {
	cfg.Validate()
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
		scores: &MemoryScores{},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "jumper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Momentum Jumper"
}

// SetLogger replaces the logger. A nil logger discards output.
func (g *Game) SetLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
}

// SetScoreStore replaces the best score store and loads the best from it.
func (g *Game) SetScoreStore(s ScoreStore) {
	if s == nil {
		s = &MemoryScores{}
	}
	g.scores = s
	g.best = s.GetBest()
}

// SetRunRecorder registers a sink for finished runs. nil disables recording.
func (g *Game) SetRunRecorder(r RunRecorder) {
	g.runs = r
}

// SetConfig replaces the tuning. It takes effect at the next StartGame.
func (g *Game) SetConfig(cfg config.JumperConfig) {
	cfg.Validate()
	g.cfg = cfg
}

// Config returns the tuning in use.
func (g *Game) Config() config.JumperConfig {
	return g.cfg
}

// Reset seeds the game and returns it to the menu.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.fx = rand.New(rand.NewSource(rc.Seed + 1))
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.world = world.New(g.cfg.World, g.difficulty, g.rng, g.logger)

	g.phase = PhaseMenu
	g.time = 0
	g.frames = 0
	g.hearts = g.cfg.Life.Hearts
	g.score = 0
	g.best = g.scores.GetBest()
	g.lastCheckpoint = -1
	g.lastCheckpointLevel = 0
	g.snapshot = nil
	g.gameOver = false
	g.ghost = newGhostTrail(g.cfg.Life.GhostCapacity)
	g.landing = nil
	g.trail = nil
	g.camera = Camera{}
	g.resetPlayer()
}

// Step applies the frame's intents and advances one tick of 1/TickRate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	return g.Advance(in, 1/float64(g.runtime.TickRate))
}

// Advance applies the frame's intents in order, then simulates dt seconds.
func (g *Game) Advance(in core.InputFrame, dt float64) core.StepResult {
	for _, intent := range in.Intents {
		g.apply(intent)
	}
	g.Update(dt)
	return core.StepResult{State: g.State()}
}

func (g *Game) apply(intent core.Intent) {
	switch intent {
	case core.IntentStartCharge:
		g.StartCharge()
	case core.IntentReleaseCharge:
		g.ReleaseCharge()
	case core.IntentPause:
		g.RequestPause()
	case core.IntentStart:
		g.StartGame()
	case core.IntentLobby:
		g.ReturnToLobby()
	}
}

// Update simulates one frame of dt seconds, clamped to the configured
// maximum. Nothing happens in MENU or PAUSED.
func (g *Game) Update(dt float64) {
	if math.IsNaN(dt) || dt <= 0 {
		return
	}
	dt = math.Min(dt, g.cfg.Physics.MaxDelta)

	switch g.phase {
	case PhaseMenu, PhasePaused:
		return
	case PhaseRespawning:
		g.time += dt
		g.frames++
		g.ghost.advance()
		g.updateRespawn(dt)
		return
	}

	if g.gameOver {
		g.updateGameOver(dt)
		return
	}

	g.time += dt
	g.frames++
	g.ghost.advance()

	g.updateMomentum()
	g.integrate(dt)
	landed := g.resolveCollisions(g.world.Tiles(), dt)
	for _, level := range landed {
		g.world.TriggerNext(level)
	}
	g.updateGrace(dt)

	if g.player.Y > g.voidY() {
		g.playerDeath()
		return
	}

	g.camera.follow(&g.player, g.cfg.World.Width, g.cfg.World.Height)
	g.world.EnsureLevels(g.camera.X)
	g.checkCheckpoints()
	g.lastCheckpoint = g.world.PruneLevels(g.lastCheckpointLevel)

	g.difficulty.Advance(dt)

	g.addTrailParticle()
	g.updateParticles(dt)

	if g.snapshot != nil {
		g.ghost.record(g.player.X, g.player.Y)
	}
}

// voidY is the depth below which the player is lost.
func (g *Game) voidY() float64 {
	return g.cfg.World.Height + g.cfg.World.VoidMargin
}

// State summarizes the run for the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the life-cycle state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// World returns the terrain. Callers must treat it as read-only.
func (g *Game) World() *world.World {
	return g.world
}

// Time returns the simulated time in seconds.
func (g *Game) Time() float64 {
	return g.time
}

// Deaths returns the number of void falls this run.
func (g *Game) Deaths() int {
	return g.deaths
}

// Difficulty returns the current difficulty scalar D.
func (g *Game) Difficulty() float64 {
	return g.difficulty.Level()
}

// Snapshot returns the current respawn snapshot, if any.
func (g *Game) Snapshot() (Snapshot, bool) {
	if g.snapshot == nil {
		return Snapshot{}, false
	}
	return *g.snapshot, true
}
