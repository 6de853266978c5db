package jumper

import (
	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper/world"
)

// TileView is a tile resolved at the frame's time.
type TileView struct {
	Kind    world.TileKind
	Rect    core.Rect
	Ceiling bool
	Reached bool // Checkpoint sensors only
}

// Frame is a read-only snapshot for renderers. Slices are freshly allocated
// and safe to keep.
type Frame struct {
	Phase    Phase
	GameOver bool
	Time     float64

	ViewW, ViewH     float64 // Visible world area
	CameraX, CameraY float64

	Tiles  []TileView // Tiles overlapping the view, plus one screen either side
	Player core.Rect
	Ghost  *core.Rect // nil when no replay is running

	Landing []Particle
	Trail   []TrailParticle

	ShowMomentum bool    // Charging while grounded
	Momentum     float64 // Bar fill in [0, 1]
	Oscillating  bool    // Past the linear ramp

	Fade float64 // Respawn overlay opacity in [0, 1]
}

// HUD carries the scalar read-outs.
type HUD struct {
	Score      int
	Best       int
	Level      int     // floor(D)+1
	Difficulty float64 // Raw D
	Progress   float64 // Toward the next checkpoint, in [0, 1]
	Hearts     int
	MaxHearts  int
}

// Frame returns the render snapshot for the current state.
func (g *Game) Frame() Frame {
	w, h := g.cfg.World.Width, g.cfg.World.Height
	f := Frame{
		Phase:    g.phase,
		GameOver: g.gameOver,
		Time:     g.time,
		ViewW:    w,
		ViewH:    h,
		CameraX:  g.camera.X,
		CameraY:  g.camera.Y,
		Player:   g.player.Rect(),
		Fade:     core.ClampF(g.fade, 0, 1),
	}

	if g.world != nil {
		reached := make(map[int]bool)
		for _, cp := range g.world.Checkpoints() {
			if cp.Reached {
				reached[cp.Index] = true
			}
		}
		lo, hi := g.camera.X-w, g.camera.X+2*w
		for _, t := range g.world.Tiles() {
			left, right := t.SweptBounds()
			if right < lo || left > hi {
				continue
			}
			f.Tiles = append(f.Tiles, TileView{
				Kind:    t.Kind,
				Rect:    t.RectAt(g.time),
				Ceiling: t.Ceiling,
				Reached: t.Kind == world.TileCheckpoint && reached[t.Checkpoint],
			})
		}
	}

	if gf, ok := g.ghost.current(); ok {
		r := core.NewRect(gf.X, gf.Y, g.player.W, g.player.H)
		f.Ghost = &r
	}

	f.Landing = append([]Particle(nil), g.landing...)
	f.Trail = append([]TrailParticle(nil), g.trail...)

	if g.player.Charging && g.player.Grounded {
		f.ShowMomentum = true
		f.Momentum = g.player.Momentum
		f.Oscillating = g.oscillating()
	}
	return f
}

// HUD returns the scalar read-outs.
func (g *Game) HUD() HUD {
	d, level := 0.0, 1
	if g.difficulty != nil {
		d = g.difficulty.Level()
		level = g.difficulty.DisplayLevel()
	}
	progress := 0.0
	if g.world != nil {
		progress = g.Progress()
	}
	return HUD{
		Score:      g.score,
		Best:       g.best,
		Level:      level,
		Difficulty: d,
		Progress:   progress,
		Hearts:     g.hearts,
		MaxHearts:  g.cfg.Life.Hearts,
	}
}
