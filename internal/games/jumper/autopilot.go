package jumper

import (
	"math"
	"math/rand"
	"sort"

	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper/world"
)

// Autopilot is a scripted input source for headless runs. Standing still on
// a platform it starts charging, and releases once the momentum is enough to
// carry it onto the next platform ahead.
type Autopilot struct {
	rng    *rand.Rand
	target float64
	jitter float64
}

// NewAutopilot creates an autopilot. jitter randomizes the planned momentum
// by up to that amount either way, so runs are not perfect.
func NewAutopilot(seed int64, jitter float64) *Autopilot {
	return &Autopilot{
		rng:    rand.New(rand.NewSource(seed)),
		jitter: jitter,
	}
}

// Next returns the intents for the coming frame.
func (a *Autopilot) Next(g *Game) core.InputFrame {
	in := core.NewInputFrame()
	if g.Phase() != PhasePlaying || g.State().GameOver {
		return in
	}

	p := g.Player()
	if !p.Charging {
		if p.Grounded && math.Abs(p.VX) < 1 {
			a.target = a.plan(g, p)
			in.Push(core.IntentStartCharge)
		}
		return in
	}
	if p.Momentum >= a.target {
		in.Push(core.IntentReleaseCharge)
	}
	return in
}

// plan picks the smallest momentum whose jump arc lands on the nearest
// reachable surface ahead of the one the player stands on, passing over any
// wall in between. Wall tops count as surfaces.
func (a *Autopilot) plan(g *Game, p Player) float64 {
	target := a.planFor(g, p, g.World().Tiles())
	if a.jitter > 0 {
		target += core.RandomRange(a.rng, -a.jitter, a.jitter)
	}
	return core.ClampF(target, g.Config().Jump.MinMomentum, maxPlannedMomentum)
}

// maxPlannedMomentum stays just below the top of the ramp so the release
// happens before the charge starts oscillating.
const maxPlannedMomentum = 0.98

// candidateSurfaces limits how far ahead the planner looks.
const candidateSurfaces = 4

// wallClearance is the height the feet keep above a wall top when passing it.
const wallClearance = 2

type surface struct {
	rect core.Rect
	wall bool
}

func (a *Autopilot) planFor(g *Game, p Player, tiles []world.Tile) float64 {
	now := g.Time()
	feet := p.Y + p.H

	supportRight := p.X + p.W
	var surfaces []surface
	var walls []core.Rect
	for _, t := range tiles {
		if !landable(t) {
			continue
		}
		r := t.RectAt(now)
		if t.Kind == world.TileWall {
			walls = append(walls, r)
		}
		if math.Abs(r.Y-feet) < 2 && r.X <= p.X+p.W && r.Right() >= p.X {
			supportRight = math.Max(supportRight, r.Right())
		}
		surfaces = append(surfaces, surface{rect: r, wall: t.Kind == world.TileWall})
	}

	ahead := surfaces[:0]
	for _, s := range surfaces {
		if s.rect.X > supportRight-1 {
			ahead = append(ahead, s)
		}
	}
	sort.Slice(ahead, func(i, j int) bool { return ahead[i].rect.X < ahead[j].rect.X })
	if len(ahead) > candidateSurfaces {
		ahead = ahead[:candidateSurfaces]
	}
	// Wall tops are narrow; land on them only when nothing else is reachable.
	sort.SliceStable(ahead, func(i, j int) bool { return !ahead[i].wall && ahead[j].wall })

	for _, next := range ahead {
		aimX := next.rect.X + math.Min(next.rect.W/2, p.W)
		if covered(walls, next.rect, aimX, p.W) {
			continue
		}
		if m, ok := a.momentumFor(g, p, next.rect, aimX, walls); ok {
			return m
		}
	}
	return maxPlannedMomentum
}

// covered reports whether a wall standing on surface occupies the landing
// spot [x, x+w).
func covered(walls []core.Rect, surface core.Rect, x, w float64) bool {
	for _, wall := range walls {
		if wall == surface {
			continue
		}
		if wall.X < x+w && wall.Right() > x && wall.Y < surface.Y {
			return true
		}
	}
	return false
}

// momentumFor scans the momentum range for the first jump that lands with the
// player's left edge in [aimX, surface.Right()) and clears every wall before
// the landing spot.
func (a *Autopilot) momentumFor(g *Game, p Player, surface core.Rect, aimX float64, walls []core.Rect) (float64, bool) {
	cfg := g.Config()
	gravity := cfg.Physics.Gravity
	feet := p.Y + p.H

	for m := cfg.Jump.MinMomentum; m <= maxPlannedMomentum; m += 0.01 {
		vx, vy := g.jumpVelocity(m)
		disc := vy*vy + 2*gravity*(surface.Y-feet)
		if disc < 0 {
			continue
		}
		flight := (-vy + math.Sqrt(disc)) / gravity
		landX := p.X + vx*flight
		if landX < aimX {
			continue
		}
		if landX >= surface.Right() {
			return 0, false
		}
		if clearsWalls(walls, surface, p, vx, vy, gravity, landX) {
			return m, true
		}
	}
	return 0, false
}

// clearsWalls reports whether the jump arc passes over every wall between the
// player and landX. The feet follow a y-down parabola, so over a wall they
// sit lowest at one of the two ends.
func clearsWalls(walls []core.Rect, surface core.Rect, p Player, vx, vy, gravity, landX float64) bool {
	feet := p.Y + p.H
	front := p.X + p.W
	apexHead := p.Y - vy*vy/(2*gravity)
	feetAt := func(x float64) float64 {
		t := x / vx
		return feet + vy*t + gravity*t*t/2
	}

	for _, wall := range walls {
		if wall.Right() <= front || wall.X >= landX+p.W {
			continue
		}
		if wall.Y >= feet || wall.Bottom() <= apexHead {
			continue
		}
		top := wall.Y - wallClearance
		if feetAt(math.Max(0, wall.X-front)) > top {
			return false
		}
		// Landing on the wall itself ends the arc on its top.
		if wall != surface && feetAt(math.Min(wall.Right()-p.X, landX-p.X)) > top {
			return false
		}
	}
	return true
}

// landable reports whether the top of the tile can be stood on.
func landable(t world.Tile) bool {
	switch t.Kind {
	case world.TileMoving, world.TileWall:
		return true
	case world.TilePlatform:
		return !t.Ceiling
	}
	return false
}
