package jumper

import (
	"math"

	"github.com/vovakirdan/momentum-jumper/internal/core"
	"github.com/vovakirdan/momentum-jumper/internal/games/jumper/world"
)

// Contact classification tolerances.
const (
	landingTolerance = 0.1
	sideTolerance    = 0.05
)

// resolveCollisions resolves the player against every solid tile in order.
// Contact direction is decided by comparing last frame's player box with
// last frame's tile box, so fast motion cannot tunnel into the wrong side.
// It returns the levels whose tiles were landed on.
func (g *Game) resolveCollisions(tiles []world.Tile, dt float64) []int {
	p := &g.player
	col := g.cfg.Collision
	prev := p.prevRect()
	box := p.Rect()
	prevTime := g.time - dt

	var landed []int
	wasGrounded := p.Grounded
	landedThisFrame := false
	p.Grounded = false

	for _, tile := range tiles {
		if !tile.Solid() {
			continue
		}

		cur := tile.RectAt(g.time)
		if !box.Overlaps(cur, col.Epsilon) {
			continue
		}
		old := tile.RectAt(prevTime)

		landing := prev.Bottom() <= old.Y+landingTolerance && box.Bottom() >= cur.Y
		ceiling := prev.Y >= old.Bottom()-landingTolerance && box.Y < cur.Bottom()
		leftWall := prev.Right() <= old.X+sideTolerance && box.Right() > cur.X
		rightWall := prev.X >= old.Right()-sideTolerance && box.X < cur.Right()
		isWall := tile.Kind == world.TileWall || tile.Kind == world.TileMoving ||
			(tile.Kind == world.TilePlatform && !tile.Ceiling)

		switch {
		case landing && p.VY >= 0:
			p.Y = cur.Y - p.H
			// Standing frames keep their ground friction; only the touchdown slides.
			if !wasGrounded && !landedThisFrame {
				g.spawnLandingParticles(p.X+p.W/2, p.Y+p.H)
				slide := core.ClampF(math.Abs(p.VX)*col.SlideFactor, col.SlideMin, col.SlideMax)
				p.VX = core.Sign(p.VX) * slide
			}
			landedThisFrame = true
			p.Grounded = true
			p.VY = 0
			if tile.Kind == world.TileMoving {
				p.X += tile.VelocityAt(g.time) * dt
			}
			landed = appendUnique(landed, tile.Level)

		case ceiling && p.VY < 0 && tile.Ceiling:
			p.Y = cur.Bottom()
			p.VY = col.CeilingPushDown

		case isWall && (leftWall || rightWall):
			if leftWall {
				p.X = cur.X - p.W
			} else {
				p.X = cur.Right()
			}
			if p.Grounded {
				p.VX = 0
			} else {
				p.VX = -p.VX * col.WallBounceFactor
				p.VY = math.Min(p.VY, col.WallBounceNudge)
			}
		}

		box = p.Rect()
	}
	return landed
}

func appendUnique(s []int, v int) []int {
	for _, x := range s {
		if x == v {
			return s
		}
	}
	return append(s, v)
}
