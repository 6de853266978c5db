package jumper

import "github.com/vovakirdan/momentum-jumper/internal/core"

// Particle tuning.
const (
	landingLife    = 0.4
	landingGravity = 0.3 // Fraction of world gravity
	trailLife      = 0.2
	trailMinSpeed  = 300
	trailAlpha     = 0.6
)

// Particle is a landing dust mote.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
	Alt    bool // Second color variant
}

// TrailParticle is an afterimage left behind by a fast airborne player.
type TrailParticle struct {
	X, Y  float64 // Center
	Size  float64
	Alpha float64
	Life  float64
}

func (g *Game) spawnLandingParticles(x, y float64) {
	count := core.RandomInt(g.fx, 5, 10)
	for i := 0; i < count; i++ {
		g.landing = append(g.landing, Particle{
			X:    x + core.RandomRange(g.fx, -20, 20),
			Y:    y,
			VX:   core.RandomRange(g.fx, -50, 50),
			VY:   core.RandomRange(g.fx, -100, -30),
			Life: landingLife,
			Size: core.RandomRange(g.fx, 3, 6),
			Alt:  g.fx.Float64() > 0.5,
		})
	}
}

func (g *Game) addTrailParticle() {
	p := &g.player
	if p.Grounded || p.Speed() < trailMinSpeed {
		return
	}
	g.trail = append(g.trail, TrailParticle{
		X:     p.X + p.W/2,
		Y:     p.Y + p.H/2,
		Size:  p.W * 0.6,
		Alpha: trailAlpha,
		Life:  trailLife,
	})
}

func (g *Game) updateParticles(dt float64) {
	kept := g.landing[:0]
	for _, pt := range g.landing {
		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt
		pt.VY += g.cfg.Physics.Gravity * landingGravity * dt
		pt.Life -= dt
		if pt.Life > 0 {
			kept = append(kept, pt)
		}
	}
	g.landing = kept

	trail := g.trail[:0]
	for _, pt := range g.trail {
		pt.Life -= dt
		pt.Alpha = pt.Life / trailLife * 0.5
		if pt.Life > 0 {
			trail = append(trail, pt)
		}
	}
	g.trail = trail
}
