package jumper

import (
	"math"

	"github.com/vovakirdan/momentum-jumper/internal/core"
)

// Player is the single controllable box.
type Player struct {
	X, Y        float64 // Top-left corner
	W, H        float64
	VX, VY      float64
	Grounded    bool
	Grace       float64 // Coyote time left after leaving the ground
	Momentum    float64 // Charge level in [0, 1]
	Charging    bool
	ChargeStart float64 // Game time the charge began
	LastX       float64 // Position before this frame's integration
	LastY       float64
}

// Rect returns the player's bounding box.
func (p *Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

func (p *Player) prevRect() core.Rect {
	return core.NewRect(p.LastX, p.LastY, p.W, p.H)
}

// groundedEnough is the jump gate: on the ground or within the grace window.
func (p *Player) groundedEnough() bool {
	return p.Grounded || p.Grace > 0
}

// Speed returns the magnitude of the velocity.
func (p *Player) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// resetPlayer places the player on the spawn ground.
func (g *Game) resetPlayer() {
	size := g.cfg.Player.Size
	g.player = Player{
		X:        g.cfg.Player.SpawnX,
		Y:        g.world.GroundY() - size - 4,
		W:        size,
		H:        size,
		Grounded: true,
	}
	g.player.LastX, g.player.LastY = g.player.X, g.player.Y
}

// StartCharge begins charging a jump. Ignored unless playing and grounded
// (or within the grace window).
func (g *Game) StartCharge() {
	if !g.canAct() || !g.player.groundedEnough() {
		return
	}
	g.player.Charging = true
	g.player.ChargeStart = g.time
	g.player.Momentum = 0
}

// ReleaseCharge converts the charge into a jump. Momentum below the minimum
// fizzles without a jump. The charge ends either way.
func (g *Game) ReleaseCharge() {
	p := &g.player
	if !p.Charging {
		return
	}
	if g.canAct() && p.groundedEnough() && p.Momentum >= g.cfg.Jump.MinMomentum {
		vx, vy := g.jumpVelocity(p.Momentum)
		p.VX, p.VY = vx, vy
		p.Grounded = false
		p.Grace = 0
		g.logger.Debug("jump", "momentum", p.Momentum, "vx", vx, "vy", vy)
	}
	p.Charging = false
	p.Momentum = 0
}

// jumpVelocity maps momentum to the launch velocity. Jumps always go forward.
func (g *Game) jumpVelocity(m float64) (float64, float64) {
	j := g.cfg.Jump
	return j.BaseVX + j.ScaleVX*m, -(j.BaseVY + j.ScaleVY*m)
}

// updateMomentum ramps momentum linearly over the charge window, then
// oscillates it on a triangle wave until release.
func (g *Game) updateMomentum() {
	p := &g.player
	if !p.Charging || !p.groundedEnough() {
		p.Momentum = 0
		return
	}
	p.Momentum = chargeMomentum(g.cfg.Jump.ChargeTime, g.cfg.Jump.OscillationMin,
		g.cfg.Jump.OscillationMax, g.cfg.Jump.OscillationPeriod, g.time-p.ChargeStart)
}

// chargeMomentum returns the momentum after holding for elapsed seconds.
func chargeMomentum(window, oscMin, oscMax, period, elapsed float64) float64 {
	if elapsed < window {
		return core.ClampF(elapsed/window, 0, 1)
	}
	phase := math.Mod(elapsed-window, period) / period
	wave := 1 - math.Abs(math.Mod(phase*2+1, 2)-1)
	return core.ClampF(oscMin+wave*(oscMax-oscMin), 0, 1)
}

// oscillating reports whether the charge has passed the linear ramp.
func (g *Game) oscillating() bool {
	return g.player.Charging && g.time-g.player.ChargeStart >= g.cfg.Jump.ChargeTime
}

// integrate applies gravity or ground friction, then moves the player.
func (g *Game) integrate(dt float64) {
	p := &g.player
	if p.Grounded {
		p.VX *= g.cfg.Physics.GroundFriction
		if math.Abs(p.VX) < g.cfg.Physics.FrictionFloor {
			p.VX = 0
		}
	} else {
		p.VY += g.cfg.Physics.Gravity * dt
	}

	p.LastX, p.LastY = p.X, p.Y
	p.X += p.VX * dt
	p.Y += p.VY * dt
}

// updateGrace refreshes coyote time while grounded and decays it otherwise.
func (g *Game) updateGrace(dt float64) {
	p := &g.player
	if p.Grounded {
		p.Grace = g.cfg.Physics.GroundedGrace
		return
	}
	p.Grace = math.Max(0, p.Grace-dt)
}
