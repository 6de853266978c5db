package jumper

import (
	"math"

	"github.com/vovakirdan/momentum-jumper/internal/core"
)

// Camera smoothing and framing.
const (
	cameraLeadX    = 0.3 // Player sits 30% in from the left edge
	cameraLerpX    = 0.1
	cameraLerpY    = 0.05
	deadZoneTop    = 0.3
	deadZoneBottom = 0.7
)

// Camera is a smoothed follower of the player.
type Camera struct {
	X, Y             float64
	TargetX, TargetY float64
}

// follow moves the camera a fraction of the way toward the player. The
// vertical target only moves when the player leaves the dead zone.
func (c *Camera) follow(p *Player, viewW, viewH float64) {
	c.TargetX = math.Max(0, p.X-viewW*cameraLeadX)
	c.X = core.Lerp(c.X, c.TargetX, cameraLerpX)

	screenY := p.Y - c.Y
	switch {
	case screenY < viewH*deadZoneTop:
		c.TargetY = p.Y - viewH*deadZoneTop
	case screenY > viewH*deadZoneBottom:
		c.TargetY = p.Y - viewH*deadZoneBottom
	}
	c.TargetY = math.Max(0, c.TargetY)
	c.Y = core.Lerp(c.Y, c.TargetY, cameraLerpY)
}

// snapTo jumps straight to the framing for the player, used after respawn.
func (c *Camera) snapTo(p *Player, viewW float64) {
	c.X = p.X - viewW*cameraLeadX
	c.Y = 0
	c.TargetX = math.Max(0, c.X)
	c.TargetY = 0
}
