package jumper

import (
	"math"
	"testing"
)

func TestCameraFollow(t *testing.T) {
	tests := []struct {
		name    string
		px, py  float64
		wantX   float64
		wantTgY float64
	}{
		{"near start clamps to zero", 50, 300, 0, 0},
		{"lerps toward lead", 1000, 300, 0.1 * (1000 - 384*0.3), 0},
		{"below dead zone", 100, 600, 0, 600 - 640*0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Camera
			p := Player{X: tt.px, Y: tt.py}
			c.follow(&p, 384, 640)
			if math.Abs(c.X-tt.wantX) > 1e-9 {
				t.Errorf("camera x = %v, want %v", c.X, tt.wantX)
			}
			if math.Abs(c.TargetY-tt.wantTgY) > 1e-9 {
				t.Errorf("target y = %v, want %v", c.TargetY, tt.wantTgY)
			}
		})
	}
}

func TestCameraSnap(t *testing.T) {
	c := Camera{X: 5, Y: 80, TargetY: 80}
	p := Player{X: 2000}
	c.snapTo(&p, 384)
	if math.Abs(c.X-(2000-384*0.3)) > 1e-9 || c.Y != 0 || c.TargetY != 0 {
		t.Errorf("snapped camera = %+v", c)
	}
}

func TestGhostTrail(t *testing.T) {
	g := newGhostTrail(3)
	for i := 0; i < 5; i++ {
		g.record(float64(i), 0)
	}
	if len(g.buffer) != 3 {
		t.Fatalf("buffer = %d, want capped at 3", len(g.buffer))
	}

	if _, ok := g.current(); ok {
		t.Error("no playback before startPlayback")
	}

	g.startPlayback()
	g.clearBuffer()
	if len(g.playback) != 3 {
		t.Fatalf("playback = %d, want 3", len(g.playback))
	}

	var xs []float64
	for i := 0; i < 5; i++ {
		g.advance()
		if f, ok := g.current(); ok {
			xs = append(xs, f.X)
		}
	}
	if len(xs) != 3 || xs[0] != 0 || xs[2] != 2 {
		t.Errorf("replayed xs = %v, want [0 1 2]", xs)
	}

	g.startPlayback()
	if _, ok := g.current(); ok {
		t.Error("an empty recording should replay nothing")
	}
}

func TestParticlesExpire(t *testing.T) {
	g := newTestGame(1)
	g.spawnLandingParticles(100, 200)
	if len(g.landing) < 5 {
		t.Fatalf("spawned %d particles", len(g.landing))
	}

	g.player.Grounded = false
	g.player.VX, g.player.VY = 400, 0
	g.addTrailParticle()
	if len(g.trail) != 1 {
		t.Fatalf("trail = %d, want 1", len(g.trail))
	}
	g.player.VX = 100
	g.addTrailParticle()
	if len(g.trail) != 1 {
		t.Error("slow player should not leave a trail")
	}

	for i := 0; i < 30; i++ {
		g.updateParticles(1.0 / 60)
	}
	if len(g.landing) != 0 || len(g.trail) != 0 {
		t.Errorf("particles alive after 0.5s: %d landing, %d trail", len(g.landing), len(g.trail))
	}
}

func TestParticlesDoNotShiftTerrain(t *testing.T) {
	plain := newTestGame(77)
	noisy := newTestGame(77)
	for i := 0; i < 50; i++ {
		noisy.spawnLandingParticles(0, 0)
	}

	plain.world.GenerateNext()
	noisy.world.GenerateNext()

	a, b := plain.world.Tiles(), noisy.world.Tiles()
	if len(a) != len(b) {
		t.Fatalf("tile counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tile %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}
