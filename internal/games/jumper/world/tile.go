// Package world generates and retains the jumper's endless terrain: tiles,
// levels and checkpoints built from a weighted library of chunk templates.
package world

import (
	"math"

	"github.com/vovakirdan/momentum-jumper/internal/core"
)

// TileKind identifies what a tile does on contact.
type TileKind int

const (
	TilePlatform   TileKind = iota // Solid from every side; ceiling platforms also stop upward motion
	TileWall                       // Tall obstacle, bounced off when airborne
	TileMoving                     // Platform oscillating horizontally around its base x
	TileCheckpoint                 // Sensor only, never collides
)

// String returns the tile kind name.
func (k TileKind) String() string {
	switch k {
	case TilePlatform:
		return "platform"
	case TileWall:
		return "wall"
	case TileMoving:
		return "moving"
	case TileCheckpoint:
		return "checkpoint"
	default:
		return "unknown"
	}
}

// Motion describes a moving tile's oscillation: x(t) = baseX + sin(t*Speed)*Range.
type Motion struct {
	Range float64 // Amplitude in world units
	Speed float64 // Angular speed in radians per second
}

// Tile is one piece of terrain. Tiles never change after generation; a moving
// tile's position is derived from absolute time with RectAt.
type Tile struct {
	Kind       TileKind
	Level      int       // Owning level index
	Rect       core.Rect // Base rectangle
	Ceiling    bool      // Platform blocks the player from below
	Motion     Motion    // Only meaningful for TileMoving
	Checkpoint int       // Index into the checkpoint list for TileCheckpoint
}

// RectAt returns the tile's rectangle at absolute time now.
func (t Tile) RectAt(now float64) core.Rect {
	if t.Kind != TileMoving {
		return t.Rect
	}
	r := t.Rect
	r.X += math.Sin(now*t.Motion.Speed) * t.Motion.Range
	return r
}

// VelocityAt returns the tile's horizontal velocity at absolute time now.
func (t Tile) VelocityAt(now float64) float64 {
	if t.Kind != TileMoving {
		return 0
	}
	return math.Cos(now*t.Motion.Speed) * t.Motion.Range * t.Motion.Speed
}

// Solid reports whether the tile takes part in physical collision.
func (t Tile) Solid() bool {
	return t.Kind != TileCheckpoint
}

// SweptBounds returns the horizontal interval the tile can ever occupy.
func (t Tile) SweptBounds() (float64, float64) {
	if t.Kind != TileMoving {
		return t.Rect.X, t.Rect.Right()
	}
	r := math.Abs(t.Motion.Range)
	return t.Rect.X - r, t.Rect.Right() + r
}

// Checkpoint is a progress marker at the tail of each level.
type Checkpoint struct {
	X, Y    float64 // X is the crossing line, Y the ground height it stands on
	Index   int     // Position in the retained checkpoint list
	Level   int     // Owning level index
	Reached bool    // Monotonic within a run
}

// ChunkSpan records one chunk placed inside a level.
type ChunkSpan struct {
	Type   ChunkType
	StartX float64
	Width  float64
}

// Level is a contiguous span [StartX, StartX+Length) of generated terrain.
type Level struct {
	Index         int
	StartX        float64
	Length        float64
	Difficulty    float64     // D the level was generated with
	ExitY         float64     // Ground height at the level's end
	Checkpoint    int         // Index of the terminating checkpoint
	GeneratedNext bool        // Landing here already triggered forward generation
	Chunks        []ChunkSpan // Including intro, breather and closing runways
}

// End returns the x just past the level.
func (l Level) End() float64 {
	return l.StartX + l.Length
}

// Contains reports whether x lies inside the level span.
func (l Level) Contains(x float64) bool {
	return x >= l.StartX && x < l.End()
}
