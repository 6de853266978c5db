package world

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/momentum-jumper/internal/core"
)

// ChunkType identifies a terrain template.
type ChunkType int

const (
	ChunkNone ChunkType = iota - 1
	ChunkRunway
	ChunkSmallHop
	ChunkStepUp
	ChunkStepDown
	ChunkMediumGap
	ChunkDoubleHop
	ChunkStaircaseUp
	ChunkStaircaseDown
	ChunkPitJump
	ChunkWallHop
	ChunkPrecisionGap
	ChunkCeilingRun
	ChunkZigzag
	ChunkMovingBridge
	ChunkBounceCorridor
	ChunkGauntlet
	ChunkTiming
	ChunkNarrowPath
	ChunkWallMaze
)

var chunkNames = map[ChunkType]string{
	ChunkRunway:         "runway",
	ChunkSmallHop:       "small_hop",
	ChunkStepUp:         "step_up",
	ChunkStepDown:       "step_down",
	ChunkMediumGap:      "medium_gap",
	ChunkDoubleHop:      "double_hop",
	ChunkStaircaseUp:    "staircase_up",
	ChunkStaircaseDown:  "staircase_down",
	ChunkPitJump:        "pit_jump",
	ChunkWallHop:        "wall_hop",
	ChunkPrecisionGap:   "precision_gap",
	ChunkCeilingRun:     "ceiling_run",
	ChunkZigzag:         "zigzag",
	ChunkMovingBridge:   "moving_bridge",
	ChunkBounceCorridor: "bounce_corridor",
	ChunkGauntlet:       "gauntlet",
	ChunkTiming:         "timing",
	ChunkNarrowPath:     "narrow_path",
	ChunkWallMaze:       "wall_maze",
}

// String returns the template name.
func (c ChunkType) String() string {
	if name, ok := chunkNames[c]; ok {
		return name
	}
	return "none"
}

// minChunkWeight keeps every eligible template selectable.
const minChunkWeight = 0.5

// ChunkDef is one entry of the template registry.
type ChunkDef struct {
	Type   ChunkType
	MinD   float64 // Unlock threshold
	weight func(d float64) float64
	build  func(b *chunkBuilder) Chunk
}

// Weight returns the selection weight at difficulty d, floored at 0.5.
func (c ChunkDef) Weight(d float64) float64 {
	return math.Max(minChunkWeight, c.weight(d))
}

// Eligible reports whether the template is unlocked at difficulty d.
func (c ChunkDef) Eligible(d float64) bool {
	return d >= c.MinD
}

var chunkDefs = []ChunkDef{
	{ChunkRunway, 0, func(d float64) float64 { return math.Max(1, 8-d*3) }, buildRunway},
	{ChunkSmallHop, 0, func(d float64) float64 { return math.Max(2, 10-d*2) }, buildSmallHop},
	{ChunkStepUp, 0, func(d float64) float64 { return math.Max(2, 8-d*1.5) }, buildStepUp},
	{ChunkStepDown, 0, func(d float64) float64 { return math.Max(2, 8-d*1.5) }, buildStepDown},
	{ChunkMediumGap, 0.3, func(d float64) float64 { return 6 + d*0.5 }, buildMediumGap},
	{ChunkDoubleHop, 0.4, func(d float64) float64 { return 5 + d*0.5 }, buildDoubleHop},
	{ChunkStaircaseUp, 0.5, func(d float64) float64 { return 5 + d*0.3 }, buildStaircaseUp},
	{ChunkStaircaseDown, 0.5, func(d float64) float64 { return 5 + d*0.3 }, buildStaircaseDown},
	{ChunkPitJump, 0.6, func(d float64) float64 { return 5 + d*0.4 }, buildPitJump},
	{ChunkWallHop, 0.7, func(d float64) float64 { return 4 + d*0.5 }, buildWallHop},
	{ChunkPrecisionGap, 1.2, func(d float64) float64 { return 3 + (d-1.2)*0.8 }, buildPrecisionGap},
	{ChunkCeilingRun, 1.0, func(d float64) float64 { return 4 + (d-1.0)*0.5 }, buildCeilingRun},
	{ChunkZigzag, 1.3, func(d float64) float64 { return 4 + (d-1.3)*0.6 }, buildZigzag},
	{ChunkMovingBridge, 1.5, func(d float64) float64 { return 3 + (d-1.5)*0.7 }, buildMovingBridge},
	{ChunkBounceCorridor, 1.5, func(d float64) float64 { return 3 + (d-1.5)*0.6 }, buildBounceCorridor},
	{ChunkGauntlet, 2.0, func(d float64) float64 { return 2 + (d-2.0)*0.8 }, buildGauntlet},
	{ChunkTiming, 2.2, func(d float64) float64 { return 2 + (d-2.2)*0.7 }, buildTiming},
	{ChunkNarrowPath, 2.5, func(d float64) float64 { return 2 + (d-2.5)*0.6 }, buildNarrowPath},
	{ChunkWallMaze, 2.8, func(d float64) float64 { return 2 + (d-2.8)*0.5 }, buildWallMaze},
}

// Registry returns the template registry in declaration order.
func Registry() []ChunkDef {
	out := make([]ChunkDef, len(chunkDefs))
	copy(out, chunkDefs)
	return out
}

func lookupChunk(t ChunkType) ChunkDef {
	for _, def := range chunkDefs {
		if def.Type == t {
			return def
		}
	}
	return chunkDefs[0]
}

// SelectChunkType draws a template by weight among those unlocked at d.
// When more than two are unlocked the previous template is excluded.
func SelectChunkType(rng *rand.Rand, d float64, last ChunkType) ChunkType {
	candidates := make([]ChunkDef, 0, len(chunkDefs))
	for _, def := range chunkDefs {
		if def.Eligible(d) {
			candidates = append(candidates, def)
		}
	}
	if len(candidates) > 2 && last != ChunkNone {
		filtered := candidates[:0:0]
		for _, def := range candidates {
			if def.Type != last {
				filtered = append(filtered, def)
			}
		}
		candidates = filtered
	}

	total := 0.0
	for _, def := range candidates {
		total += def.Weight(d)
	}

	r := rng.Float64() * total
	for _, def := range candidates {
		r -= def.Weight(d)
		if r <= 0 {
			return def.Type
		}
	}
	return ChunkRunway
}

// Chunk is the output of one template: tiles, the width they span and the
// ground height the next chunk starts from.
type Chunk struct {
	Type  ChunkType
	Tiles []Tile
	Width float64
	ExitY float64
}

// Band is the vertical range chunk ground heights are kept in.
type Band struct {
	High float64 // Smallest y (highest ground)
	Low  float64 // Largest y (lowest ground)
}

// Clamp restricts y to the band.
func (b Band) Clamp(y float64) float64 {
	return core.ClampF(y, b.High, b.Low)
}

// GenerateChunk builds one chunk of type t for the given level. The entry
// height is clamped into the band first.
func GenerateChunk(rng *rand.Rand, tileSize float64, band Band, t ChunkType, level int, startX, entryY, d float64) Chunk {
	b := &chunkBuilder{
		rng:    rng,
		tile:   tileSize,
		band:   band,
		level:  level,
		startX: startX,
		entryY: band.Clamp(entryY),
		d:      d,
	}
	def := lookupChunk(t)
	chunk := def.build(b)
	chunk.Type = def.Type
	return chunk
}

// chunkBuilder accumulates the tiles of a single chunk.
type chunkBuilder struct {
	rng    *rand.Rand
	tile   float64
	band   Band
	level  int
	startX float64
	entryY float64
	d      float64
	tiles  []Tile
}

// span returns a random length in tile units.
func (b *chunkBuilder) span(min, max float64) float64 {
	return b.tile * core.RandomRange(b.rng, min, max)
}

func (b *chunkBuilder) platform(x, y, w, h float64) {
	b.tiles = append(b.tiles, Tile{Kind: TilePlatform, Level: b.level, Rect: core.NewRect(x, y, w, h)})
}

// ground places a standard half-tile-thick floating platform.
func (b *chunkBuilder) ground(x, y, w float64) {
	if w <= 0 {
		return
	}
	b.platform(x, y, w, b.tile*0.5)
}

func (b *chunkBuilder) ceiling(x, y, w, h float64) {
	b.tiles = append(b.tiles, Tile{Kind: TilePlatform, Level: b.level, Rect: core.NewRect(x, y, w, h), Ceiling: true})
}

func (b *chunkBuilder) wall(x, y, w, h float64) {
	b.tiles = append(b.tiles, Tile{Kind: TileWall, Level: b.level, Rect: core.NewRect(x, y, w, h)})
}

func (b *chunkBuilder) moving(x, y, w, h, amplitude, speed float64) {
	b.tiles = append(b.tiles, Tile{
		Kind:   TileMoving,
		Level:  b.level,
		Rect:   core.NewRect(x, y, w, h),
		Motion: Motion{Range: amplitude, Speed: speed},
	})
}

// done closes the chunk at endX.
func (b *chunkBuilder) done(endX, exitY float64) Chunk {
	return Chunk{Tiles: b.tiles, Width: endX - b.startX, ExitY: exitY}
}
