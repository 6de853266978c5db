package world

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/momentum-jumper/internal/config"
	"github.com/vovakirdan/momentum-jumper/internal/core"
)

// Difficulty supplies the D a level is generated with. offset is the number
// of levels retained when generation starts, so levels further from the last
// checkpoint come out harder.
type Difficulty interface {
	ForLevel(offset int) float64
}

// World owns every retained tile, level and checkpoint.
// It is not safe for concurrent use.
type World struct {
	cfg    config.WorldConfig
	diff   Difficulty
	rng    *rand.Rand
	logger *log.Logger

	tiles       []Tile
	levels      []Level
	checkpoints []Checkpoint

	nextIndex   int     // Index of the next level to generate
	nextStartX  float64 // Generation frontier
	lastGroundY float64 // Exit ground height of the newest level
	lastChunk   ChunkType
	generated   int
}

// New creates an empty world. Call Init to generate the starting levels.
// A nil logger discards output.
func New(cfg config.WorldConfig, diff Difficulty, rng *rand.Rand, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		cfg:    cfg,
		diff:   diff,
		rng:    rng,
		logger: logger,
	}
	w.Reset()
	return w
}

// Reset drops all terrain.
func (w *World) Reset() {
	w.tiles = w.tiles[:0]
	w.levels = w.levels[:0]
	w.checkpoints = w.checkpoints[:0]
	w.nextIndex = 0
	w.nextStartX = 0
	w.lastGroundY = w.GroundY()
	w.lastChunk = ChunkNone
	w.generated = 0
}

// Init resets the world and generates the initial levels.
func (w *World) Init() {
	w.Reset()
	for i := 0; i < w.cfg.InitialLevels; i++ {
		w.GenerateNext()
	}
}

// GroundY is the default ground height at spawn.
func (w *World) GroundY() float64 {
	return w.cfg.Height - w.cfg.TileSize*2
}

// Band returns the range chunk ground heights stay in.
func (w *World) Band() Band {
	return Band{
		High: w.cfg.Height - w.cfg.TileSize*3,
		Low:  w.cfg.Height - w.cfg.TileSize*1.5,
	}
}

// TileSize returns the generation unit.
func (w *World) TileSize() float64 {
	return w.cfg.TileSize
}

// Tiles returns the retained tiles. Callers must not modify the slice.
func (w *World) Tiles() []Tile {
	return w.tiles
}

// Levels returns the retained levels, ordered by index.
func (w *World) Levels() []Level {
	return w.levels
}

// Checkpoints returns the retained checkpoints, ordered by index.
func (w *World) Checkpoints() []Checkpoint {
	return w.checkpoints
}

// NextStartX returns the generation frontier.
func (w *World) NextStartX() float64 {
	return w.nextStartX
}

// GeneratedCount returns how many levels were generated since Reset.
func (w *World) GeneratedCount() int {
	return w.generated
}

// SelectChunkType draws the next template using the world's RNG.
func (w *World) SelectChunkType(d float64, last ChunkType) ChunkType {
	return SelectChunkType(w.rng, d, last)
}

// GenerateNext generates the level after the newest one.
func (w *World) GenerateNext() Level {
	return w.GenerateLevel(w.nextIndex, w.nextStartX)
}

// GenerateLevel builds one level starting at startX and appends it.
func (w *World) GenerateLevel(index int, startX float64) Level {
	d := w.diff.ForLevel(len(w.levels))
	baseLength := w.cfg.Width * (4 + math.Min(d*0.3, 1.5))
	target := baseLength * (0.9 + w.rng.Float64()*0.2)

	level := Level{
		Index:      index,
		StartX:     startX,
		Difficulty: d,
	}

	cursor := startX
	groundY := w.lastGroundY
	band := w.Band()
	var levelTiles []Tile

	place := func(t ChunkType, chunkD float64) Chunk {
		c := GenerateChunk(w.rng, w.cfg.TileSize, band, t, index, cursor, groundY, chunkD)
		levelTiles = append(levelTiles, c.Tiles...)
		level.Chunks = append(level.Chunks, ChunkSpan{Type: c.Type, StartX: cursor, Width: c.Width})
		cursor += c.Width
		return c
	}

	if index == 0 {
		groundY = place(ChunkRunway, 0).ExitY
	}

	count := 0
	for cursor-startX < target {
		t := w.SelectChunkType(d, w.lastChunk)
		groundY = place(t, d).ExitY
		w.lastChunk = t
		count++

		if d > 2.5 && count%5 == 0 && w.rng.Float64() < 0.3 {
			groundY = place(ChunkRunway, d).ExitY
		}
	}

	groundY = place(ChunkRunway, d).ExitY

	level.Length = cursor - startX
	level.ExitY = groundY
	level.Checkpoint = len(w.checkpoints)

	cpX := cursor - w.cfg.TileSize
	w.checkpoints = append(w.checkpoints, Checkpoint{
		X:     cpX,
		Y:     groundY,
		Index: level.Checkpoint,
		Level: index,
	})
	levelTiles = append(levelTiles, Tile{
		Kind:       TileCheckpoint,
		Level:      index,
		Rect:       newSensor(cpX, groundY, w.cfg.TileSize),
		Checkpoint: level.Checkpoint,
	})

	w.tiles = append(w.tiles, levelTiles...)
	w.levels = append(w.levels, level)
	w.lastGroundY = groundY
	w.nextStartX = startX + level.Length
	if index >= w.nextIndex {
		w.nextIndex = index + 1
	}
	w.generated++

	w.logger.Debug("level generated",
		"index", index,
		"start", startX,
		"length", level.Length,
		"chunks", len(level.Chunks),
		"difficulty", d)
	return level
}

// EnsureLevels generates forward until the frontier is the configured
// number of screens ahead of cameraX. Returns the number of levels added.
func (w *World) EnsureLevels(cameraX float64) int {
	added := 0
	if len(w.levels) == 0 {
		w.GenerateNext()
		added++
	}
	for w.nextStartX < cameraX+w.cfg.Width*w.cfg.LookaheadScreens {
		w.GenerateNext()
		added++
	}
	return added
}

// TriggerNext marks the level as having started forward generation and
// generates one more level. It does nothing if the level already triggered
// or is no longer retained.
func (w *World) TriggerNext(levelIndex int) bool {
	i := w.levelPos(levelIndex)
	if i < 0 || w.levels[i].GeneratedNext {
		return false
	}
	w.levels[i].GeneratedNext = true
	w.GenerateNext()
	return true
}

// LevelByIndex returns the retained level with the given index.
func (w *World) LevelByIndex(index int) (Level, bool) {
	i := w.levelPos(index)
	if i < 0 {
		return Level{}, false
	}
	return w.levels[i], true
}

// LevelAt returns the retained level containing x.
func (w *World) LevelAt(x float64) (Level, bool) {
	for _, l := range w.levels {
		if l.Contains(x) {
			return l, true
		}
	}
	return Level{}, false
}

// MarkReached flags a checkpoint as reached. Returns false if it already was.
func (w *World) MarkReached(index int) bool {
	if index < 0 || index >= len(w.checkpoints) || w.checkpoints[index].Reached {
		return false
	}
	w.checkpoints[index].Reached = true
	return true
}

// PruneLevels drops levels outside the retention window around the level of
// the last reached checkpoint, re-indexes the surviving checkpoints from zero
// and returns the index of the last reached one (-1 if none survive).
func (w *World) PruneLevels(lastCheckpointLevel int) int {
	lo := lastCheckpointLevel - w.cfg.RetainBehind
	if lo < 0 {
		lo = 0
	}
	hi := lastCheckpointLevel + w.cfg.RetainAhead
	keep := func(level int) bool { return level >= lo && level <= hi }

	before := len(w.levels)
	levels := w.levels[:0]
	for _, l := range w.levels {
		if keep(l.Index) {
			levels = append(levels, l)
		}
	}
	w.levels = levels

	if len(w.levels) == before {
		return w.lastReached()
	}

	remap := make(map[int]int, len(w.checkpoints))
	checkpoints := w.checkpoints[:0]
	for _, cp := range w.checkpoints {
		if !keep(cp.Level) {
			continue
		}
		remap[cp.Index] = len(checkpoints)
		cp.Index = len(checkpoints)
		checkpoints = append(checkpoints, cp)
	}
	w.checkpoints = checkpoints

	tiles := w.tiles[:0]
	for _, t := range w.tiles {
		if !keep(t.Level) {
			continue
		}
		if t.Kind == TileCheckpoint {
			t.Checkpoint = remap[t.Checkpoint]
		}
		tiles = append(tiles, t)
	}
	w.tiles = tiles

	for i := range w.levels {
		w.levels[i].Checkpoint = remap[w.levels[i].Checkpoint]
	}

	// Levels past the window were dropped: pull the frontier back so the
	// next generated level stays contiguous with the newest survivor.
	if n := len(w.levels); n > 0 {
		last := w.levels[n-1]
		if last.End() < w.nextStartX {
			w.nextStartX = last.End()
			w.lastGroundY = last.ExitY
			w.nextIndex = last.Index + 1
		}
	}

	w.logger.Debug("levels pruned", "dropped", before-len(w.levels), "retained", len(w.levels))
	return w.lastReached()
}

func (w *World) lastReached() int {
	for i := len(w.checkpoints) - 1; i >= 0; i-- {
		if w.checkpoints[i].Reached {
			return w.checkpoints[i].Index
		}
	}
	return -1
}

func (w *World) levelPos(index int) int {
	for i, l := range w.levels {
		if l.Index == index {
			return i
		}
	}
	return -1
}

// newSensor returns the checkpoint trigger box standing on groundY.
func newSensor(x, groundY, tile float64) core.Rect {
	return core.NewRect(x, groundY-tile, tile*0.3, tile)
}
