package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/momentum-jumper/internal/config"
)

const eps = 1e-6

type fixedDifficulty float64

func (f fixedDifficulty) ForLevel(int) float64 { return float64(f) }

func newTestWorld(seed int64, d float64) *World {
	return New(config.DefaultJumperConfig().World, fixedDifficulty(d), rand.New(rand.NewSource(seed)), nil)
}

func testBand() Band {
	cfg := config.DefaultJumperConfig().World
	return Band{High: cfg.Height - cfg.TileSize*3, Low: cfg.Height - cfg.TileSize*1.5}
}

func TestChunkWidthMatchesTileExtent(t *testing.T) {
	band := testBand()
	for _, def := range Registry() {
		t.Run(def.Type.String(), func(t *testing.T) {
			for seed := int64(0); seed < 200; seed++ {
				rng := rand.New(rand.NewSource(seed))
				startX := 1000.0
				entry := band.High + rng.Float64()*(band.Low-band.High)
				c := GenerateChunk(rng, 64, band, def.Type, 3, startX, entry, 3.0)

				if len(c.Tiles) == 0 {
					t.Fatalf("seed %d: no tiles", seed)
				}
				minX, maxX := math.Inf(1), math.Inf(-1)
				for _, tile := range c.Tiles {
					minX = math.Min(minX, tile.Rect.X)
					maxX = math.Max(maxX, tile.Rect.Right())

					lo, hi := tile.SweptBounds()
					if lo < startX-eps || hi > startX+c.Width+eps {
						t.Errorf("seed %d: %s tile sweeps [%v,%v] outside chunk [%v,%v]",
							seed, tile.Kind, lo, hi, startX, startX+c.Width)
					}
					if tile.Level != 3 {
						t.Errorf("seed %d: tile level = %d, want 3", seed, tile.Level)
					}
					if tile.Rect.W <= 0 || tile.Rect.H <= 0 {
						t.Errorf("seed %d: degenerate tile %+v", seed, tile.Rect)
					}
				}
				if math.Abs(minX-startX) > eps {
					t.Errorf("seed %d: leftmost tile at %v, want %v", seed, minX, startX)
				}
				if math.Abs(maxX-(startX+c.Width)) > eps {
					t.Errorf("seed %d: width %v but tiles end at %v", seed, c.Width, maxX-startX)
				}
				if c.ExitY < band.High-eps || c.ExitY > band.Low+eps {
					t.Errorf("seed %d: exit y %v outside band", seed, c.ExitY)
				}
			}
		})
	}
}

func TestChunkEntryClampedIntoBand(t *testing.T) {
	band := testBand()
	rng := rand.New(rand.NewSource(1))
	c := GenerateChunk(rng, 64, band, ChunkRunway, 0, 0, 0, 0)
	if c.Tiles[0].Rect.Y != band.High {
		t.Errorf("runway y = %v, want clamped to %v", c.Tiles[0].Rect.Y, band.High)
	}
}

func TestSelectChunkTypeRespectsUnlock(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, d := range []float64{0, 0.25, 0.45, 0.9, 1.4, 2.1, 2.6, 3.5, 8} {
		last := ChunkNone
		for i := 0; i < 500; i++ {
			got := SelectChunkType(rng, d, last)
			if def := lookupChunk(got); def.MinD > d {
				t.Fatalf("D=%v selected %s with minD %v", d, got, def.MinD)
			}
			last = got
		}
	}
}

func TestSelectChunkTypeAvoidsRepeat(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	last := ChunkSmallHop
	for i := 0; i < 1000; i++ {
		got := SelectChunkType(rng, 0, last)
		if got == last {
			t.Fatalf("iteration %d repeated %s", i, got)
		}
		last = got
	}
}

func TestChunkWeightFloor(t *testing.T) {
	for _, def := range Registry() {
		for _, d := range []float64{0, 1, 5, 50} {
			if w := def.Weight(d); w < minChunkWeight {
				t.Errorf("%s weight at D=%v is %v", def.Type, d, w)
			}
		}
	}
	if len(Registry()) != 19 {
		t.Errorf("registry has %d templates, want 19", len(Registry()))
	}
}

func TestLevelsContiguousAndWidthsSum(t *testing.T) {
	for _, d := range []float64{0, 1.5, 3.2} {
		w := newTestWorld(42, d)
		w.Init()

		levels := w.Levels()
		if len(levels) != 10 {
			t.Fatalf("D=%v: got %d levels, want 10", d, len(levels))
		}
		for i, l := range levels {
			sum := 0.0
			cursor := l.StartX
			for _, c := range l.Chunks {
				if math.Abs(c.StartX-cursor) > eps {
					t.Errorf("level %d: chunk %s starts at %v, want %v", l.Index, c.Type, c.StartX, cursor)
				}
				sum += c.Width
				cursor += c.Width
			}
			if math.Abs(sum-l.Length) > eps {
				t.Errorf("level %d: chunk widths sum to %v, length %v", l.Index, sum, l.Length)
			}
			if last := l.Chunks[len(l.Chunks)-1]; last.Type != ChunkRunway {
				t.Errorf("level %d ends with %s, want runway", l.Index, last.Type)
			}
			if i > 0 && math.Abs(levels[i-1].End()-l.StartX) > eps {
				t.Errorf("level %d starts at %v, previous ends at %v", l.Index, l.StartX, levels[i-1].End())
			}
			if l.Index != i {
				t.Errorf("level at position %d has index %d", i, l.Index)
			}
		}
		if first := levels[0].Chunks[0]; first.Type != ChunkRunway {
			t.Errorf("level 0 should open with an intro runway, got %s", first.Type)
		}
		if math.Abs(w.NextStartX()-levels[len(levels)-1].End()) > eps {
			t.Errorf("frontier %v does not match last level end", w.NextStartX())
		}
	}
}

func TestLevelLengthTarget(t *testing.T) {
	cfg := config.DefaultJumperConfig().World
	for _, d := range []float64{0, 2, 10} {
		w := newTestWorld(3, d)
		l := w.GenerateNext()
		minLen := cfg.Width * (4 + math.Min(d*0.3, 1.5)) * 0.9
		if l.Length < minLen {
			t.Errorf("D=%v: length %v below target floor %v", d, l.Length, minLen)
		}
	}
}

func TestCheckpointPlacement(t *testing.T) {
	w := newTestWorld(5, 1)
	w.Init()
	tile := w.TileSize()

	sensors := 0
	for _, tl := range w.Tiles() {
		if tl.Kind != TileCheckpoint {
			continue
		}
		sensors++
		cp := w.Checkpoints()[tl.Checkpoint]
		if tl.Rect.X != cp.X || math.Abs(tl.Rect.Bottom()-cp.Y) > eps || tl.Rect.W != tile*0.3 {
			t.Errorf("sensor %+v does not match checkpoint %+v", tl.Rect, cp)
		}
		if tl.Solid() {
			t.Error("checkpoint sensor must not be solid")
		}
	}
	if sensors != len(w.Checkpoints()) {
		t.Errorf("%d sensors for %d checkpoints", sensors, len(w.Checkpoints()))
	}

	for i, l := range w.Levels() {
		cp := w.Checkpoints()[l.Checkpoint]
		if cp.Level != l.Index || cp.Index != i {
			t.Errorf("level %d checkpoint %+v", l.Index, cp)
		}
		if math.Abs(cp.X-(l.End()-tile)) > eps {
			t.Errorf("level %d checkpoint x %v, want %v", l.Index, cp.X, l.End()-tile)
		}
		if cp.Y != l.ExitY {
			t.Errorf("level %d checkpoint y %v, want exit %v", l.Index, cp.Y, l.ExitY)
		}
	}
}

func TestPruneRetentionWindow(t *testing.T) {
	w := newTestWorld(9, 0.5)
	w.Init()
	for i := 0; i < 12; i++ {
		w.GenerateNext()
	}
	// Reach checkpoints of levels 0..4.
	for i := 0; i <= 4; i++ {
		w.MarkReached(i)
	}

	last := w.PruneLevels(4)

	for _, l := range w.Levels() {
		if l.Index < 3 || l.Index > 19 {
			t.Errorf("level %d survived outside [3,19]", l.Index)
		}
	}
	for idx := 3; idx <= 19 && idx < w.GeneratedCount(); idx++ {
		if _, ok := w.LevelByIndex(idx); !ok {
			t.Errorf("level %d inside the window was pruned", idx)
		}
	}
	for i, cp := range w.Checkpoints() {
		if cp.Index != i {
			t.Errorf("checkpoint at %d has index %d", i, cp.Index)
		}
	}
	if last != 1 {
		t.Errorf("last reached index = %d, want 1 (levels 3 and 4 survive)", last)
	}

	kept := map[int]bool{}
	for _, l := range w.Levels() {
		kept[l.Index] = true
	}
	for _, tl := range w.Tiles() {
		if !kept[tl.Level] {
			t.Errorf("tile references pruned level %d", tl.Level)
		}
		if tl.Kind == TileCheckpoint && w.Checkpoints()[tl.Checkpoint].Level != tl.Level {
			t.Errorf("sensor for level %d points at checkpoint of level %d", tl.Level, w.Checkpoints()[tl.Checkpoint].Level)
		}
	}
	for _, l := range w.Levels() {
		if w.Checkpoints()[l.Checkpoint].Level != l.Index {
			t.Errorf("level %d checkpoint ref is stale", l.Index)
		}
	}
}

func TestPruneDropsLevelsAheadAndKeepsFrontierContiguous(t *testing.T) {
	w := newTestWorld(13, 0)
	w.Init()
	for i := 0; i < 10; i++ {
		w.GenerateNext()
	}
	w.PruneLevels(0)

	levels := w.Levels()
	lastLevel := levels[len(levels)-1]
	if lastLevel.Index != 15 {
		t.Fatalf("newest retained level = %d, want 15", lastLevel.Index)
	}
	next := w.GenerateNext()
	if next.Index != 16 || math.Abs(next.StartX-lastLevel.End()) > eps {
		t.Errorf("next level %d at %v, want 16 at %v", next.Index, next.StartX, lastLevel.End())
	}
}

func TestGeneratedLevelIndicesAreUnique(t *testing.T) {
	w := newTestWorld(21, 1)
	w.Init()
	w.MarkReached(0)
	w.MarkReached(1)
	w.MarkReached(2)
	w.PruneLevels(2)
	w.GenerateNext()

	seen := map[int]bool{}
	for _, l := range w.Levels() {
		if seen[l.Index] {
			t.Fatalf("duplicate level index %d", l.Index)
		}
		seen[l.Index] = true
	}
}

func TestEnsureLevelsAndTriggerNext(t *testing.T) {
	w := newTestWorld(17, 0)
	if n := w.EnsureLevels(0); n == 0 {
		t.Fatal("EnsureLevels on an empty world generated nothing")
	}
	cfg := config.DefaultJumperConfig().World
	if w.NextStartX() < cfg.Width*cfg.LookaheadScreens {
		t.Errorf("frontier %v short of lookahead", w.NextStartX())
	}
	if n := w.EnsureLevels(0); n != 0 {
		t.Errorf("second EnsureLevels generated %d levels", n)
	}

	before := len(w.Levels())
	if !w.TriggerNext(0) {
		t.Fatal("first trigger should generate")
	}
	if w.TriggerNext(0) {
		t.Error("second trigger on the same level should be a no-op")
	}
	if len(w.Levels()) != before+1 {
		t.Errorf("levels = %d, want %d", len(w.Levels()), before+1)
	}
}

func TestMarkReachedIsMonotonic(t *testing.T) {
	w := newTestWorld(1, 0)
	w.Init()
	if !w.MarkReached(0) {
		t.Fatal("first MarkReached should report the transition")
	}
	if w.MarkReached(0) {
		t.Error("second MarkReached should be a no-op")
	}
	if !w.Checkpoints()[0].Reached {
		t.Error("checkpoint should stay reached")
	}
}

func TestGenerationDeterministic(t *testing.T) {
	a := newTestWorld(99, 1.2)
	b := newTestWorld(99, 1.2)
	a.Init()
	b.Init()
	if len(a.Tiles()) != len(b.Tiles()) {
		t.Fatalf("tile counts differ: %d vs %d", len(a.Tiles()), len(b.Tiles()))
	}
	for i := range a.Tiles() {
		if a.Tiles()[i] != b.Tiles()[i] {
			t.Fatalf("tile %d differs: %+v vs %+v", i, a.Tiles()[i], b.Tiles()[i])
		}
	}
}

func TestMovingTileMotion(t *testing.T) {
	tile := Tile{Kind: TileMoving, Motion: Motion{Range: 10, Speed: 2}}
	tile.Rect.X = 100
	if r := tile.RectAt(0); r.X != 100 {
		t.Errorf("x at t=0 = %v, want 100", r.X)
	}
	if v := tile.VelocityAt(0); v != 20 {
		t.Errorf("v at t=0 = %v, want 20", v)
	}
	quarter := math.Pi / 4
	if r := tile.RectAt(quarter); math.Abs(r.X-110) > eps {
		t.Errorf("x at quarter period = %v, want 110", r.X)
	}

	static := Tile{Kind: TilePlatform}
	static.Rect.X = 5
	if static.RectAt(123).X != 5 || static.VelocityAt(123) != 0 {
		t.Error("static tiles must not move")
	}
}

func TestLevelAt(t *testing.T) {
	w := newTestWorld(11, 0.5)
	w.Init()

	for _, l := range w.Levels() {
		got, ok := w.LevelAt(l.StartX + l.Length/2)
		if !ok || got.Index != l.Index {
			t.Errorf("LevelAt(middle of %d) = %d, %v", l.Index, got.Index, ok)
		}
	}
	if _, ok := w.LevelAt(-10); ok {
		t.Error("LevelAt before the world should miss")
	}
	if _, ok := w.LevelAt(w.NextStartX() + 1); ok {
		t.Error("LevelAt past the frontier should miss")
	}
}
