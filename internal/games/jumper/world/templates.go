package world

import "math"

// Every template starts with a tile at startX and reports a width that ends
// exactly at the right edge of its rightmost tile.

func buildRunway(b *chunkBuilder) Chunk {
	w := b.span(1.5, 2.5)
	b.ground(b.startX, b.entryY, w)
	return b.done(b.startX+w, b.entryY)
}

// gapPair is two equal platforms at entry height separated by a gap.
func gapPair(b *chunkBuilder, gapMin, gapMax, platMin, platMax float64) Chunk {
	gap := b.span(gapMin, gapMax)
	platW := b.span(platMin, platMax)
	b.ground(b.startX, b.entryY, platW)
	exitX := b.startX + platW + gap
	b.ground(exitX, b.entryY, platW)
	return b.done(exitX+platW, b.entryY)
}

func buildSmallHop(b *chunkBuilder) Chunk {
	return gapPair(b, 1.0, 1.4, 1.0, 1.5)
}

func buildMediumGap(b *chunkBuilder) Chunk {
	return gapPair(b, 1.6, 2.0, 1.0, 1.4)
}

func buildPitJump(b *chunkBuilder) Chunk {
	return gapPair(b, 1.8, 2.3, 1.0, 1.4)
}

func buildPrecisionGap(b *chunkBuilder) Chunk {
	return gapPair(b, 2.3, 2.6, 0.9, 1.2)
}

func buildStepUp(b *chunkBuilder) Chunk {
	stepH := b.span(0.8, 1.4)
	exitY := math.Max(b.band.High, b.entryY-stepH)
	platW := b.span(1.0, 1.5)
	b.ground(b.startX, b.entryY, platW)
	exitX := b.startX + platW + b.span(0.8, 1.2)
	b.ground(exitX, exitY, platW)
	return b.done(exitX+platW, exitY)
}

func buildStepDown(b *chunkBuilder) Chunk {
	drop := b.span(0.6, 1.2)
	exitY := math.Min(b.band.Low, b.entryY+drop)
	platW := b.span(1.0, 1.5)
	b.ground(b.startX, b.entryY, platW)
	exitX := b.startX + platW + b.span(0.6, 1.0)
	b.ground(exitX, exitY, platW)
	return b.done(exitX+platW, exitY)
}

func buildDoubleHop(b *chunkBuilder) Chunk {
	gap1 := b.span(1.0, 1.3)
	gap2 := b.span(1.1, 1.4)
	platW := b.span(0.8, 1.2)
	x := b.startX
	b.ground(x, b.entryY, platW)
	x += platW + gap1
	b.ground(x, b.entryY, platW)
	x += platW + gap2
	b.ground(x, b.entryY, platW)
	return b.done(x+platW, b.entryY)
}

// staircase climbs (dir < 0) or descends (dir > 0) half a tile per step.
func staircase(b *chunkBuilder, dir, gapMin, gapMax float64) Chunk {
	stepH := b.tile * 0.5
	x, y := b.startX, b.entryY
	for i := 0; i < 4; i++ {
		platW := b.span(0.8, 1.2)
		b.platform(x, y, platW, b.tile*0.4)
		x += platW + b.span(gapMin, gapMax)
		y = b.band.Clamp(y + dir*stepH)
	}
	lastW := b.span(0.9, 1.3)
	b.platform(x, y, lastW, b.tile*0.4)
	return b.done(x+lastW, y)
}

func buildStaircaseUp(b *chunkBuilder) Chunk {
	return staircase(b, -1, 0.6, 1.0)
}

func buildStaircaseDown(b *chunkBuilder) Chunk {
	return staircase(b, 1, 0.5, 0.9)
}

func buildWallHop(b *chunkBuilder) Chunk {
	wallH := b.span(1.5, 2.0)
	wallW := b.tile * 0.4
	platW := b.span(1.0, 1.4)
	b.ground(b.startX, b.entryY, platW)
	wallX := b.startX + platW + b.tile*0.8
	b.platform(wallX-b.tile*0.3, b.entryY, b.tile, b.tile*0.4)
	b.wall(wallX, b.entryY-wallH, wallW, wallH)
	exitX := wallX + b.tile*1.2
	b.ground(exitX, b.entryY, platW)
	return b.done(exitX+platW, b.entryY)
}

func buildCeilingRun(b *chunkBuilder) Chunk {
	platW := b.span(0.9, 1.2)
	x := b.startX
	for i := 0; i < 3; i++ {
		if i > 0 {
			x += b.span(0.6, 0.9)
		}
		b.platform(x, b.entryY, platW, b.tile*0.4)
		x += platW
	}
	b.ceiling(b.startX, b.entryY-b.tile*1.6, x-b.startX, b.tile*0.4)
	return b.done(x, b.entryY)
}

func buildZigzag(b *chunkBuilder) Chunk {
	x := b.startX
	high := true
	for i := 0; i < 5; i++ {
		if i > 0 {
			x += b.span(0.9, 1.2)
		}
		offset := b.tile * 0.4
		if high {
			offset = -b.tile * 0.7
		}
		platW := b.span(0.7, 1.0)
		b.platform(x, b.band.Clamp(b.entryY+offset), platW, b.tile*0.4)
		x += platW
		high = !high
	}
	return b.done(x, b.entryY)
}

func buildMovingBridge(b *chunkBuilder) Chunk {
	platW := b.span(0.8, 1.1)
	b.ground(b.startX, b.entryY, platW)
	movingX := b.startX + platW + b.tile*0.8
	b.moving(movingX, b.entryY-b.tile*0.2, b.tile*1.3, b.tile*0.4, b.tile*0.7, 1.8+b.d*0.25)
	exitX := movingX + b.tile*2.2
	b.ground(exitX, b.entryY, platW)
	return b.done(exitX+platW, b.entryY)
}

func buildBounceCorridor(b *chunkBuilder) Chunk {
	platW := b.span(0.8, 1.1)
	wallH := b.tile * 1.6
	x := b.startX
	b.platform(x, b.entryY, platW, b.tile*0.4)
	x += platW + b.tile*0.5
	for i := 0; i < 2; i++ {
		b.platform(x, b.entryY, b.tile*0.8, b.tile*0.4)
		b.wall(x+b.tile*0.15, b.entryY-wallH, b.tile*0.4, wallH)
		x += b.tile * 1.5
	}
	b.platform(x, b.entryY, platW, b.tile*0.4)
	return b.done(x+platW, b.entryY)
}

// hopRun is a chain of small platforms drifting up and down by at most
// drift tiles per hop.
func hopRun(b *chunkBuilder, count int, platMin, platMax, drift, thick, gapMin, gapMax float64) Chunk {
	x, y := b.startX, b.entryY
	for i := 0; i < count; i++ {
		if i > 0 {
			x += b.span(gapMin, gapMax)
		}
		platW := b.span(platMin, platMax)
		y = b.band.Clamp(y + b.span(-drift, drift))
		b.platform(x, y, platW, b.tile*thick)
		x += platW
	}
	return b.done(x, y)
}

func buildGauntlet(b *chunkBuilder) Chunk {
	return hopRun(b, 6, 0.6, 0.9, 0.4, 0.35, 0.8, 1.2)
}

func buildNarrowPath(b *chunkBuilder) Chunk {
	return hopRun(b, 5, 0.5, 0.7, 0.35, 0.35, 1.0, 1.4)
}

func buildTiming(b *chunkBuilder) Chunk {
	platW := b.span(0.7, 1.0)
	b.platform(b.startX, b.entryY, platW, b.tile*0.4)
	baseSpeed := 2.0 + b.d*0.2
	for i := 0; i < 3; i++ {
		fi := float64(i)
		x := b.startX + platW + b.tile*(1.8*fi+1.0)
		b.moving(x, b.entryY-b.tile*0.15, b.tile*1.1, b.tile*0.4, b.tile*(0.5+fi*0.15), baseSpeed*(1+fi*0.2))
	}
	exitX := b.startX + platW + b.tile*6.5
	b.platform(exitX, b.entryY, platW, b.tile*0.4)
	return b.done(exitX+platW, b.entryY)
}

func buildWallMaze(b *chunkBuilder) Chunk {
	x := b.startX
	for i := 0; i < 4; i++ {
		if i > 0 {
			x += b.span(0.9, 1.3)
		}
		platW := b.span(0.7, 1.0)
		wallH := b.span(1.4, 2.0)
		b.platform(x, b.entryY, platW, b.tile*0.4)
		b.wall(x+platW*0.3, b.entryY-wallH, b.tile*0.35, wallH)
		x += platW
	}
	x += b.span(0.9, 1.3)
	lastW := b.span(0.8, 1.1)
	b.platform(x, b.entryY, lastW, b.tile*0.4)
	return b.done(x+lastW, b.entryY)
}
