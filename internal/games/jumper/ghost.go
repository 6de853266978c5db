package jumper

// GhostFrame is one recorded player position.
type GhostFrame struct {
	X, Y float64
}

// ghostTrail records the current attempt and replays the previous one.
type ghostTrail struct {
	capacity int
	buffer   []GhostFrame
	playback []GhostFrame
	index    int // -1 until the first playback frame is shown
}

func newGhostTrail(capacity int) ghostTrail {
	return ghostTrail{
		capacity: capacity,
		buffer:   make([]GhostFrame, 0, capacity),
		index:    -1,
	}
}

// record appends a sample unless the buffer is full.
func (t *ghostTrail) record(x, y float64) {
	if len(t.buffer) >= t.capacity {
		return
	}
	t.buffer = append(t.buffer, GhostFrame{X: x, Y: y})
}

// clearBuffer starts a new attempt segment.
func (t *ghostTrail) clearBuffer() {
	t.buffer = t.buffer[:0]
}

// startPlayback copies the recorded attempt for replay from its start.
func (t *ghostTrail) startPlayback() {
	t.playback = append([]GhostFrame(nil), t.buffer...)
	t.index = -1
}

// advance moves playback one sample forward.
func (t *ghostTrail) advance() {
	if t.index < len(t.playback) {
		t.index++
	}
}

// current returns the sample to draw, if playback is still running.
func (t *ghostTrail) current() (GhostFrame, bool) {
	if t.index < 0 || t.index >= len(t.playback) {
		return GhostFrame{}, false
	}
	return t.playback[t.index], true
}
