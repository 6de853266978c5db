package jumper

import "sync"

// ScoreStore persists the best score across runs.
type ScoreStore interface {
	GetBest() int
	SetBest(best int)
}

// RunRecorder receives every finished run.
type RunRecorder interface {
	RecordRun(score int, difficulty float64)
}

// MemoryScores is an in-process ScoreStore.
type MemoryScores struct {
	mu   sync.Mutex
	best int
}

// GetBest returns the stored best score.
func (m *MemoryScores) GetBest() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// SetBest stores a new best score.
func (m *MemoryScores) SetBest(best int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = best
}
