package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/momentum-jumper/internal/games/jumper"
)

// BestScores adapts a Store to the game's score interfaces for one game ID.
// Persistence is best effort: failures are logged and play continues.
type BestScores struct {
	store  *Store
	gameID string
	logger *log.Logger
}

// NewBestScores creates an adapter. A nil logger discards output.
func NewBestScores(store *Store, gameID string, logger *log.Logger) *BestScores {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BestScores{store: store, gameID: gameID, logger: logger}
}

// GetBest implements jumper.ScoreStore.
func (b *BestScores) GetBest() int {
	best, err := b.store.BestScore(b.gameID)
	if err != nil {
		b.logger.Warn("cannot load best score", "game", b.gameID, "err", err)
		return 0
	}
	return best
}

// SetBest implements jumper.ScoreStore.
func (b *BestScores) SetBest(best int) {
	if err := b.store.SetBestScore(b.gameID, best); err != nil {
		b.logger.Warn("cannot save best score", "game", b.gameID, "best", best, "err", err)
	}
}

// RecordRun implements jumper.RunRecorder.
func (b *BestScores) RecordRun(score int, difficulty float64) {
	if _, err := b.store.SaveRun(b.gameID, score, difficulty); err != nil {
		b.logger.Warn("cannot save run", "game", b.gameID, "score", score, "err", err)
		return
	}
	b.logger.Info("run saved", "game", b.gameID, "score", score, "difficulty", difficulty)
}

var (
	_ jumper.ScoreStore  = (*BestScores)(nil)
	_ jumper.RunRecorder = (*BestScores)(nil)
)
