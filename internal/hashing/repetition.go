package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// RepetitionTracker counts how often each position has occurred in one
// game.
type RepetitionTracker struct {
	counts map[uint64]int
	// limit is the occurrence count that ends the game (0 = never)
	limit int
	// worst is the highest count seen so far
	worst int
}

// NewRepetitionTracker creates a tracker that reports a repetition once a
// position has occurred limit times. A limit of 0 never reports one.
func NewRepetitionTracker(limit int) *RepetitionTracker {
	return &RepetitionTracker{
		counts: make(map[uint64]int),
		limit:  limit,
	}
}

// Record counts the game's current position and returns how many times
// it has now occurred.
func (r *RepetitionTracker) Record(g *engine.Game) int {
	hash := HashGame(g)
	r.counts[hash]++
	n := r.counts[hash]
	if n > r.worst {
		r.worst = n
	}
	return n
}

// Repeated reports whether some position reached the limit.
func (r *RepetitionTracker) Repeated() bool {
	return r.limit > 0 && r.worst >= r.limit
}

// Rebuild recounts from scratch by replaying the game's history, so the
// tracker agrees with the game after an undo.
func (r *RepetitionTracker) Rebuild(g *engine.Game) error {
	r.counts = make(map[uint64]int)
	r.worst = 0
	scratch := engine.NewGameFromBoard(g.InitialBoard(), g.InitialTurn())
	r.Record(scratch)
	for _, m := range g.History() {
		if err := scratch.Play(m); err != nil {
			return err
		}
		r.Record(scratch)
	}
	return nil
}
