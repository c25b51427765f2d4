package processing

import (
	"github.com/lgbarn/chessrules-go/internal/ai"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Reasons a game stopped.
const (
	ReasonCheckmate    = "checkmate"
	ReasonStalemate    = "stalemate"
	ReasonInsufficient = "insufficient material"
	ReasonRepetition   = "repetition"
	ReasonPlyLimit     = "ply limit"
	ReasonNoMove       = "no move"
)

// PlayOptions bounds a computer game.
type PlayOptions struct {
	MaxPlies        int // 0 = no limit
	RepetitionLimit int // 0 = never stop on repetition
}

// PlayGame plays a computer-versus-computer game from the job's start
// position until it ends or is cut off. Both sides share one selector
// seeded with the job's seed, so a job always produces the same game.
func PlayGame(job worker.Job, opts PlayOptions) worker.Result {
	g := engine.NewGame()
	if job.Start != nil {
		g = job.Start.Clone()
	}
	result := worker.Result{Index: job.Index, Seed: job.Seed, Game: g}

	selector := ai.NewSelector(job.Seed)
	tracker := hashing.NewRepetitionTracker(opts.RepetitionLimit)
	if err := tracker.Rebuild(g); err != nil {
		result.Error = err
		return result
	}

	for {
		if reason, over := stopReason(g, tracker, opts); over {
			result.Reason = reason
			break
		}
		move, ok := selector.NextMove(g, g.Turn())
		if !ok {
			result.Reason = ReasonNoMove
			break
		}
		if err := g.Play(move); err != nil {
			result.Error = err
			break
		}
		tracker.Record(g)
	}

	analysis, err := AnalyzeGame(g)
	if err != nil && result.Error == nil {
		result.Error = err
	}
	result.Info = analysis
	return result
}

// stopReason reports whether the game is over or must be cut off.
func stopReason(g *engine.Game, tracker *hashing.RepetitionTracker, opts PlayOptions) (string, bool) {
	switch g.State() {
	case engine.CheckMate:
		return ReasonCheckmate, true
	case engine.StaleMate:
		return ReasonStalemate, true
	case engine.InsufficientMaterial:
		return ReasonInsufficient, true
	}
	if tracker.Repeated() {
		return ReasonRepetition, true
	}
	if opts.MaxPlies > 0 && g.Ply() >= opts.MaxPlies {
		return ReasonPlyLimit, true
	}
	return "", false
}

// Outcome returns the result string for a finished job: the game's own
// result when it ended by rule, a draw when it was cut off.
func Outcome(result worker.Result) string {
	if result.Game == nil {
		return "*"
	}
	switch result.Reason {
	case ReasonRepetition, ReasonPlyLimit:
		return "1/2-1/2"
	}
	return result.Game.Result()
}
