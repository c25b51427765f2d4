package main

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// SelfPlayStats summarises a batch of computer games.
type SelfPlayStats struct {
	Games          int
	WhiteWins      int
	BlackWins      int
	Draws          int
	Unfinished     int
	DistinctFinals int
	RepeatedFinals int // games ending in a final position already reached
	Errors         int
}

// runSelfPlay plays the configured number of games on a worker pool and
// writes each finished game in job order.
//
// Concurrency model: each worker plays its own clone of the start
// position with its own selector. The only shared state is the
// thread-safe set of final positions; results are consumed by this
// goroutine alone.
func runSelfPlay(cfg *config.Config) error {
	stats, err := playBatch(cfg)
	if err != nil {
		return err
	}
	cfg.Logf(1, "Played %d games: %d white wins, %d black wins, %d draws, %d distinct final positions (%d repeated)",
		stats.Games, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.DistinctFinals, stats.RepeatedFinals)
	if stats.Errors > 0 {
		return fmt.Errorf("%d of %d games failed", stats.Errors, stats.Games)
	}
	return nil
}

func playBatch(cfg *config.Config) (SelfPlayStats, error) {
	start := engine.NewGame()
	if cfg.Engine.StartFEN != "" {
		g, err := engine.NewGameFromFEN(cfg.Engine.StartFEN)
		if err != nil {
			return SelfPlayStats{}, err
		}
		start = g
	}

	numWorkers := cfg.SelfPlay.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	opts := processing.PlayOptions{
		MaxPlies:        cfg.Engine.MaxPlies,
		RepetitionLimit: cfg.Engine.RepetitionLimit,
	}
	finals := hashing.NewThreadSafePositionSet()

	play := func(job worker.Job) worker.Result {
		result := processing.PlayGame(job, opts)
		if result.Error == nil {
			finals.Add(hashing.HashGame(result.Game))
		}
		cfg.Logf(2, "game %d finished: %s after %d plies", job.Index+1, result.Reason, result.Game.Ply())
		return result
	}

	jobs := make([]worker.Job, cfg.SelfPlay.Games)
	for i := range jobs {
		jobs[i] = worker.Job{Index: i, Seed: cfg.Engine.Seed + int64(i), Start: start}
	}

	bufferSize := len(jobs)
	if bufferSize > 100 {
		bufferSize = 100
	}
	results := worker.RunAll(jobs, play, worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize))

	writer := output.NewGameWriter(cfg.OutputFile, cfg.Output.JSONFormat)
	stats := SelfPlayStats{Games: len(results)}
	for _, result := range results {
		if result.Error != nil {
			stats.Errors++
			cfg.Logf(1, "game %d: %v", result.Index+1, result.Error)
			continue
		}
		outcome := processing.Outcome(result)
		switch outcome {
		case "1-0":
			stats.WhiteWins++
		case "0-1":
			stats.BlackWins++
		case "1/2-1/2":
			stats.Draws++
		default:
			stats.Unfinished++
		}
		analysis, _ := result.Info.(*processing.GameAnalysis)
		rec := output.GameRecord{
			Index:    result.Index,
			Seed:     result.Seed,
			Game:     result.Game,
			Result:   outcome,
			Reason:   result.Reason,
			Analysis: analysis,
		}
		if err := writer.WriteGame(rec); err != nil {
			return stats, err
		}
	}
	if err := writer.Close(); err != nil {
		return stats, err
	}
	stats.DistinctFinals = finals.UniqueCount()
	stats.RepeatedFinals = finals.DuplicateCount()
	return stats, nil
}
