package worker

import (
	"sync/atomic"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// noopPlayFunc returns a play function that does nothing.
func noopPlayFunc() PlayFunc {
	return func(job Job) Result {
		return Result{Index: job.Index, Seed: job.Seed}
	}
}

// countingPlayFunc returns a play function that increments a counter.
func countingPlayFunc(counter *int32) PlayFunc {
	return func(job Job) Result {
		atomic.AddInt32(counter, 1)
		return Result{Index: job.Index, Seed: job.Seed, Reason: "done"}
	}
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var played int32
	pool := NewPool(countingPlayFunc(&played), WithWorkers(4), WithBufferSize(10))
	pool.Start()

	const numJobs = 10
	for i := 0; i < numJobs; i++ {
		pool.Submit(Job{Index: i, Seed: int64(i), Start: engine.NewGame()})
	}

	go pool.Close()

	resultCount := collectResults(pool)
	if resultCount != numJobs {
		t.Errorf("results = %d; want %d", resultCount, numJobs)
	}
	if got := atomic.LoadInt32(&played); got != numJobs {
		t.Errorf("played = %d; want %d", got, numJobs)
	}
}

// TestPoolPlaysGames runs real moves on each worker's own clone.
func TestPoolPlaysGames(t *testing.T) {
	start := engine.NewGame()
	play := func(job Job) Result {
		g := job.Start.Clone()
		moves := g.LegalMoves(g.Turn())
		m := moves[int(job.Seed)%len(moves)]
		g.Move(m.From, m.To)
		return Result{Index: job.Index, Game: g, Reason: "one ply"}
	}

	jobs := make([]Job, 8)
	for i := range jobs {
		jobs[i] = Job{Index: i, Seed: int64(i), Start: start}
	}
	results := RunAll(jobs, play, WithWorkers(3))

	if len(results) != len(jobs) {
		t.Fatalf("results = %d; want %d", len(results), len(jobs))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d; want sorted order", i, r.Index)
		}
		if r.Game.Ply() != 1 {
			t.Errorf("game %d has %d plies; want 1", i, r.Game.Ply())
		}
	}
	if start.Ply() != 0 {
		t.Error("shared start position was modified")
	}
}

// TestPoolNoRace is designed to be run with -race flag.
func TestPoolNoRace(t *testing.T) {
	var counter int32
	pool := NewPool(countingPlayFunc(&counter), WithWorkers(8), WithBufferSize(50))
	pool.Start()

	const numJobs = 100
	go func() {
		for i := 0; i < numJobs; i++ {
			pool.Submit(Job{Index: i})
		}
		pool.Close()
	}()

	collectResults(pool)

	if got := atomic.LoadInt32(&counter); got != numJobs {
		t.Errorf("played = %d; want %d", got, numJobs)
	}
}

// TestRunAll_Empty returns no results for no jobs.
func TestRunAll_Empty(t *testing.T) {
	if got := RunAll(nil, noopPlayFunc(), WithWorkers(4)); len(got) != 0 {
		t.Errorf("RunAll(nil) = %d results; want 0", len(got))
	}
}

// TestNewPool_Options tests the functional options constructor.
func TestNewPool_Options(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"with multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(noopPlayFunc(), tt.opts...)
			if pool.numWorkers != tt.wantWorkers {
				t.Errorf("numWorkers = %d; want %d", pool.numWorkers, tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
