// Package worker provides a worker pool for playing games in parallel.
package worker

import (
	"sort"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Job describes one game to be played.
type Job struct {
	Index int   // position in the batch, used to restore order
	Seed  int64 // selector seed for this game
	// Start is the position to play from; nil means the standard start.
	// Workers play on a clone, so one Start may be shared by many jobs.
	Start *engine.Game
}

// Result is what a worker reports for one job.
type Result struct {
	Index  int
	Seed   int64
	Game   *engine.Game // game as it stood when play stopped
	Reason string       // why play stopped
	Info   interface{}  // opaque analysis payload; typed by consumer
	Error  error
}

// PlayFunc plays one job to completion.
type PlayFunc func(job Job) Result

// Pool manages a pool of workers for parallel game play.
type Pool struct {
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	play       PlayFunc
	wg         sync.WaitGroup
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a new worker pool using functional options.
// play is required; other settings have sensible defaults.
// Default: 1 worker, buffer size of 10.
func NewPool(play PlayFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		play:       play,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker plays jobs from the job channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		p.results <- p.play(job)
	}
}

// Submit submits a job.
// This may block if the job channel buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Close closes the job channel and waits for all workers to finish.
// The result channel is closed once all workers are done.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel for reading finished games.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// RunAll plays every job on a fresh pool and returns the results in job
// index order. Results are consumed by the calling goroutine only.
func RunAll(jobs []Job, play PlayFunc, opts ...PoolOption) []Result {
	pool := NewPool(play, opts...)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for result := range pool.Results() {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
