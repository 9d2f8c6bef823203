// Package batch runs directory conversions across a bounded worker pool.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"fjacquet/pdf-outline/internal/logging"
)

// Status of one file in a batch run.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// Result is the outcome of processing one input file.
type Result struct {
	InputFile  string
	OutputFile string
	Status     string
	Err        error
	Duration   time.Duration
}

// Summary aggregates the results of a batch run.
type Summary struct {
	Processed int
	Succeeded int
	Failed    int
	Skipped   int
	Results   []Result
}

// WorkFunc converts one input file and returns its result. Implementations
// must be safe for concurrent use.
type WorkFunc func(ctx context.Context, inputFile string) Result

// Processor distributes files over a fixed number of workers. A failing
// file never aborts the run; its error is captured in the result.
type Processor struct {
	logger  logging.Logger
	workers int
}

// NewProcessor creates a Processor. Worker counts below 1 default to the
// number of CPUs.
func NewProcessor(logger logging.Logger, workers int) *Processor {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Processor{logger: logger, workers: workers}
}

// Run processes all files and returns a summary with results in input
// order. Small batches are processed sequentially to avoid pool overhead.
func (p *Processor) Run(ctx context.Context, files []string, work WorkFunc) Summary {
	if len(files) == 0 {
		return Summary{Results: []Result{}}
	}

	workers := p.workers
	if workers > len(files) {
		workers = len(files)
	}

	var results []Result
	if workers == 1 || len(files) < 2 {
		results = p.runSequential(ctx, files, work)
	} else {
		results = p.runConcurrent(ctx, files, work, workers)
	}

	return summarize(results)
}

func (p *Processor) runSequential(ctx context.Context, files []string, work WorkFunc) []Result {
	results := make([]Result, 0, len(files))
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		results = append(results, work(ctx, file))
	}
	return results
}

func (p *Processor) runConcurrent(ctx context.Context, files []string, work WorkFunc, workers int) []Result {
	type job struct {
		index int
		file  string
	}

	jobs := make(chan job)
	results := make([]Result, len(files))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = work(ctx, j.file)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, file := range files {
			select {
			case jobs <- job{index: i, file: file}:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()

	p.logger.Debug("Batch pool drained",
		logging.Field{Key: logging.FieldCount, Value: len(files)},
		logging.Field{Key: logging.FieldWorkers, Value: workers})

	return results
}

func summarize(results []Result) Summary {
	s := Summary{Results: results}
	for _, r := range results {
		if r.InputFile == "" {
			continue // slot never ran (cancelled)
		}
		s.Processed++
		switch r.Status {
		case StatusOK:
			s.Succeeded++
		case StatusSkipped:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}
