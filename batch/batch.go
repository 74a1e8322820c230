// Package batch processes a corpus of transcript documents concurrently.
//
// Documents are fully independent, so the corpus is embarrassingly
// parallel: a worker pool assigns one document per task, with no
// cross-document shared state and no ordering guarantee between documents'
// completion. Results are returned in input order regardless.
//
// A per-document timeout guards against pathological inputs. Each
// document's failure is isolated: it is recorded on its result and the
// batch continues.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/tsawler/verbatim"
	"github.com/tsawler/verbatim/model"
)

// Options holds configuration for batch processing.
type Options struct {
	// Workers is the number of concurrent workers.
	// Default: runtime.NumCPU()
	Workers int

	// Timeout bounds the processing of a single document. Zero means no
	// per-document timeout.
	Timeout time.Duration

	// Configure, when set, is applied to each document's Extractor before
	// extraction runs. Use it to apply corpus calibration to the whole
	// batch.
	Configure func(*verbatim.Extractor) *verbatim.Extractor
}

// Result is the outcome for one document.
type Result struct {
	// Path is the input file the result belongs to.
	Path string

	// Speeches holds the extracted units; nil when Err is set.
	Speeches []model.Speech

	// Warnings holds the document's non-fatal conditions.
	Warnings []verbatim.Warning

	// Err records a fatal per-document failure (for example a missing
	// header anchor). It never aborts the rest of the batch.
	Err error
}

// Process extracts speeches from every input file using a worker pool.
// Results are returned in input order. A cancelled context stops the
// dispatch of further documents; already-dispatched documents finish or
// time out on their own.
func Process(ctx context.Context, paths []string, opts Options) []Result {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	results := make([]Result, len(paths))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = processOne(ctx, paths[i], opts)
			}
		}()
	}

dispatch:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(paths); j++ {
				results[j] = Result{Path: paths[j], Err: ctx.Err()}
			}
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// outcome carries one extraction's results across the timeout boundary.
type outcome struct {
	speeches []model.Speech
	warnings []verbatim.Warning
	err      error
}

// processOne runs the pipeline for a single document under the
// per-document timeout.
func processOne(ctx context.Context, path string, opts Options) Result {
	result := Result{Path: path}

	runCtx := ctx
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	// The pipeline itself is a bounded, synchronous transformation, so an
	// abandoned run finishes shortly after its result is discarded; the
	// buffered channel lets it exit without a reader.
	ch := make(chan outcome, 1)
	go func() {
		ext := verbatim.Open(path)
		if opts.Configure != nil {
			ext = opts.Configure(ext)
		}
		speeches, warnings, err := ext.Speeches()
		ch <- outcome{speeches: speeches, warnings: warnings, err: err}
	}()

	select {
	case o := <-ch:
		result.Speeches = o.speeches
		result.Warnings = o.warnings
		if o.err != nil {
			result.Err = fmt.Errorf("processing %s: %w", path, o.err)
		}
	case <-runCtx.Done():
		result.Err = fmt.Errorf("processing %s: %w", path, runCtx.Err())
	}

	return result
}
