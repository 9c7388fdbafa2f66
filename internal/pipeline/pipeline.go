// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"strmatch/core/profile"
	"strmatch/core/repeat"
	"strmatch/core/seqio"
)

// Config controls the identification pipeline.
type Config struct {
	Threads int  // number of worker goroutines (>=1)
	Runs    bool // fill Result.Runs with every run of every marker
}

// Result is one identified query sequence.
type Result struct {
	Index      int // 0-based position across all inputs
	SequenceID string
	SourceFile string
	Length     int
	Counts     profile.Vector
	Match      profile.Match
	Runs       [][]repeat.Run // indexed like Table.Markers; nil unless Config.Runs
}

// ForEachResult identifies every record of every file in seqFiles and calls
// visit once per record, ordered by Result.Index.
//
// A file that cannot be opened or parsed does not stop the others; the first
// such error is returned once everything else has been visited. A visit
// error stops the run and is returned. Cancellation of ctx returns ctx.Err().
func ForEachResult(
	ctx context.Context,
	cfg Config,
	seqFiles []string,
	table *profile.Table,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	type job struct {
		idx  int
		rec  seqio.Record
		file string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				counts, m := table.Identify(j.rec.Seq)
				r := Result{
					Index:      j.idx,
					SequenceID: j.rec.ID,
					SourceFile: j.file,
					Length:     len(j.rec.Seq),
					Counts:     counts,
					Match:      m,
				}
				if cfg.Runs {
					r.Runs = profile.MarkerRuns(j.rec.Seq, table.Markers)
				}
				select {
				case results <- r:
				case <-runCtx.Done():
					// keep draining jobs so the feeder never blocks
				}
			}
		}()
	}

	// Collector: restores input order.
	var (
		visitErr error
		cwg      sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		next := 0
		pending := map[int]Result{}
		for r := range results {
			if visitErr != nil {
				continue
			}
			pending[r.Index] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(p); err != nil {
					visitErr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
	var feedErr error
	idx := 0
	for _, path := range seqFiles {
		if runCtx.Err() != nil {
			break
		}
		err := seqio.ReadRecords(runCtx, path, func(rec seqio.Record) error {
			select {
			case <-runCtx.Done():
				return runCtx.Err()
			case jobs <- job{idx: idx, rec: rec, file: path}:
				idx++
				return nil
			}
		})
		if err != nil && runCtx.Err() == nil && feedErr == nil {
			// Keep scanning other files; first error will be returned.
			feedErr = err
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case visitErr != nil:
		return visitErr
	}
	return feedErr
}
