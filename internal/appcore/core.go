// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"strmatch/core/profile"
	"strmatch/internal/cmdutil"
	"strmatch/internal/output"
	"strmatch/internal/pipeline"
	"strmatch/internal/progress"
	"strmatch/internal/writers"
)

// Options configure one identification run.
type Options struct {
	SeqFiles []string

	Format string
	Counts bool
	Runs   bool
	Pretty bool // text only
	Header bool

	Threads  int
	Progress bool

	Quiet           bool
	NoMatchExitCode int
}

// Stats summarises a finished run.
type Stats struct {
	Sequences int
	Matched   int
}

// Run identifies every sequence in o.SeqFiles against table, writes the
// results to stdout and returns the process exit code:
// 0 ok, NoMatchExitCode when nothing matched, 3 on I/O errors, 130 on cancel.
func Run(parent context.Context, stdout, stderr io.Writer, o Options, table *profile.Table) (int, Stats) {
	var st Stats
	outw := bufio.NewWriter(stdout)

	if len(table.Rows) == 0 {
		cmdutil.Warnf(stderr, o.Quiet, "reference table has no rows; nothing can match")
	}
	if o.Runs && o.Format != output.FormatJSON && o.Format != output.FormatJSONL {
		cmdutil.Warnf(stderr, o.Quiet, "--runs is only rendered by json/jsonl output")
	}

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	wopts := output.Options{
		Markers:  table.Markers,
		Counts:   o.Counts,
		Runs:     o.Runs,
		Header:   o.Header,
		Database: table.Digest(),
	}
	format := o.Format
	if o.Pretty {
		if format == output.FormatText {
			format = writers.FormatPrettyText
		} else {
			cmdutil.Warnf(stderr, o.Quiet, "--pretty is only rendered by text output")
		}
	}
	needRuns := o.Runs || format == writers.FormatPrettyText
	inCh, writeErr := writers.Start(outw, format, wopts, thr*4)

	var bar *progress.Bar
	if o.Progress {
		bar = progress.Start(stderr, 0)
	}

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := pipeline.ForEachResult(ctx,
		pipeline.Config{Threads: thr, Runs: needRuns},
		o.SeqFiles,
		table,
		func(r pipeline.Result) error {
			st.Sequences++
			if r.Match.Found {
				st.Matched++
			}
			bar.Increment()
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)
	bar.Finish()

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0, st
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3, st
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0, st
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3, st
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130, st
		}
		fmt.Fprintln(stderr, perr)
		return 3, st
	}
	if st.Matched == 0 {
		return o.NoMatchExitCode, st
	}
	return 0, st
}
