// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"strmatch/core/profile"
	"strmatch/internal/appcore"
	"strmatch/internal/cli"
	"strmatch/internal/version"
	"strmatch/internal/writers"
)

// flushOr flushes w and maps the outcome to an exit code (broken pipe is fine).
func flushOr(w *bufio.Writer, stderr io.Writer, code int) int {
	if e := w.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("strmatch")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flushOr(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flushOr(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "strmatch version %s\n", version.Version)
		return flushOr(outw, stderr, 0)
	}

	table, err := profile.LoadCSV(opts.Database)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	code, _ := appcore.Run(parent, stdout, stderr, appcore.Options{
		SeqFiles: opts.SeqFiles,
		Format:   opts.Output, Counts: opts.Counts, Runs: opts.Runs, Pretty: opts.Pretty, Header: opts.Header,
		Threads: opts.Threads, Progress: opts.Progress,
		Quiet: opts.Quiet, NoMatchExitCode: opts.NoMatchExitCode,
	}, table)
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
