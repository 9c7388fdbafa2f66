// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"strmatch/internal/cliutil"
	"strmatch/internal/config"
	"strmatch/internal/output"
	"strmatch/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Database string
	SeqFiles []string

	// Output
	Output          string
	Counts          bool
	Runs            bool
	Pretty          bool
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Performance
	Threads  int
	Progress bool

	// Misc
	Config  string
	Quiet   bool
	Version bool
}

// aliases maps short flag names to the long name they stand for.
var aliases = map[string]string{
	"d": "database",
	"s": "sequences",
	"o": "output",
	"t": "threads",
	"q": "quiet",
	"v": "version",
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: identify DNA sequences by STR profile

Version: %s

Usage: %s --database refs.csv [options] SEQUENCE_FILES...

Every sequence is reduced to the longest run of each STR marker named in the
reference table header and matched exactly against the table rows.

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// sliceValue appends each value to a *[]string (for --sequences/-s)
type sliceValue struct{ dst *[]string }

func (s *sliceValue) String() string {
	if s.dst == nil {
		return ""
	}
	return strings.Join(*s.dst, ",")
}
func (s *sliceValue) Set(v string) error { *s.dst = append(*s.dst, v); return nil }

// ParseArgs registers and parses all flags, applies config-file and
// environment defaults to flags that were not given, expands positional
// globs and validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool
	b := config.Builtin

	// Input
	fs.StringVar(&opt.Database, "database", b.Database, "reference table CSV (name,STR1,STR2,...) [*]")
	fs.StringVar(&opt.Database, "d", b.Database, "alias of --database")
	seqVal := &sliceValue{dst: &opt.SeqFiles}
	fs.Var(seqVal, "sequences", "sequence file(s): raw or FASTA, gzip ok (repeatable or '-')")
	fs.Var(seqVal, "s", "alias of --sequences")

	// Output
	fs.StringVar(&opt.Output, "output", b.Output, "output format: "+strings.Join(output.Formats, " | ")+" ["+b.Output+"]")
	fs.StringVar(&opt.Output, "o", b.Output, "alias of --output")
	fs.BoolVar(&opt.Counts, "counts", b.Counts, "include per-marker longest-run counts [false]")
	fs.BoolVar(&opt.Runs, "runs", b.Runs, "include every run of every marker (json/jsonl) [false]")
	fs.BoolVar(&opt.Pretty, "pretty", b.Pretty, "draw each marker's runs under the text line [false]")
	fs.BoolVar(&noHeader, "no-header", b.NoHeader, "suppress header line in text output [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", b.NoMatchExitCode, "exit code when no sequence matched [1]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", b.Threads, "worker threads (0 = all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", b.Threads, "alias of --threads")
	fs.BoolVar(&opt.Progress, "progress", b.Progress, "show a progress bar on stderr [false]")

	// Misc
	fs.StringVar(&opt.Config, "config", "", "settings file (yaml|toml|json); also $"+config.EnvPrefix+"_CONFIG")
	fs.BoolVar(&opt.Quiet, "quiet", b.Quiet, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", b.Quiet, "alias of --quiet")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")
	fs.BoolVar(&help, "h", false, "show this help message [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	posArgs = append(posArgs, fs.Args()...)
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		set[name] = true
	})

	if opt.Config == "" {
		opt.Config = os.Getenv(config.EnvPrefix + "_CONFIG")
	}
	d, err := config.Load(opt.Config)
	if err != nil {
		return opt, err
	}
	if !set["database"] {
		opt.Database = d.Database
	}
	if !set["output"] {
		opt.Output = d.Output
	}
	if !set["counts"] {
		opt.Counts = d.Counts
	}
	if !set["runs"] {
		opt.Runs = d.Runs
	}
	if !set["pretty"] {
		opt.Pretty = d.Pretty
	}
	if !set["no-header"] {
		noHeader = d.NoHeader
	}
	if !set["no-match-exit-code"] {
		opt.NoMatchExitCode = d.NoMatchExitCode
	}
	if !set["threads"] {
		opt.Threads = d.Threads
	}
	if !set["progress"] {
		opt.Progress = d.Progress
	}
	if !set["quiet"] {
		opt.Quiet = d.Quiet
	}
	opt.Header = !noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return opt, err
		}
		opt.SeqFiles = append(opt.SeqFiles, exp...)
	}
	if len(opt.SeqFiles) == 0 {
		opt.SeqFiles = append(opt.SeqFiles, d.Sequences...)
	}
	return opt, Validate(opt)
}

// Validate applies the CLI invariants.
func Validate(o Options) error {
	if o.Database == "" {
		return errors.New("--database is required")
	}
	if len(o.SeqFiles) == 0 {
		return errors.New("at least one sequence file is required")
	}
	stdin := 0
	for _, f := range o.SeqFiles {
		if f == "-" {
			stdin++
		}
	}
	if o.Database == "-" {
		stdin++
	}
	if stdin > 1 {
		return errors.New("stdin ('-') can be read only once")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 125 {
		return errors.New("--no-match-exit-code must be in 0..125")
	}
	valid := false
	for _, f := range output.Formats {
		if o.Output == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	return nil
}
