// internal/cli/options_test.go
package cli

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestMinimalOK(t *testing.T) {
	o := mustParse(t, "--database", "small.csv", "1.txt")
	if o.Database != "small.csv" || len(o.SeqFiles) != 1 || o.Output != "text" || !o.Header || o.NoMatchExitCode != 1 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestAliasesAndRepeatable(t *testing.T) {
	o := mustParse(t, "-d", "small.csv", "-s", "a.fa", "--sequences", "b.fa", "-o", "json", "-t", "2", "--counts", "--no-header", "c.txt")
	if o.Output != "json" || o.Threads != 2 || !o.Counts || o.Header {
		t.Errorf("flags %+v", o)
	}
	if strings.Join(o.SeqFiles, ",") != "a.fa,b.fa,c.txt" {
		t.Errorf("seq files %v", o.SeqFiles)
	}
}

func TestFlagsAfterPositionals(t *testing.T) {
	o := mustParse(t, "1.txt", "2.txt", "--database", "large.csv", "--output", "summary")
	if o.Database != "large.csv" || o.Output != "summary" || len(o.SeqFiles) != 2 {
		t.Errorf("bad parse %+v", o)
	}
}

func TestValidationErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		part string
	}{
		{"no database", []string{"1.txt"}, "--database"},
		{"no sequences", []string{"--database", "x.csv"}, "sequence file"},
		{"bad output", []string{"-d", "x.csv", "-o", "xml", "1.txt"}, "invalid --output"},
		{"negative threads", []string{"-d", "x.csv", "-t", "-1", "1.txt"}, "--threads"},
		{"stdin twice", []string{"-d", "-", "-s", "-"}, "stdin"},
		{"exit code", []string{"-d", "x.csv", "--no-match-exit-code", "200", "1.txt"}, "no-match-exit-code"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), c.args)
			if err == nil || !strings.Contains(err.Error(), c.part) {
				t.Fatalf("err=%v want containing %q", err, c.part)
			}
		})
	}
}

func TestHelpAndVersion(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version: %+v %v", o, err)
	}
}

func TestConfigFileDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(cfg, []byte("database: small.csv\noutput: jsonl\ncounts: true\nsequences: [q.fa]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	o := mustParse(t, "--config", cfg)
	if o.Database != filepath.Join(dir, "small.csv") || o.Output != "jsonl" || !o.Counts {
		t.Fatalf("config not applied: %+v", o)
	}
	if len(o.SeqFiles) != 1 || o.SeqFiles[0] != filepath.Join(dir, "q.fa") {
		t.Fatalf("config sequences: %v", o.SeqFiles)
	}

	// explicit flags win over the file
	o = mustParse(t, "--config", cfg, "-o", "text", "--database", "other.csv", "1.txt")
	if o.Output != "text" || o.Database != "other.csv" || len(o.SeqFiles) != 1 || o.SeqFiles[0] != "1.txt" {
		t.Fatalf("flags should win: %+v", o)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("STRMATCH_DATABASE", "env.csv")
	o := mustParse(t, "1.txt")
	if o.Database != "env.csv" {
		t.Fatalf("env database not applied: %+v", o)
	}
}
