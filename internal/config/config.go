// Package config loads run defaults from an optional settings file and the
// environment (STRMATCH_*). Flags given on the command line always win; see
// cli.ParseArgs.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended (with "_") to every environment key.
const EnvPrefix = "STRMATCH"

// Defaults mirrors the subset of flags that may come from a settings file.
type Defaults struct {
	// reference table (CSV)
	Database string `mapstructure:"database"`

	// sequence inputs, appended to any positionals
	Sequences []string `mapstructure:"sequences"`

	Output          string `mapstructure:"output"`
	Counts          bool   `mapstructure:"counts"`
	Runs            bool   `mapstructure:"runs"`
	Pretty          bool   `mapstructure:"pretty"`
	NoHeader        bool   `mapstructure:"no-header"`
	Threads         int    `mapstructure:"threads"`
	Progress        bool   `mapstructure:"progress"`
	NoMatchExitCode int    `mapstructure:"no-match-exit-code"`
	Quiet           bool   `mapstructure:"quiet"`
}

// Builtin are the values used when neither a flag, the file nor the
// environment sets a key.
var Builtin = Defaults{
	Output:          "text",
	NoMatchExitCode: 1,
}

// Load reads path (YAML, TOML or JSON, by extension) on top of Builtin and
// the environment. An empty path reads only the environment. Relative
// database and sequence paths in the file resolve against the file's
// directory.
func Load(path string) (Defaults, error) {
	v := viper.New()
	v.SetDefault("database", Builtin.Database)
	v.SetDefault("sequences", Builtin.Sequences)
	v.SetDefault("output", Builtin.Output)
	v.SetDefault("counts", Builtin.Counts)
	v.SetDefault("runs", Builtin.Runs)
	v.SetDefault("pretty", Builtin.Pretty)
	v.SetDefault("no-header", Builtin.NoHeader)
	v.SetDefault("threads", Builtin.Threads)
	v.SetDefault("progress", Builtin.Progress)
	v.SetDefault("no-match-exit-code", Builtin.NoMatchExitCode)
	v.SetDefault("quiet", Builtin.Quiet)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Defaults{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	var d Defaults
	if err := v.Unmarshal(&d); err != nil {
		return Defaults{}, fmt.Errorf("config %s: decode: %w", path, err)
	}

	if path != "" {
		dir := filepath.Dir(path)
		if v.InConfig("database") {
			d.Database = resolve(dir, d.Database)
		}
		if v.InConfig("sequences") {
			for i, s := range d.Sequences {
				d.Sequences[i] = resolve(dir, s)
			}
		}
	}
	return d, nil
}

func resolve(dir, p string) string {
	if p == "" || p == "-" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
