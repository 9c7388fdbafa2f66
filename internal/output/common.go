package output

import (
	"strings"

	"strmatch/internal/pipeline"
)

// Output formats accepted by --output.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Formats lists every supported format, in help-text order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatSummary}

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "sequence_id\tsource_file\tlength\tmatch"

// Options carries what every writer needs beyond the results themselves.
type Options struct {
	Markers  []string // table header, for count columns
	Counts   bool     // include per-marker counts
	Runs     bool     // include per-marker runs (structured formats only)
	Header   bool     // TSV header line
	Database string   // table digest for structured formats

	// Render, if set, draws an extra text block under each TSV line.
	Render func(pipeline.Result) string
}

// HeaderLine returns the TSV header, extended by one column per marker when
// counts are requested.
func (o Options) HeaderLine() string {
	if !o.Counts || len(o.Markers) == 0 {
		return TSVHeader
	}
	return TSVHeader + "\t" + strings.Join(o.Markers, "\t")
}

// MatchCell renders the match column.
func MatchCell(r pipeline.Result) string { return r.Match.String() }
