// Package pretty renders a per-marker view of where each STR run sits in a
// query sequence, printed under the TSV line with --pretty.
package pretty

import (
	"strconv"
	"strings"

	"strmatch/core/repeat"
	"strmatch/internal/pipeline"
)

// Options control the ASCII rendering.
type Options struct {
	// Longest bar drawn for a run; longer runs are truncated with MoreGlyph.
	MaxBar int

	// Glyphs
	RunGlyph  string // one per repeat copy, default "#"
	MoreGlyph string // appended to a truncated bar, default "+"
	NoneGlyph string // shown when a marker never occurs, default "-"

	// Cap on the number of run positions listed per marker (0 = all).
	MaxRuns int
}

// DefaultOptions is used by the text writer.
var DefaultOptions = Options{
	MaxBar:    40,
	RunGlyph:  "#",
	MoreGlyph: "+",
	NoneGlyph: "-",
	MaxRuns:   8,
}

// RenderResult draws one line per marker:
//
//	  AGATC  4  ####      @102x4 @340x1
//
// The bar shows the longest run; the list shows where every run starts and
// how many copies it holds. r.Runs must be filled (pipeline.Config.Runs).
func RenderResult(r pipeline.Result, markers []string, o Options) string {
	o = withDefaults(o)
	mw := 0
	for _, m := range markers {
		if len(m) > mw {
			mw = len(m)
		}
	}
	cw := 1
	for _, c := range r.Counts {
		if n := len(strconv.Itoa(c)); n > cw {
			cw = n
		}
	}
	bw := 0
	for _, c := range r.Counts {
		if n := barWidth(c, o); n > bw {
			bw = n
		}
	}

	var b strings.Builder
	for i, m := range markers {
		count := 0
		if i < len(r.Counts) {
			count = r.Counts[i]
		}
		b.WriteString("  ")
		b.WriteString(pad(m, mw))
		b.WriteString("  ")
		b.WriteString(padLeft(strconv.Itoa(count), cw))
		b.WriteString("  ")
		b.WriteString(pad(bar(count, o), bw))
		b.WriteString("  ")
		var runs string
		if i < len(r.Runs) {
			runs = positions(r.Runs[i], o)
		}
		if runs == "" {
			runs = o.NoneGlyph
		}
		b.WriteString(runs)
		b.WriteByte('\n')
	}
	return b.String()
}

func withDefaults(o Options) Options {
	d := DefaultOptions
	if o.MaxBar <= 0 {
		o.MaxBar = d.MaxBar
	}
	if o.RunGlyph == "" {
		o.RunGlyph = d.RunGlyph
	}
	if o.MoreGlyph == "" {
		o.MoreGlyph = d.MoreGlyph
	}
	if o.NoneGlyph == "" {
		o.NoneGlyph = d.NoneGlyph
	}
	return o
}

func barWidth(count int, o Options) int {
	if count > o.MaxBar {
		return o.MaxBar + len([]rune(o.MoreGlyph))
	}
	return count * len([]rune(o.RunGlyph))
}

func bar(count int, o Options) string {
	if count > o.MaxBar {
		return strings.Repeat(o.RunGlyph, o.MaxBar) + o.MoreGlyph
	}
	return strings.Repeat(o.RunGlyph, count)
}

func positions(runs []repeat.Run, o Options) string {
	parts := make([]string, 0, len(runs))
	for i, x := range runs {
		if o.MaxRuns > 0 && i == o.MaxRuns {
			parts = append(parts, "…+"+strconv.Itoa(len(runs)-i))
			break
		}
		parts = append(parts, "@"+strconv.Itoa(x.Start)+"x"+strconv.Itoa(x.Count))
	}
	return strings.Join(parts, " ")
}

func pad(s string, w int) string {
	if n := len([]rune(s)); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func padLeft(s string, w int) string {
	if len(s) < w {
		return strings.Repeat(" ", w-len(s)) + s
	}
	return s
}
