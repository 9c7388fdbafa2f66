// core/profile/profile.go
package profile

import (
	"strings"

	"strmatch/core/repeat"
)

// NoMatchText is how an unmatched identification is rendered for humans.
const NoMatchText = "No Match."

// Vector holds one longest-run count per marker, aligned with the marker list.
type Vector []int

// Equal reports element-wise equality. Vectors of different length are unequal.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// Match is the outcome of a table lookup. The zero value means no row matched.
type Match struct {
	Name  string
	Found bool
}

func (m Match) String() string {
	if !m.Found {
		return NoMatchText
	}
	return m.Name
}

// CountVector computes LongestRun for every marker, preserving marker order.
func CountVector(seq string, markers []string) Vector {
	v := make(Vector, len(markers))
	for i, m := range markers {
		v[i] = repeat.LongestRun(seq, m)
	}
	return v
}

// MarkerRuns lists every run of every marker, indexed like markers.
func MarkerRuns(seq string, markers []string) [][]repeat.Run {
	out := make([][]repeat.Run, len(markers))
	for i, m := range markers {
		out[i] = repeat.Runs(seq, m)
	}
	return out
}

// FindMatch returns the first row, in table order, whose counts equal v.
func FindMatch(t *Table, v Vector) Match {
	if t == nil {
		return Match{}
	}
	for _, r := range t.Rows {
		if r.Counts.Equal(v) {
			return Match{Name: r.Name, Found: true}
		}
	}
	return Match{}
}

// Identify counts seq over the table's markers and looks the vector up.
func (t *Table) Identify(seq string) (Vector, Match) {
	v := CountVector(seq, t.Markers)
	return v, FindMatch(t, v)
}

// NormalizeMarker upper-cases a marker and strips surrounding whitespace.
func NormalizeMarker(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
