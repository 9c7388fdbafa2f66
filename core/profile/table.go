// core/profile/table.go
package profile

import (
	"errors"
	"fmt"
)

// Row is one known individual.
type Row struct {
	Name   string
	Counts Vector
}

// Table is a validated reference table. Treat it as read-only once built;
// it is then safe to share between goroutines.
type Table struct {
	Markers []string
	Rows    []Row
}

// NewTable validates markers and rows and returns a Table that owns copies
// of both.
func NewTable(markers []string, rows []Row) (*Table, error) {
	if len(markers) == 0 {
		return nil, errors.New("reference table has no markers")
	}
	seen := make(map[string]int, len(markers))
	ms := make([]string, len(markers))
	for i, m := range markers {
		if m == "" {
			return nil, fmt.Errorf("marker %d is empty", i+1)
		}
		if j, dup := seen[m]; dup {
			return nil, fmt.Errorf("marker %q repeated (columns %d and %d)", m, j+1, i+1)
		}
		seen[m] = i
		ms[i] = m
	}
	rs := make([]Row, len(rows))
	for i, r := range rows {
		if r.Name == "" {
			return nil, fmt.Errorf("row %d has no name", i+1)
		}
		if len(r.Counts) != len(ms) {
			return nil, fmt.Errorf("row %d (%s): %d counts for %d markers", i+1, r.Name, len(r.Counts), len(ms))
		}
		for j, c := range r.Counts {
			if c < 0 {
				return nil, fmt.Errorf("row %d (%s): negative count %d for %s", i+1, r.Name, c, ms[j])
			}
		}
		rs[i] = Row{Name: r.Name, Counts: append(Vector(nil), r.Counts...)}
	}
	return &Table{Markers: ms, Rows: rs}, nil
}

// MarkerIndex returns the column of marker m, or -1.
func (t *Table) MarkerIndex(m string) int {
	for i, x := range t.Markers {
		if x == m {
			return i
		}
	}
	return -1
}

// MaxMarkerLen is the length of the longest marker.
func (t *Table) MaxMarkerLen() int {
	n := 0
	for _, m := range t.Markers {
		if len(m) > n {
			n = len(m)
		}
	}
	return n
}
