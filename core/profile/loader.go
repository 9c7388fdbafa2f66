// core/profile/loader.go
package profile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"strmatch/core/seqio"
)

// LoadCSV reads a reference table from path ("-" for stdin, gzip allowed).
//
//	name,AGATC,AATG,TATC
//	Alice,2,8,3
//	Bob,4,1,5
//
// The first header cell is a label and is ignored; the remaining cells are
// the markers, upper-cased.
func LoadCSV(path string) (*Table, error) {
	rc, err := seqio.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	t, err := ReadCSV(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a reference table from r. Errors carry the line number.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty reference table")
	}
	if err != nil {
		return nil, err
	}
	if len(header) < 2 {
		return nil, errors.New("line 1: header needs a name column and at least one marker")
	}
	markers := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		markers = append(markers, NormalizeMarker(h))
	}

	var rows []Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		ln, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, fmt.Errorf("line %d: %d fields, header has %d", ln, len(rec), len(header))
		}
		row := Row{Name: strings.TrimSpace(rec[0]), Counts: make(Vector, len(markers))}
		for i, cell := range rec[1:] {
			n, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("line %d: %s count %q is not an integer", ln, markers[i], cell)
			}
			row.Counts[i] = n
		}
		rows = append(rows, row)
	}
	t, err := NewTable(markers, rows)
	if err != nil {
		return nil, err
	}
	return t, nil
}
