// core/seqio/reader.go
package seqio

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Record is one query sequence.
type Record struct {
	ID  string
	Seq string
}

// ReadRecords opens path and emits its sequences.
//
// FASTA input (first non-blank line starts with '>') yields one record per
// header. Anything else is a raw sequence file: all lines are joined into a
// single record named after the file (base name without extension, "stdin"
// for "-"). Sequences are upper-cased with whitespace removed.
//
// emit is called for each record. Return a non-nil error to stop early.
func ReadRecords(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer rc.Close()
	return Scan(ctx, rc, rawID(path), emit)
}

// Scan parses records from r. rawName names the record of a non-FASTA stream.
func Scan(ctx context.Context, r io.Reader, rawName string, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		id      string
		seq     = make([]byte, 0, 1<<16)
		started bool
	)
	flush := func() error {
		if !started {
			return nil
		}
		return emit(Record{ID: id, Seq: string(seq)})
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if started {
				if err := flush(); err != nil {
					return err
				}
			}
			started = true
			id = parseHeaderID(line[1:])
			seq = seq[:0]
			continue
		}
		if !started {
			started = true
			id = rawName
		}
		seq = appendBases(seq, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("sequence scan: %w", err)
	}
	if !started {
		// an empty raw file is still one (empty) query
		started = true
		id = rawName
	}
	return flush()
}

// appendBases appends line to dst upper-cased, dropping interior whitespace.
func appendBases(dst, line []byte) []byte {
	for _, c := range line {
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			continue
		case 'a' <= c && c <= 'z':
			c -= 'a' - 'A'
		}
		dst = append(dst, c)
	}
	return dst
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

func rawID(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}
