package seqio

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const multi = `>seq1 first sample
AGATAGAT
agat
>seq2
NNnn
`

func collect(t *testing.T, path string) []Record {
	t.Helper()
	var recs []Record
	if err := ReadRecords(context.Background(), path, func(r Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return recs
}

// writeGz creates a gzipped file with the provided data and returns its path.
func writeGz(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gzip: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close file: %v", err)
	}
	return path
}

func TestReadFASTA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q.fa")
	if err := os.WriteFile(path, []byte(multi), 0o644); err != nil {
		t.Fatal(err)
	}
	recs := collect(t, path)
	if len(recs) != 2 {
		t.Fatalf("want 2 records, got %+v", recs)
	}
	if recs[0].ID != "seq1" || recs[0].Seq != "AGATAGATAGAT" {
		t.Fatalf("rec0=%+v", recs[0])
	}
	if recs[1].ID != "seq2" || recs[1].Seq != "NNNN" {
		t.Fatalf("rec1=%+v", recs[1])
	}
}

func TestReadRawSequence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "7.txt")
	if err := os.WriteFile(path, []byte("AGATAGAT\nAATG\r\n\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	recs := collect(t, path)
	if len(recs) != 1 || recs[0].ID != "7" || recs[0].Seq != "AGATAGATAATG" {
		t.Fatalf("raw parse: %+v", recs)
	}
}

func TestReadEmptyRawFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	recs := collect(t, path)
	if len(recs) != 1 || recs[0].ID != "empty" || recs[0].Seq != "" {
		t.Fatalf("empty parse: %+v", recs)
	}
}

func TestReadGzip(t *testing.T) {
	recs := collect(t, writeGz(t, "q.fa.gz", multi))
	if len(recs) != 2 || recs[0].ID != "seq1" || recs[1].ID != "seq2" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
	raw := collect(t, writeGz(t, "12.txt.gz", "TCTG\n"))
	if len(raw) != 1 || raw[0].ID != "12" {
		t.Fatalf("gzip raw id: %+v", raw)
	}
}

func TestReadStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()

	go func() {
		_, _ = io.WriteString(w, multi)
		_ = w.Close()
	}()

	if recs := collect(t, "-"); len(recs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(recs))
	}
}

func TestScanStopsOnEmitError(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Scan(context.Background(), strings.NewReader(multi), "x", func(Record) error {
		n++
		return stop
	})
	if !errors.Is(err, stop) || n != 1 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestScanCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Scan(ctx, strings.NewReader(multi), "x", func(Record) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestOpenMissing(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.fa")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
