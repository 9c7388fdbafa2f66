package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const small = "name,AGATC,AATG,TATC\nAlice,2,8,3\nBob,4,1,5\nCharlie,3,2,5\n"

func TestReadCSV(t *testing.T) {
	tb, err := ReadCSV(strings.NewReader(small))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(tb.Markers) != 3 || tb.Markers[0] != "AGATC" || tb.Markers[2] != "TATC" {
		t.Fatalf("markers=%v", tb.Markers)
	}
	if len(tb.Rows) != 3 || tb.Rows[1].Name != "Bob" || !tb.Rows[1].Counts.Equal(Vector{4, 1, 5}) {
		t.Fatalf("rows=%+v", tb.Rows)
	}
}

func TestReadCSVTolerant(t *testing.T) {
	in := "name, agatc ,AATG\r\n# comment\nAlice, 2 ,8\r\n\n\n"
	tb, err := ReadCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if tb.Markers[0] != "AGATC" || len(tb.Rows) != 1 || !tb.Rows[0].Counts.Equal(Vector{2, 8}) {
		t.Fatalf("table=%+v", tb)
	}
}

func TestReadCSVErrors(t *testing.T) {
	cases := []struct {
		name, in, errPart string
	}{
		{"empty", "", "empty reference table"},
		{"no markers", "name\nAlice\n", "at least one marker"},
		{"bad int", "name,AGAT\nAlice,x\n", "line 2: AGAT count \"x\""},
		{"field count", "name,AGAT,AATG\nAlice,1\n", "line 2: 2 fields"},
		{"negative", "name,AGAT\nAlice,-3\n", "negative"},
		{"duplicate marker", "name,AGAT,agat\n", "repeated"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(c.in))
			if err == nil || !strings.Contains(err.Error(), c.errPart) {
				t.Fatalf("err=%v want containing %q", err, c.errPart)
			}
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.csv")
	if err := os.WriteFile(path, []byte(small), 0o644); err != nil {
		t.Fatal(err)
	}
	tb, err := LoadCSV(path)
	if err != nil || len(tb.Rows) != 3 {
		t.Fatalf("LoadCSV: %v %+v", err, tb)
	}

	bad := filepath.Join(t.TempDir(), "bad.csv")
	_ = os.WriteFile(bad, []byte("name,AGAT\nAlice,zz\n"), 0o644)
	if _, err := LoadCSV(bad); err == nil || !strings.HasPrefix(err.Error(), bad+":") {
		t.Fatalf("error should name the file: %v", err)
	}

	if _, err := LoadCSV(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
