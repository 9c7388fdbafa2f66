package cmdutil

import (
	"bytes"
	"testing"
)

func TestWarnf(t *testing.T) {
	var b bytes.Buffer
	Warnf(&b, false, "skipped %d rows", 2)
	if b.String() != "WARN: skipped 2 rows\n" {
		t.Fatalf("got %q", b.String())
	}
	b.Reset()
	Warnf(&b, true, "muted")
	if b.Len() != 0 {
		t.Fatalf("quiet should suppress, got %q", b.String())
	}
}
