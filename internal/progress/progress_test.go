package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestNilBarIsNoop(t *testing.T) {
	var b *Bar
	b.Increment()
	b.Finish()
	(&Bar{}).Increment()
}

func TestBarWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	b := Start(&buf, 3)
	for i := 0; i < 3; i++ {
		b.Increment()
	}
	b.Finish()
	if !strings.Contains(buf.String(), "identify") {
		t.Fatalf("bar output %q", buf.String())
	}
}
