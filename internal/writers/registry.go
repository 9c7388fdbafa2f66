// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"strmatch/internal/output"
	"strmatch/internal/pipeline"
	"strmatch/internal/pretty"
)

// StreamFunc consumes results from in until it is closed.
type StreamFunc func(w io.Writer, in <-chan pipeline.Result, o output.Options) error

// FormatPrettyText is text output with a per-marker runs block under each
// line. It is selected by --pretty rather than by --output.
const FormatPrettyText = "text+pretty"

// Writer registry (format → handler). Formats register in init().
var registry = map[string]StreamFunc{}

// Register binds format to fn (idempotent last-wins).
func Register(format string, fn StreamFunc) { registry[format] = fn }

// Registered lists known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register(output.FormatText, output.StreamText)
	Register(FormatPrettyText, func(w io.Writer, in <-chan pipeline.Result, o output.Options) error {
		markers := o.Markers
		o.Render = func(r pipeline.Result) string {
			return pretty.RenderResult(r, markers, pretty.DefaultOptions)
		}
		return output.StreamText(w, in, o)
	})
	Register(output.FormatSummary, func(w io.Writer, in <-chan pipeline.Result, _ output.Options) error {
		return output.StreamSummary(w, in)
	})
	Register(output.FormatJSON, func(w io.Writer, in <-chan pipeline.Result, o output.Options) error {
		var buf []pipeline.Result
		for r := range in {
			buf = append(buf, r)
		}
		return output.WriteJSON(w, buf, o)
	})
	Register(output.FormatJSONL, streamJSONL)
}

// Start spins up a writer goroutine for format. The returned error channel
// yields exactly one value once in is closed and the writer is done.
func Start(out io.Writer, format string, o output.Options, bufSize int) (chan<- pipeline.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan pipeline.Result, bufSize)
	errCh := make(chan error, 1)

	fn, ok := registry[format]
	go func() {
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown output format %q (no writer registered)", format)
			return
		}
		err := fn(out, in, o)
		if err != nil {
			// unblock the producer
			for range in {
			}
		}
		errCh <- err
	}()
	return in, errCh
}
