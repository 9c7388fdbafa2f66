// internal/progress/progress.go
package progress

import (
	"io"

	"gopkg.in/cheggaaa/pb.v1"
)

// Bar counts identified sequences on a terminal. The zero value and a nil
// *Bar are no-ops, so callers need not branch on --progress.
type Bar struct {
	bar *pb.ProgressBar
}

// Start shows a bar on w sized to total. total <= 0 means unknown.
func Start(w io.Writer, total int) *Bar {
	b := pb.New(total)
	b.Output = w
	b.ShowSpeed = false
	b.ShowTimeLeft = total > 0
	if total <= 0 {
		b.ShowBar = false
		b.ShowPercent = false
	}
	b.ShowCounters = true
	b.SetMaxWidth(80)
	b.Prefix("identify ")
	b.Start()
	return &Bar{bar: b}
}

// Increment advances the bar by one.
func (b *Bar) Increment() {
	if b == nil || b.bar == nil {
		return
	}
	b.bar.Increment()
}

// Finish draws the final state and stops the refresh goroutine.
func (b *Bar) Finish() {
	if b == nil || b.bar == nil {
		return
	}
	b.bar.Finish()
}
