// core/repeat/run.go
package repeat

// Run is one maximal stretch of back-to-back marker copies.
// Start is the 0-based offset of the first copy.
type Run struct {
	Start int
	Count int
}

// End returns the offset one past the last copy of a run of marker.
func (r Run) End(marker string) int { return r.Start + r.Count*len(marker) }

// LongestRun returns the largest number of immediately consecutive,
// non-overlapping copies of marker in seq.
//
// The scan is greedy: a hit consumes len(marker) bytes, a miss closes the
// current run and advances by one byte. An empty marker never matches.
func LongestRun(seq, marker string) int {
	m := len(marker)
	if m == 0 {
		return 0
	}
	best, cur := 0, 0
	for i := 0; i < len(seq); {
		if i+m <= len(seq) && seq[i:i+m] == marker {
			cur++
			i += m
			continue
		}
		if cur > best {
			best = cur
		}
		cur = 0
		i++
	}
	// a run touching the end of seq
	if cur > best {
		best = cur
	}
	return best
}

// Runs returns every maximal run of marker in seq, in sequence order,
// using the same alignment rule as LongestRun.
func Runs(seq, marker string) []Run {
	m := len(marker)
	if m == 0 {
		return nil
	}
	var (
		out   []Run
		cur   int
		start int
	)
	for i := 0; i < len(seq); {
		if i+m <= len(seq) && seq[i:i+m] == marker {
			if cur == 0 {
				start = i
			}
			cur++
			i += m
			continue
		}
		if cur > 0 {
			out = append(out, Run{Start: start, Count: cur})
		}
		cur = 0
		i++
	}
	if cur > 0 {
		out = append(out, Run{Start: start, Count: cur})
	}
	return out
}
