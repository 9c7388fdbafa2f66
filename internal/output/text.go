// internal/output/text.go
package output

import (
	"bufio"
	"io"
	"strconv"

	"strmatch/internal/pipeline"
)

// StreamText writes one TSV line per result as it arrives.
func StreamText(w io.Writer, in <-chan pipeline.Result, o Options) error {
	bw := bufio.NewWriter(w)
	if o.Header {
		if _, err := bw.WriteString(o.HeaderLine() + "\n"); err != nil {
			return err
		}
	}
	for r := range in {
		if err := writeTSVLine(bw, r, o); err != nil {
			return err
		}
		if o.Render != nil {
			if _, err := bw.WriteString(o.Render(r)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteText writes a slice of results as TSV (parity with StreamText).
func WriteText(w io.Writer, list []pipeline.Result, o Options) error {
	ch := make(chan pipeline.Result, len(list))
	for _, r := range list {
		ch <- r
	}
	close(ch)
	return StreamText(w, ch, o)
}

func writeTSVLine(bw *bufio.Writer, r pipeline.Result, o Options) error {
	line := make([]byte, 0, 64+8*len(r.Counts))
	line = append(line, r.SequenceID...)
	line = append(line, '\t')
	line = append(line, r.SourceFile...)
	line = append(line, '\t')
	line = strconv.AppendInt(line, int64(r.Length), 10)
	line = append(line, '\t')
	line = append(line, MatchCell(r)...)
	if o.Counts {
		for _, c := range r.Counts {
			line = append(line, '\t')
			line = strconv.AppendInt(line, int64(c), 10)
		}
	}
	line = append(line, '\n')
	_, err := bw.Write(line)
	return err
}
