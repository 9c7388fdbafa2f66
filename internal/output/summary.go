package output

import (
	"fmt"
	"io"

	"strmatch/internal/pipeline"
)

// StreamSummary writes one human-readable sentence per result.
func StreamSummary(w io.Writer, in <-chan pipeline.Result) error {
	for r := range in {
		if _, err := fmt.Fprintf(w, "DNA sequence %s matches: %s\n", r.SequenceID, MatchCell(r)); err != nil {
			return err
		}
	}
	return nil
}
