// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"strmatch/internal/jsonlutil"
	"strmatch/internal/output"
	"strmatch/internal/pipeline"
)

// streamJSONL writes each result as one JSON line (v1).
func streamJSONL(w io.Writer, in <-chan pipeline.Result, o output.Options) error {
	return jsonlutil.Encode[pipeline.Result](w, in,
		func(enc *json.Encoder, r pipeline.Result) error {
			return enc.Encode(output.ToAPI(r, o))
		},
		IsBrokenPipe,
	)
}
