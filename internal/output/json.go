// internal/output/json.go
package output

import (
	"io"

	"strmatch/internal/jsonutil"
	"strmatch/internal/pipeline"
	"strmatch/pkg/api"
)

// ToAPI converts a pipeline result to the stable wire schema (v1).
func ToAPI(r pipeline.Result, o Options) api.IdentificationV1 {
	v := api.IdentificationV1{
		SequenceID: r.SequenceID,
		SourceFile: r.SourceFile,
		Length:     r.Length,
		Matched:    r.Match.Found,
		Database:   o.Database,
	}
	if r.Match.Found {
		v.Name = r.Match.Name
	}
	if o.Counts {
		v.Counts = make([]api.MarkerCountV1, 0, len(r.Counts))
		for i, c := range r.Counts {
			v.Counts = append(v.Counts, api.MarkerCountV1{Marker: markerAt(o.Markers, i), Count: c})
		}
	}
	if o.Runs && r.Runs != nil {
		v.Runs = make([]api.MarkerRunsV1, 0, len(r.Runs))
		for i, rs := range r.Runs {
			mr := api.MarkerRunsV1{Marker: markerAt(o.Markers, i), Runs: make([]api.RunV1, 0, len(rs))}
			for _, x := range rs {
				mr.Runs = append(mr.Runs, api.RunV1{Start: x.Start, Count: x.Count})
			}
			v.Runs = append(v.Runs, mr)
		}
	}
	return v
}

func markerAt(markers []string, i int) string {
	if i < len(markers) {
		return markers[i]
	}
	return ""
}

// WriteJSON writes a single JSON array of v1 identifications (pretty-indented).
func WriteJSON(w io.Writer, list []pipeline.Result, o Options) error {
	out := make([]api.IdentificationV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPI(r, o))
	}
	return jsonutil.EncodePretty(w, out)
}
