// pkg/api/identification_v1.go
package api

// IdentificationV1 is the stable JSON/JSONL schema for one identified sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type IdentificationV1 struct {
	SequenceID string `json:"sequence_id"`
	SourceFile string `json:"source_file,omitempty"`
	Length     int    `json:"length"`
	Matched    bool   `json:"matched"`
	Name       string `json:"name,omitempty"` // absent when Matched is false

	Counts   []MarkerCountV1 `json:"counts,omitempty"`
	Runs     []MarkerRunsV1  `json:"runs,omitempty"`
	Database string          `json:"database,omitempty"` // reference table digest
}

// MarkerCountV1 is the longest run of one marker. Order follows the table header.
type MarkerCountV1 struct {
	Marker string `json:"marker"`
	Count  int    `json:"count"`
}

// MarkerRunsV1 lists every run of one marker.
type MarkerRunsV1 struct {
	Marker string  `json:"marker"`
	Runs   []RunV1 `json:"runs"`
}

// RunV1 is one run: 0-based start offset and number of copies.
type RunV1 struct {
	Start int `json:"start"`
	Count int `json:"count"`
}
