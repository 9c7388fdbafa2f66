// Package writers turns pipeline results into serialized outputs.
//
// Each writer runs in its own goroutine fed by a channel, so the pipeline
// never blocks on formatting. JSON and JSONL go through pkg/api (v1) for a
// stable wire format.
package writers
