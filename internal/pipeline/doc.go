// Package pipeline reads query sequences from files, identifies each one
// against a shared reference table on a pool of workers, and hands results
// to a visit callback in input order.
//
// The table is read-only for the whole run, so workers share it without
// locking. Ordering is restored by the collector, which makes parallel and
// serial runs byte-identical downstream.
package pipeline
