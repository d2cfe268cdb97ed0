// Package report collects haiku rule violations found while checking definitions.
//
// A [Reporter] is safe for concurrent use. The analyzer keeps one per pass and
// flushes it into analysis diagnostics, the CLI keeps one per run and prints a
// summary.
package report
