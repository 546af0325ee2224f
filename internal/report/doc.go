// Package report renders human-facing output: the summary printed after a
// build and the results of registry queries. Text output is laid out with
// lipgloss tables; JSON output is meant for scripts and is not a stable
// interface.
package report
