// Package metrics collects operation counters and timings across the
// analysis algorithms.
//
// A Registry carries named atomic counters, stopwatch-style timers and
// free-form custom values. The canonical counter names used by the
// analysis packages are declared as constants, so reports from
// different runs line up.
//
// The helpers RecordSCC, RecordSort and RecordPaths copy an algorithm's
// per-run metrics snapshot into the shared registry, accumulating
// counters and recording the run's elapsed time.
//
// All Registry methods are safe for concurrent use.
package metrics
