// Package tracking models the per-employee, per-project ledger of task counts,
// efficiency, and cumulative hours. One TrackingRecord exists per (employee,
// project) pair, optionally narrowed to a production stage. Task counts are
// written as full snapshots (last-write-wins, see the repository port); hours
// only ever grow.
package tracking
