// Package kernel provides core domain primitives shared by every aggregate in the
// manufacturing-order system. It contains identity (UUID) and measurement
// (Percentage) value objects used across workflows, milestones and the
// tracking ledger.
//
// Everything in kernel is immutable after construction and safe for concurrent
// use. The zero value of each type is deliberately invalid and rejected by
// Validate, so aggregates restored from persistence or built from external input
// can always verify their building blocks.
package kernel
