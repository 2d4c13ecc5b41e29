// Package milestone models per-project sub-goals tracked independently of the
// fixed workflow step sequence. A milestone carries a target date, a completion
// percentage, and a status; milestones are created explicitly and never derived
// from workflow steps.
package milestone
