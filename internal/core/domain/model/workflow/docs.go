// Package workflow models the fixed fulfillment cycle a manufacturing order
// passes through. It contains the static stage catalog (eight canonical stages
// from client purchase order to delivery), the per-step status state machine,
// the Step entity, and the Workflow aggregate that owns one step per catalog
// entry plus the current-step cursor.
//
// The stage sequence is compiled in and not configurable at runtime. All state
// changes go through the aggregate so the sequencing invariants (exactly one
// step per stage number, no transitions out of completed, cursor advanced on
// completion) hold regardless of the caller.
package workflow
