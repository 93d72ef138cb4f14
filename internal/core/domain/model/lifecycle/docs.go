// Package lifecycle implements the table-driven state machine engine that
// governs every state change of the platform's mutable operational entities
// (order items moving through kitchen stages, storage batches moving through
// receipt, reservation, consumption, and waste).
//
// The package provides:
//   - Kind and State: identifiers for registered entity categories and their
//     per-kind lifecycle states
//   - TransitionRule: an immutable (kind, fromState, toState) rule with
//     authorization roles, audit-note and reversibility policy, and optional
//     pure guard-predicate and transform hooks
//   - Registry: the static table of legal transitions, built once at process
//     start and read-only thereafter
//   - TransitionGuard: role-membership and semantic-predicate authorization
//   - EventRecord: the write-once audit record produced by every successful
//     transition, globally ordered by a gapless sequence number
//
// Every state change on a registered kind must go through a rule present in
// the Registry; there are no implicit defaults. New entity kinds are added by
// registering rule data, never by editing engine control flow.
//
// Guard predicates and transforms are synchronous and side-effect-free: they
// compute decisions and field deltas from the snapshot they are given and
// never perform I/O.
package lifecycle
