// Package services provides the domain services of the lifecycle engine.
//
// TransitionExecutor runs a single state transition end to end against the
// rule registry and appends its audit event; UndoManager reverses an earlier
// transition by appending a compensating event. Both operate on entity
// snapshots supplied by the caller and never persist snapshots themselves.
package services
