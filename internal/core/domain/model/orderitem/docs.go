// Package orderitem contains the OrderItem snapshot entity and the rule table
// that governs its kitchen lifecycle (pending, in_progress, ready, served,
// cancelled).
//
// The entity carries no transition logic of its own: all state changes run
// through the lifecycle engine, and this package only contributes the rule
// data: allowed roles, reversibility policy, guard predicates, and the
// transforms that stamp preparation timestamps.
package orderitem
