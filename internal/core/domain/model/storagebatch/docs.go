// Package storagebatch contains the StorageBatch snapshot entity and the rule
// table that governs its storage lifecycle (received, available, locked,
// consumed, wasted, expired).
//
// Consumption is modeled with a pending-draw field on the snapshot: callers
// request a draw with WithPendingDraw, the consume rules' guard predicate
// rejects draws exceeding the remaining amount, and the transform folds the
// draw into the usage counter. The engine never decides when a batch is
// exhausted; the caller picks the target state.
package storagebatch
