package lifecycle

import "github.com/DesumovJP/restaraunt-OS-sub004/internal/core/domain/model/kernel"

// Entity is the snapshot view of a mutable operational entity as the engine
// sees it. Entity stores own persistence and lifetime; the engine receives a
// snapshot per call, derives an updated snapshot, and retains nothing between
// calls.
//
// Implementations must treat snapshots as values: WithState and transform
// hooks return copies and never mutate the receiver.
type Entity interface {
	// EntityID returns the entity's unique identifier.
	EntityID() kernel.UUID

	// EntityKind returns the registered kind the entity belongs to.
	EntityKind() Kind

	// CurrentState returns the entity's current lifecycle state.
	CurrentState() State

	// WithState returns a copy of the snapshot placed in the given state.
	WithState(state State) Entity
}
