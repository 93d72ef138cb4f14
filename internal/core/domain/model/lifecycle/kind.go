package lifecycle

import (
	"fmt"

	"github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"
)

// Kind identifies a registered category of stateful entity governed by the
// engine. The set is closed: adding a kind means adding a constant here and
// registering its rule table, never editing engine control flow.
type Kind string

const (
	// KindOrderItem is an order line moving through kitchen stages.
	KindOrderItem Kind = "order_item"

	// KindStorageBatch is a storage batch moving through receipt,
	// reservation, consumption, and waste.
	KindStorageBatch Kind = "storage_batch"
)

// getValidKinds returns the set of kinds accepted by Validate.
func getValidKinds() map[Kind]struct{} {
	return map[Kind]struct{}{
		KindOrderItem:    {},
		KindStorageBatch: {},
	}
}

// Validate checks that the kind belongs to the closed set of registered kinds.
func (k Kind) Validate() error {
	if _, ok := getValidKinds()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid", fmt.Errorf("%q is not a registered entity kind", string(k)))
	}
	return nil
}

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}
