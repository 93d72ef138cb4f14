package lifecycle

import "github.com/DesumovJP/restaraunt-OS-sub004/internal/pkg/errs"

// State is an opaque lifecycle state identifier, scoped per entity kind.
// The engine attaches no meaning to the label itself; legality of a change
// from one state to another is decided entirely by the rule table.
type State string

// Validate checks that the state identifier is not empty.
// State labels are domain convention, so no further structure is enforced.
func (s State) Validate() error {
	if s == "" {
		return errs.NewValueIsRequiredError("state is required")
	}
	return nil
}

// String returns the state identifier.
func (s State) String() string {
	return string(s)
}
