// Package complete models the interaction lifecycle of a typeahead control
// as an immutable state machine.
//
// A cycle starts at an Initial state. SetQuery produces a Pending state that
// waits for an external search to call Resolve or Reject. Resolve produces an
// Inspecting state whose matches can be walked with InspectNextMatch and
// InspectPreviousMatch before one is committed with Select. Cancel rolls back
// to the Initial state that started the cycle.
//
// Each variant only exposes the transitions that are legal for it, so most
// misuse is caught by the compiler. Callers that hold a State interface value
// can use the package-level helpers (Resolve, Select, InspectNext, ...) which
// report ErrInvalidTransition instead.
//
// Every transition returns a new value. Session wraps a single current state
// behind a mutex and fences late search results with a generation counter.
package complete
