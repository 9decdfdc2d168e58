package complete

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is applied to a state
// that does not support it.
var ErrInvalidTransition = errors.New("invalid transition")

// Op names a transition.
type Op string

const (
	OpSetQuery        Op = "set-query"
	OpCancel          Op = "cancel"
	OpResolve         Op = "resolve"
	OpReject          Op = "reject"
	OpSelect          Op = "select"
	OpInspectNext     Op = "inspect-next"
	OpInspectPrevious Op = "inspect-previous"
)

// TransitionError reports an operation attempted from the wrong state.
type TransitionError struct {
	Op   Op
	From Kind
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s from %s state: %v", e.Op, e.From, ErrInvalidTransition)
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func invalid(op Op, s State) error {
	kind := Kind(-1)
	if s != nil {
		kind = s.Kind()
	}
	return &TransitionError{Op: op, From: kind}
}

// SetQuery starts or restarts a cycle. It is legal on Initial and Pending.
func SetQuery(s State, text string) (State, error) {
	switch st := s.(type) {
	case Initial:
		return st.SetQuery(text), nil
	case Pending:
		return st.SetQuery(text), nil
	default:
		return s, invalid(OpSetQuery, s)
	}
}

// Cancel rolls a Pending or Inspecting state back to its Initial state.
func Cancel(s State) (State, error) {
	switch st := s.(type) {
	case Pending:
		return st.Cancel(), nil
	case Inspecting:
		return st.Cancel(), nil
	default:
		return s, invalid(OpCancel, s)
	}
}

// Resolve applies search results to a Pending state.
func Resolve(s State, results []any) (State, error) {
	if st, ok := s.(Pending); ok {
		return st.Resolve(results), nil
	}
	return s, invalid(OpResolve, s)
}

// Reject applies a search failure to a Pending state.
func Reject(s State, reason any) (State, error) {
	if st, ok := s.(Pending); ok {
		return st.Reject(reason), nil
	}
	return s, invalid(OpReject, s)
}

// Select commits m from an Inspecting state.
func Select(s State, m Match) (State, error) {
	if st, ok := s.(Inspecting); ok {
		return st.Select(m), nil
	}
	return s, invalid(OpSelect, s)
}

// SelectCurrent commits the inspected match from an Inspecting state.
func SelectCurrent(s State) (State, error) {
	if st, ok := s.(Inspecting); ok {
		return st.SelectCurrent(), nil
	}
	return s, invalid(OpSelect, s)
}

// InspectNext advances inspection on an Inspecting state.
func InspectNext(s State) (State, error) {
	if st, ok := s.(Inspecting); ok {
		return st.InspectNextMatch(), nil
	}
	return s, invalid(OpInspectNext, s)
}

// InspectPrevious moves inspection backwards on an Inspecting state.
func InspectPrevious(s State) (State, error) {
	if st, ok := s.(Inspecting); ok {
		return st.InspectPreviousMatch(), nil
	}
	return s, invalid(OpInspectPrevious, s)
}
