package complete

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDynamicTransitionsFollowLegalPath(t *testing.T) {
	var st State = New()
	st, err := SetQuery(st, "bob")
	require.NoError(t, err)
	require.Equal(t, KindPending, st.Kind())

	st, err = SetQuery(st, "bobby")
	require.NoError(t, err)
	require.Equal(t, "bobby", st.Query())

	st, err = Resolve(st, []any{"bobby", "bobby tables"})
	require.NoError(t, err)
	require.Equal(t, KindInspecting, st.Kind())

	st, err = InspectPrevious(st)
	require.NoError(t, err)
	require.Equal(t, "bobby tables", st.CurrentMatch().Value)

	st, err = InspectNext(st)
	require.NoError(t, err)
	require.True(t, st.CurrentMatch().IsNull())

	st, err = InspectNext(st)
	require.NoError(t, err)
	st, err = SelectCurrent(st)
	require.NoError(t, err)
	assert.Equal(t, "bobby", st.Value())
	assert.Equal(t, KindInitial, st.Kind())
}

func TestDynamicTransitionsRejectIllegalOps(t *testing.T) {
	initial := New()
	pending := initial.SetQuery("q")
	inspecting := pending.Resolve([]any{"a"})

	cases := []struct {
		name string
		op   Op
		from State
		run  func(State) (State, error)
	}{
		{"resolve initial", OpResolve, initial, func(s State) (State, error) { return Resolve(s, nil) }},
		{"resolve inspecting", OpResolve, inspecting, func(s State) (State, error) { return Resolve(s, nil) }},
		{"reject initial", OpReject, initial, func(s State) (State, error) { return Reject(s, "x") }},
		{"reject inspecting", OpReject, inspecting, func(s State) (State, error) { return Reject(s, "x") }},
		{"cancel initial", OpCancel, initial, Cancel},
		{"select initial", OpSelect, initial, func(s State) (State, error) { return Select(s, NullMatch()) }},
		{"select pending", OpSelect, pending, SelectCurrent},
		{"next initial", OpInspectNext, initial, InspectNext},
		{"next pending", OpInspectNext, pending, InspectNext},
		{"previous initial", OpInspectPrevious, initial, InspectPrevious},
		{"previous pending", OpInspectPrevious, pending, InspectPrevious},
		{"set query inspecting", OpSetQuery, inspecting, func(s State) (State, error) { return SetQuery(s, "z") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.run(tc.from)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidTransition))
			var terr *TransitionError
			require.True(t, errors.As(err, &terr))
			assert.Equal(t, tc.op, terr.Op)
			assert.Equal(t, tc.from.Kind(), terr.From)
			assert.Equal(t, tc.from, got, "state must be returned unchanged")
		})
	}
}

func TestTransitionErrorMessage(t *testing.T) {
	_, err := Resolve(New(), nil)
	require.Error(t, err)
	assert.Equal(t, "resolve from initial state: invalid transition", err.Error())

	_, err = Cancel(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestCancelFromInspectingIsLegal(t *testing.T) {
	st, err := Cancel(New().SetQuery("q").Resolve([]any{"a"}))
	require.NoError(t, err)
	assert.Equal(t, New().Kind(), st.Kind())
	assert.Equal(t, "", st.Query())
}
