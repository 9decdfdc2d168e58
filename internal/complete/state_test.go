package complete

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsEmptyInitial(t *testing.T) {
	s := New()
	assert.Equal(t, KindInitial, s.Kind())
	assert.Equal(t, "", s.Query())
	assert.Empty(t, s.Matches())
	assert.Nil(t, s.Value())
	assert.Nil(t, s.Reason())
	assert.True(t, s.CurrentMatch().IsNull())
	assert.Nil(t, s.CurrentMatch().Value)
	assert.False(t, s.IsInspectingMatches())
	assert.False(t, s.IsPending())
}

func TestSetQueryStartsPendingCycle(t *testing.T) {
	for _, text := range []string{"", "bob", "  spaced  ", "ünïcode"} {
		p := New().SetQuery(text)
		assert.Equal(t, text, p.Query())
		assert.True(t, p.IsPending())
		assert.False(t, p.IsInspectingMatches())
		assert.True(t, p.CurrentMatch().IsNull())
	}
}

func TestPendingKeepsPriorValue(t *testing.T) {
	chosen := New().SetQuery("b").Resolve([]any{"bob"}).InspectNextMatch().SelectCurrent()
	require.Equal(t, "bob", chosen.Value())

	p := chosen.SetQuery("al")
	assert.Equal(t, "bob", p.Value())
}

func TestPendingCancelReturnsOrigin(t *testing.T) {
	origin := New(WithDefaultMatch("x")).SetQuery("q").Reject("boom")
	p := origin.SetQuery("bob")

	back := p.Cancel()
	assert.Equal(t, origin, back)
	assert.False(t, back.IsPending())
	assert.Equal(t, "q", back.Query())
}

func TestPendingSetQueryDoesNotStack(t *testing.T) {
	origin := New()
	first := origin.SetQuery("bo")
	second := first.SetQuery("bob")

	assert.Equal(t, "bob", second.Query())
	assert.Equal(t, origin, second.Origin())
	assert.Equal(t, origin, second.Cancel())
	assert.Equal(t, origin.SetQuery("bob"), second)
}

func TestResolveMaterializesMatches(t *testing.T) {
	results := []any{"bob", "bob bob", 3}
	s := New().SetQuery("bob").Resolve(results)

	assert.False(t, s.IsPending())
	assert.True(t, s.IsInspectingMatches())
	require.Len(t, s.Matches(), len(results))
	for i, m := range s.Matches() {
		assert.Equal(t, i, m.Index)
		assert.Equal(t, results[i], m.Value)
		assert.False(t, m.IsCurrent)
		assert.False(t, m.IsDefault)
	}
	assert.True(t, s.CurrentMatch().IsNull())
	assert.Equal(t, "bob", s.Query())
}

func TestResolveEmptyResults(t *testing.T) {
	s := New().SetQuery("zzz").Resolve(nil)
	assert.Empty(t, s.Matches())
	assert.True(t, s.CurrentMatch().IsNull())
	assert.True(t, s.InspectNextMatch().CurrentMatch().IsNull())
	assert.True(t, s.InspectPreviousMatch().CurrentMatch().IsNull())
}

func TestRejectKeepsQueryAndValue(t *testing.T) {
	prior := New().SetQuery("a").Resolve([]any{"alice"}).InspectNextMatch().SelectCurrent()
	s := prior.SetQuery("bob").Reject("could not communicate with server")

	assert.Equal(t, KindInitial, s.Kind())
	assert.False(t, s.IsPending())
	assert.False(t, s.IsInspectingMatches())
	assert.Equal(t, "bob", s.Query())
	assert.Equal(t, "alice", s.Value())
	assert.Equal(t, "could not communicate with server", s.Reason())
	assert.Empty(t, s.Matches())
}

func TestRejectAcceptsErrorReason(t *testing.T) {
	reason := assert.AnError
	s := New().SetQuery("bob").Reject(reason)
	assert.Same(t, reason, s.Reason())
}

func TestMatchesAreCopied(t *testing.T) {
	s := New().SetQuery("bob").Resolve([]any{"a", "b"})
	got := s.Matches()
	got[0].Value = "mutated"
	got[1].IsCurrent = true

	assert.Equal(t, "a", s.Matches()[0].Value)
	assert.True(t, s.CurrentMatch().IsNull())
}

func TestMatchInspectReturnsCopies(t *testing.T) {
	m := Match{Index: 2, Value: "v"}
	inspected := m.Inspect()
	assert.True(t, inspected.IsCurrent)
	assert.False(t, m.IsCurrent)
	assert.False(t, inspected.Uninspect().IsCurrent)
	assert.True(t, inspected.IsCurrent)

	null := NullMatch()
	assert.True(t, null.IsNull())
	assert.Equal(t, -1, null.Index)
	assert.Nil(t, null.Value)
	assert.True(t, null.Inspect().IsNull())
}
