package complete

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstantDefaultMatch(t *testing.T) {
	s := New(WithDefaultMatch("iam default")).
		SetQuery("q").
		Resolve([]any{"a", "b"})
	require.Len(t, s.Matches(), 3)

	s = s.InspectNextMatch().InspectNextMatch().InspectNextMatch()
	assert.Equal(t, "iam default", s.CurrentMatch().Value)
	assert.True(t, s.CurrentMatch().IsDefault)
	assert.Equal(t, 2, s.CurrentMatch().Index)
}

func TestFunctionDefaultMatchUsesQuery(t *testing.T) {
	s := New(WithDefaultMatchFunc(func(q string) any { return fmt.Sprintf("d(%s)", q) })).
		SetQuery("bob").
		Resolve([]any{"bob"}).
		InspectNextMatch().
		InspectNextMatch()
	assert.Equal(t, "d(bob)", s.CurrentMatch().Value)
	assert.True(t, s.CurrentMatch().IsDefault)
}

func TestDefaultMatchFollowsReplacedQuery(t *testing.T) {
	s := New(WithDefaultMatchFunc(func(q string) any { return "new " + q })).
		SetQuery("bo").
		SetQuery("bob").
		Resolve(nil)
	require.Len(t, s.Matches(), 1)
	assert.Equal(t, "new bob", s.Matches()[0].Value)
}

func TestDefaultMatchWithNoResults(t *testing.T) {
	s := New(WithDefaultMatch("fallback")).SetQuery("zzz").Resolve(nil)
	require.Len(t, s.Matches(), 1)
	assert.True(t, s.CurrentMatch().IsNull())

	s = s.InspectNextMatch()
	assert.Equal(t, "fallback", s.CurrentMatch().Value)
	s = s.InspectNextMatch()
	assert.True(t, s.CurrentMatch().IsNull())
	s = s.InspectPreviousMatch()
	assert.Equal(t, "fallback", s.CurrentMatch().Value)
}

func TestDefaultMatchCycleLength(t *testing.T) {
	s := New(WithDefaultMatch("x")).SetQuery("q").Resolve([]any{"a", "b", "c"})
	n := s.Len()
	require.Equal(t, 4, n)
	for i := 0; i < n; i++ {
		s = s.InspectNextMatch()
		assert.False(t, s.CurrentMatch().IsNull())
	}
	s = s.InspectNextMatch()
	assert.True(t, s.CurrentMatch().IsNull())
	s = s.InspectNextMatch()
	assert.Equal(t, "a", s.CurrentMatch().Value)
}

func TestSelectDefaultMatch(t *testing.T) {
	s := New(WithDefaultMatch("x")).SetQuery("q").Resolve([]any{"a"}).InspectPreviousMatch()
	picked := s.SelectCurrent()
	assert.Equal(t, "x", picked.Value())
}

func TestOptionsSurviveCycles(t *testing.T) {
	var calls []string
	first := New(WithDefaultMatchFunc(func(q string) any {
		calls = append(calls, q)
		return q + "!"
	}))
	after := first.SetQuery("one").Resolve(nil).InspectNextMatch().SelectCurrent()
	after = after.SetQuery("two").Reject("boom")
	s := after.SetQuery("three").Resolve([]any{"x"})

	assert.Equal(t, "three!", s.At(1).Value)
	assert.Equal(t, []string{"one", "three"}, calls)
}

func TestNilOptionIgnored(t *testing.T) {
	s := New(nil).SetQuery("q").Resolve([]any{"a"})
	assert.Equal(t, 1, s.Len())
}
