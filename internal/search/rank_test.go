package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessions(names ...string) []Candidate {
	out := make([]Candidate, len(names))
	for i, n := range names {
		out[i] = Candidate{Kind: KindSession, ID: n, Label: n, Target: n}
	}
	return out
}

func ids(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func TestRankEmptyQueryReturnsAll(t *testing.T) {
	got := Rank(sessions("a", "b", "c"), "  ", 0)
	assert.Equal(t, []string{"a", "b", "c"}, ids(got))

	got = Rank(sessions("a", "b", "c"), "", 2)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestRankOrdersByTier(t *testing.T) {
	cands := sessions("my-bob", "bobcat", "bob", "b-o-b", "alice")
	got := Rank(cands, "bob", 0)
	assert.Equal(t, []string{"bob", "bobcat", "my-bob", "b-o-b"}, ids(got))
}

func TestRankIsCaseInsensitive(t *testing.T) {
	got := Rank(sessions("Work", "play"), "WORK", 0)
	require.NotEmpty(t, got)
	assert.Equal(t, "Work", got[0].ID)
}

func TestRankMatchesIDWhenLabelDiffers(t *testing.T) {
	cands := []Candidate{
		{Kind: KindWindow, ID: "ops:2", Label: "ops:2 logs"},
		{Kind: KindWindow, ID: "work:1", Label: "work:1 editor"},
	}
	got := Rank(cands, "editor", 0)
	assert.Equal(t, []string{"work:1"}, ids(got))
}

func TestRankFuzzyMatchesID(t *testing.T) {
	cands := []Candidate{
		{Kind: KindSession, ID: "dev-server", Label: "3 windows"},
		{Kind: KindSession, ID: "notes", Label: "1 window"},
	}
	assert.Equal(t, []string{"dev-server"}, ids(Rank(cands, "dsv", 0)))
}

func TestRankFuzzyKeepsClosestOfLabelAndID(t *testing.T) {
	cands := []Candidate{
		{Kind: KindSession, ID: "dxxsxxv", Label: "dxxsxxv"},
		{Kind: KindSession, ID: "d-s-v", Label: "dxxxxxxsxxxxxxv"},
	}
	assert.Equal(t, []string{"d-s-v", "dxxsxxv"}, ids(Rank(cands, "dsv", 0)))
}

func TestRankNoMatches(t *testing.T) {
	assert.Empty(t, Rank(sessions("alpha", "beta"), "zzz", 0))
}

func TestRankDoesNotAliasInput(t *testing.T) {
	cands := sessions("a", "b")
	got := Rank(cands, "", 0)
	got[0].ID = "changed"
	assert.Equal(t, "a", cands[0].ID)
}

func TestCreateMatchSanitizesName(t *testing.T) {
	c := CreateMatch("  my:new.session ")
	assert.Equal(t, KindCreate, c.Kind)
	assert.Equal(t, "my_new_session", c.Target)
	assert.Equal(t, `new session "my_new_session"`, c.Label)
}

func TestSearcherRanksSnapshot(t *testing.T) {
	s := NewSearcher(1)
	got, err := s.Search(context.Background(), "be", Snapshot{Candidates: sessions("alpha", "beta", "bert"), Ready: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, ids(got))
}

func TestSearcherFailsWithoutCandidates(t *testing.T) {
	s := NewSearcher(0)
	boom := errors.New("server not running")

	_, err := s.Search(context.Background(), "x", Snapshot{Err: boom})
	assert.ErrorIs(t, err, boom)

	_, err = s.Search(context.Background(), "x", Snapshot{})
	assert.ErrorIs(t, err, ErrNoSource)

	got, err := s.Search(context.Background(), "x", Snapshot{Ready: true})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearcherPrefersCandidatesOverStaleError(t *testing.T) {
	got, err := NewSearcher(0).Search(context.Background(), "a", Snapshot{
		Candidates: sessions("alpha"),
		Err:        errors.New("poll failed"),
		Ready:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, ids(got))
}

func TestSearcherHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSearcher(0).Search(ctx, "a", Snapshot{Candidates: sessions("alpha"), Ready: true})
	assert.ErrorIs(t, err, context.Canceled)
}
