package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	tierExact = iota
	tierPrefix
	tierContains
	tierFuzzy
)

type scored struct {
	candidate Candidate
	tier      int
	distance  int
	index     int
}

// Rank orders candidates by how well they match query: exact matches first,
// then prefix, substring and finally fuzzy matches on either the label or the
// ID, closest first. Ties keep their original order. An empty query returns
// every candidate. limit <= 0 means no cap.
func Rank(candidates []Candidate, query string, limit int) []Candidate {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return capped(candidates, limit)
	}
	lower := strings.ToLower(trimmed)
	hits := make(map[int]scored, len(candidates))
	for i, c := range candidates {
		if tier, ok := literalTier(c, lower); ok {
			hits[i] = scored{candidate: c, tier: tier, index: i}
		}
	}
	labels := make([]string, len(candidates))
	ids := make([]string, len(candidates))
	for i, c := range candidates {
		labels[i] = c.Label
		ids[i] = c.ID
	}
	fuzzyHits := append(fuzzy.RankFindNormalizedFold(trimmed, labels), fuzzy.RankFindNormalizedFold(trimmed, ids)...)
	for _, r := range fuzzyHits {
		prev, ok := hits[r.OriginalIndex]
		if ok && (prev.tier != tierFuzzy || prev.distance <= r.Distance) {
			continue
		}
		hits[r.OriginalIndex] = scored{
			candidate: candidates[r.OriginalIndex],
			tier:      tierFuzzy,
			distance:  r.Distance,
			index:     r.OriginalIndex,
		}
	}
	ranked := make([]scored, 0, len(hits))
	for _, s := range hits {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if a.distance != b.distance {
			return a.distance < b.distance
		}
		return a.index < b.index
	})
	out := make([]Candidate, len(ranked))
	for i, s := range ranked {
		out[i] = s.candidate
	}
	return capped(out, limit)
}

func literalTier(c Candidate, lower string) (int, bool) {
	id := strings.ToLower(c.ID)
	label := strings.ToLower(c.Label)
	switch {
	case id == lower || label == lower:
		return tierExact, true
	case strings.HasPrefix(id, lower) || strings.HasPrefix(label, lower):
		return tierPrefix, true
	case strings.Contains(id, lower) || strings.Contains(label, lower):
		return tierContains, true
	}
	return 0, false
}

func capped(candidates []Candidate, limit int) []Candidate {
	n := len(candidates)
	if limit > 0 && n > limit {
		n = limit
	}
	out := make([]Candidate, n)
	copy(out, candidates[:n])
	return out
}

// sanitizeSessionName trims the query and replaces characters tmux does not
// accept in session names.
func sanitizeSessionName(query string) string {
	trimmed := strings.TrimSpace(query)
	return strings.Map(func(r rune) rune {
		switch {
		case r == ':' || r == '.':
			return '_'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, trimmed)
}
