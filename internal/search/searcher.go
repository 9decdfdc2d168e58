package search

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoSource is returned when the candidate source has never produced data.
var ErrNoSource = errors.New("no candidates available")

// Snapshot is the candidate list a search runs against, plus the error the
// source last reported.
type Snapshot struct {
	Candidates []Candidate
	Err        error
	Ready      bool
}

// Searcher ranks candidates for a query.
type Searcher struct {
	Limit int
}

// NewSearcher returns a Searcher that keeps at most limit results.
func NewSearcher(limit int) *Searcher {
	return &Searcher{Limit: limit}
}

// Search ranks snap's candidates for query. It fails when the source has not
// produced data yet, or when it reported an error and holds no candidates.
func (s *Searcher) Search(ctx context.Context, query string, snap Snapshot) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(snap.Candidates) == 0 {
		if snap.Err != nil {
			return nil, fmt.Errorf("search %q: %w", query, snap.Err)
		}
		if !snap.Ready {
			return nil, ErrNoSource
		}
	}
	limit := 0
	if s != nil {
		limit = s.Limit
	}
	ranked := Rank(snap.Candidates, query, limit)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ranked, nil
}
