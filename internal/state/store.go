package state

import (
	"errors"

	"github.com/atomicstack/tmux-typeahead/internal/search"
)

// Source selects which candidate kinds a search considers.
type Source string

const (
	SourceSessions Source = "sessions"
	SourceWindows  Source = "windows"
	SourceAll      Source = "all"
)

// Kinds returns the candidate kinds that make up s.
func (s Source) Kinds() []search.Kind {
	switch s {
	case SourceSessions:
		return []search.Kind{search.KindSession}
	case SourceWindows:
		return []search.Kind{search.KindWindow}
	default:
		return []search.Kind{search.KindSession, search.KindWindow}
	}
}

// Valid reports whether s names a known source.
func (s Source) Valid() bool {
	switch s {
	case SourceSessions, SourceWindows, SourceAll:
		return true
	}
	return false
}

// CandidateStore keeps the latest candidates for each kind. It is owned by
// the UI goroutine; searches receive copies via Snapshot.
type CandidateStore interface {
	Entries(kind search.Kind) []search.Candidate
	SetEntries(kind search.Kind, entries []search.Candidate)
	SetError(kind search.Kind, err error)
	Err(kind search.Kind) error
	Loaded(kind search.Kind) bool
	Snapshot(source Source) search.Snapshot
}

type candidateStore struct {
	entries map[search.Kind][]search.Candidate
	loaded  map[search.Kind]bool
	errs    map[search.Kind]error
}

func NewCandidateStore() CandidateStore {
	return &candidateStore{
		entries: make(map[search.Kind][]search.Candidate),
		loaded:  make(map[search.Kind]bool),
		errs:    make(map[search.Kind]error),
	}
}

func (s *candidateStore) Entries(kind search.Kind) []search.Candidate {
	return cloneCandidates(s.entries[kind])
}

// SetEntries replaces the candidates for kind and clears its error.
func (s *candidateStore) SetEntries(kind search.Kind, entries []search.Candidate) {
	s.entries[kind] = cloneCandidates(entries)
	s.loaded[kind] = true
	delete(s.errs, kind)
}

// SetError records a failed refresh. Previously loaded entries are kept.
func (s *candidateStore) SetError(kind search.Kind, err error) {
	if err == nil {
		delete(s.errs, kind)
		return
	}
	s.errs[kind] = err
}

func (s *candidateStore) Err(kind search.Kind) error {
	return s.errs[kind]
}

// Loaded reports whether kind has received at least one successful refresh.
func (s *candidateStore) Loaded(kind search.Kind) bool {
	return s.loaded[kind]
}

// Snapshot merges the candidates of every kind in source, in kind order.
func (s *candidateStore) Snapshot(source Source) search.Snapshot {
	var snap search.Snapshot
	var errs []error
	for _, kind := range source.Kinds() {
		snap.Candidates = append(snap.Candidates, s.entries[kind]...)
		if s.loaded[kind] {
			snap.Ready = true
		}
		if err := s.errs[kind]; err != nil {
			errs = append(errs, err)
		}
	}
	snap.Candidates = cloneCandidates(snap.Candidates)
	snap.Err = errors.Join(errs...)
	return snap
}

func cloneCandidates(entries []search.Candidate) []search.Candidate {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]search.Candidate, len(entries))
	copy(dup, entries)
	return dup
}
