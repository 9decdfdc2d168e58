package dispatcher

import (
	"slices"

	"github.com/atomicstack/tmux-typeahead/internal/backend"
	"github.com/atomicstack/tmux-typeahead/internal/logging/events"
	"github.com/atomicstack/tmux-typeahead/internal/search"
	"github.com/atomicstack/tmux-typeahead/internal/state"
	"github.com/atomicstack/tmux-typeahead/internal/tmux"
)

type Result struct {
	SessionsUpdated bool
	WindowsUpdated  bool
	Err             error
}

// Changed reports whether any candidate list was replaced.
func (r Result) Changed() bool {
	return r.SessionsUpdated || r.WindowsUpdated
}

type Dispatcher struct {
	store state.CandidateStore
}

func New(store state.CandidateStore) *Dispatcher {
	return &Dispatcher{store: store}
}

// Handle applies a backend event to the candidate store.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	kind := candidateKind(evt.Kind)
	if evt.Err != nil {
		d.store.SetError(kind, evt.Err)
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindSessions:
		if snapshot, ok := evt.Data.(tmux.SessionSnapshot); ok {
			entries := SessionCandidates(snapshot)
			events.Backend.Poll(evt.Kind.String(), len(entries))
			res.SessionsUpdated = d.replace(kind, entries)
		}
	case backend.KindWindows:
		if snapshot, ok := evt.Data.(tmux.WindowSnapshot); ok {
			entries := WindowCandidates(snapshot)
			events.Backend.Poll(evt.Kind.String(), len(entries))
			res.WindowsUpdated = d.replace(kind, entries)
		}
	}
	return res
}

// replace stores entries for kind and reports whether they differ from what
// the store held. The first load and the first success after an error always
// count as a change.
func (d *Dispatcher) replace(kind search.Kind, entries []search.Candidate) bool {
	previous := d.store.Entries(kind)
	loaded := d.store.Loaded(kind)
	hadErr := d.store.Err(kind) != nil
	d.store.SetEntries(kind, entries)
	return !loaded || hadErr || !slices.Equal(previous, entries)
}

// SessionCandidates converts a session poll into candidates. The current
// session is listed last since switching to it is a no-op.
func SessionCandidates(snapshot tmux.SessionSnapshot) []search.Candidate {
	out := make([]search.Candidate, 0, len(snapshot.Sessions))
	var current []search.Candidate
	for _, s := range snapshot.Sessions {
		c := search.Candidate{Kind: search.KindSession, ID: s.Name, Label: s.Label, Target: s.Name}
		if s.Current {
			current = append(current, c)
			continue
		}
		out = append(out, c)
	}
	return append(out, current...)
}

// WindowCandidates converts a window poll into candidates, current window
// last.
func WindowCandidates(snapshot tmux.WindowSnapshot) []search.Candidate {
	out := make([]search.Candidate, 0, len(snapshot.Windows))
	var current []search.Candidate
	for _, w := range snapshot.Windows {
		c := search.Candidate{Kind: search.KindWindow, ID: w.ID, Label: w.Label, Target: w.ID}
		if w.Current {
			current = append(current, c)
			continue
		}
		out = append(out, c)
	}
	return append(out, current...)
}

func candidateKind(kind backend.Kind) search.Kind {
	if kind == backend.KindWindows {
		return search.KindWindow
	}
	return search.KindSession
}
