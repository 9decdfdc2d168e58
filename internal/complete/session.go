package complete

import "sync"

// Ticket identifies the query a search was started for. Results must be
// handed back with the same ticket.
type Ticket struct {
	Generation uint64
	Query      string
}

// Session owns the current state of one typeahead control. It is safe for
// concurrent use.
//
// Each SetQuery issues a new Ticket. Resolve and Reject only apply when their
// ticket belongs to the pending query; results for superseded or cancelled
// queries are dropped.
type Session struct {
	mu         sync.Mutex
	state      State
	generation uint64
	inflight   uint64
}

// NewSession returns a session resting in a fresh Initial state.
func NewSession(opts ...Option) *Session {
	return &Session{state: New(opts...)}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetQuery starts a search cycle for text. When matches are being inspected
// the cycle is cancelled first, so typing while inspecting starts over.
func (s *Session) SetQuery(text string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch st := s.state.(type) {
	case Initial:
		s.state = st.SetQuery(text)
	case Pending:
		s.state = st.SetQuery(text)
	case Inspecting:
		s.state = st.Cancel().SetQuery(text)
	}
	s.generation++
	s.inflight = s.generation
	return Ticket{Generation: s.generation, Query: text}
}

// Pending reports whether t is the ticket of the query currently in flight.
func (s *Session) Pending(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current(t)
}

func (s *Session) current(t Ticket) bool {
	return s.inflight != 0 && t.Generation == s.inflight && s.state.IsPending()
}

// Resolve applies results for t. It reports false when t is stale.
func (s *Session) Resolve(t Ticket, results []any) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(t) {
		return s.state, false
	}
	s.state = s.state.(Pending).Resolve(results)
	s.inflight = 0
	return s.state, true
}

// Reject applies a search failure for t. It reports false when t is stale.
func (s *Session) Reject(t Ticket, reason any) (State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(t) {
		return s.state, false
	}
	s.state = s.state.(Pending).Reject(reason)
	s.inflight = 0
	return s.state, true
}

// Cancel rolls the current cycle back and invalidates its ticket.
func (s *Session) Cancel() (State, error) {
	return s.apply(func(st State) (State, error) {
		next, err := Cancel(st)
		if err == nil {
			s.inflight = 0
		}
		return next, err
	})
}

// InspectNext advances inspection.
func (s *Session) InspectNext() (State, error) {
	return s.apply(InspectNext)
}

// InspectPrevious moves inspection backwards.
func (s *Session) InspectPrevious() (State, error) {
	return s.apply(InspectPrevious)
}

// Select commits m.
func (s *Session) Select(m Match) (State, error) {
	return s.apply(func(st State) (State, error) {
		return Select(st, m)
	})
}

// SelectCurrent commits the inspected match.
func (s *Session) SelectCurrent() (State, error) {
	return s.apply(SelectCurrent)
}

func (s *Session) apply(fn func(State) (State, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.state)
	if err != nil {
		return s.state, err
	}
	s.state = next
	return next, nil
}
