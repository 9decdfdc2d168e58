package complete

// Inspecting holds the resolved matches of a cycle and tracks which one, if
// any, is currently inspected.
type Inspecting struct {
	pending Pending
	matches []Match
}

func (Inspecting) state() {}

func (Inspecting) Kind() Kind { return KindInspecting }

func (s Inspecting) Query() string { return s.pending.Query() }

func (s Inspecting) Value() any { return s.pending.Value() }

func (Inspecting) Reason() any { return nil }

// Matches returns a copy of the resolved matches.
func (s Inspecting) Matches() []Match {
	out := make([]Match, len(s.matches))
	copy(out, s.matches)
	return out
}

// Len returns the number of matches, including a default match.
func (s Inspecting) Len() int { return len(s.matches) }

// At returns the match at index i, or the null match when out of range.
func (s Inspecting) At(i int) Match {
	if i < 0 || i >= len(s.matches) {
		return NullMatch()
	}
	return s.matches[i]
}

func (Inspecting) NullMatch() Match { return NullMatch() }

// CurrentMatch returns the inspected match, or the null match.
func (s Inspecting) CurrentMatch() Match {
	for _, m := range s.matches {
		if m.IsCurrent {
			return m
		}
	}
	return NullMatch()
}

func (Inspecting) IsPending() bool { return false }

func (Inspecting) IsInspectingMatches() bool { return true }

// Next returns the match after m. Past the last match it returns the null
// match, and from the null match it returns the first match.
func (s Inspecting) Next(m Match) Match {
	if len(s.matches) == 0 {
		return NullMatch()
	}
	if m.IsNull() {
		return s.matches[0]
	}
	if m.Index >= len(s.matches)-1 {
		return NullMatch()
	}
	return s.matches[m.Index+1]
}

// Previous returns the match before m. Before the first match it returns the
// null match, and from the null match it returns the last match. A match that
// does not belong to this snapshot has no siblings.
func (s Inspecting) Previous(m Match) Match {
	if len(s.matches) == 0 {
		return NullMatch()
	}
	if m.IsNull() {
		return s.matches[len(s.matches)-1]
	}
	if m.Index <= 0 || m.Index >= len(s.matches) {
		return NullMatch()
	}
	return s.matches[m.Index-1]
}

// InspectNextMatch moves inspection one step forward, wrapping through the
// null match.
func (s Inspecting) InspectNextMatch() Inspecting {
	return s.inspect(s.Next(s.CurrentMatch()))
}

// InspectPreviousMatch moves inspection one step backward, wrapping through
// the null match.
func (s Inspecting) InspectPreviousMatch() Inspecting {
	return s.inspect(s.Previous(s.CurrentMatch()))
}

func (s Inspecting) inspect(target Match) Inspecting {
	matches := make([]Match, len(s.matches))
	for i, m := range s.matches {
		if !target.IsNull() && same(m, target) {
			matches[i] = m.Inspect()
		} else {
			matches[i] = m.Uninspect()
		}
	}
	return Inspecting{pending: s.pending, matches: matches}
}

// Cancel abandons the whole cycle and returns the Initial state it started
// from.
func (s Inspecting) Cancel() Initial {
	return s.pending.Cancel()
}

// Select commits m's value into a fresh Initial state. The query, matches and
// any failure reason are cleared. Selecting the null match commits nil.
func (s Inspecting) Select(m Match) Initial {
	var value any
	if !m.IsNull() {
		value = m.Value
	}
	return s.pending.initial.derive("", value, nil)
}

// SelectCurrent selects the inspected match.
func (s Inspecting) SelectCurrent() Initial {
	return s.Select(s.CurrentMatch())
}
