package complete

// Pending is an in-flight query awaiting Resolve or Reject.
type Pending struct {
	initial Initial
	query   string
}

func (Pending) state() {}

func (Pending) Kind() Kind { return KindPending }

func (p Pending) Query() string { return p.query }

// Value is the value of the Initial state that started the cycle, so the
// prior selection stays visible while a search runs.
func (p Pending) Value() any { return p.initial.value }

func (Pending) Reason() any { return nil }

func (Pending) Matches() []Match { return []Match{} }

func (Pending) CurrentMatch() Match { return NullMatch() }

func (Pending) NullMatch() Match { return NullMatch() }

func (Pending) IsPending() bool { return true }

func (Pending) IsInspectingMatches() bool { return false }

// Origin returns the Initial state this cycle rolls back to.
func (p Pending) Origin() Initial { return p.initial }

// SetQuery replaces the in-flight query. Pending cycles never stack: the new
// query is applied to the original Initial state, not to p.
func (p Pending) SetQuery(text string) Pending {
	return p.initial.SetQuery(text)
}

// Cancel discards the query and returns the original Initial state.
func (p Pending) Cancel() Initial {
	return p.initial
}

// Resolve materializes one Match per result, in order, followed by the
// default match when one is configured. No match is current afterwards.
func (p Pending) Resolve(results []any) Inspecting {
	size := len(results)
	if p.initial.opts.hasDefault() {
		size++
	}
	matches := make([]Match, 0, size)
	for i, r := range results {
		matches = append(matches, Match{Index: i, Value: r})
	}
	if p.initial.opts.hasDefault() {
		matches = append(matches, Match{
			Index:     len(matches),
			Value:     p.initial.opts.defaultMatch(p.query),
			IsDefault: true,
		})
	}
	return Inspecting{pending: p, matches: matches}
}

// Reject ends the cycle with a failure. The query is kept so it can be shown
// or retried alongside reason; the prior value is unchanged.
func (p Pending) Reject(reason any) Initial {
	return p.initial.derive(p.query, p.initial.value, reason)
}
