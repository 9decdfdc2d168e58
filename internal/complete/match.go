package complete

// Match is one candidate value plus its position and selection flags.
// Index equals the position of the match in the owning Inspecting state.
type Match struct {
	Index     int
	Value     any
	IsCurrent bool
	IsDefault bool
}

// NullMatch returns the sentinel used when nothing is inspected.
func NullMatch() Match {
	return Match{Index: -1}
}

// IsNull reports whether m is the null sentinel.
func (m Match) IsNull() bool {
	return m.Index < 0
}

// Inspect returns a copy of m flagged as the current match.
func (m Match) Inspect() Match {
	m.IsCurrent = true
	return m
}

// Uninspect returns a copy of m with the current flag cleared.
func (m Match) Uninspect() Match {
	m.IsCurrent = false
	return m
}

// same reports whether a and b occupy the same slot, ignoring flags.
func same(a, b Match) bool {
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	return a.Index == b.Index
}
