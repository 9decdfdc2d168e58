package search

import "fmt"

// Kind identifies what selecting a candidate does.
type Kind string

const (
	KindSession Kind = "session"
	KindWindow  Kind = "window"
	KindCreate  Kind = "create"
)

// Candidate is one selectable result offered to the typeahead.
type Candidate struct {
	Kind   Kind
	ID     string
	Label  string
	Target string
}

// CreateMatch builds the candidate offered after the ranked results: a new
// session named after the query.
func CreateMatch(query string) Candidate {
	name := sanitizeSessionName(query)
	return Candidate{
		Kind:   KindCreate,
		ID:     name,
		Label:  fmt.Sprintf("new session %q", name),
		Target: name,
	}
}
