package ui

import (
	"context"
	"time"

	"github.com/atomicstack/tmux-typeahead/internal/complete"
	"github.com/atomicstack/tmux-typeahead/internal/logging/events"
	"github.com/atomicstack/tmux-typeahead/internal/search"
	tea "github.com/charmbracelet/bubbletea"
)

const searchTimeout = 2 * time.Second

type searchResultMsg struct {
	ticket  complete.Ticket
	results []search.Candidate
	err     error
}

// startSearch opens a new cycle for query and returns the command that ranks
// the current candidates for it.
func (m *Model) startSearch(query string) tea.Cmd {
	ticket := m.session.SetQuery(query)
	events.Query.Set(ticket.Query, ticket.Generation)
	m.syncInput(query)
	m.viewport.Reset()
	snap := m.store.Snapshot(m.source)
	fn := m.search
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), searchTimeout)
		defer cancel()
		results, err := fn(ctx, ticket.Query, snap)
		return searchResultMsg{ticket: ticket, results: results, err: err}
	}
}

func (m *Model) handleSearchResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(searchResultMsg)
	if !ok {
		return nil
	}
	if res.err != nil {
		if _, applied := m.session.Reject(res.ticket, res.err); !applied {
			events.Query.Stale(res.ticket.Query, res.ticket.Generation)
			return nil
		}
		events.Query.Rejected(res.ticket.Query, res.ticket.Generation, res.err)
		return nil
	}
	values := make([]any, len(res.results))
	for i, candidate := range res.results {
		values[i] = candidate
	}
	next, applied := m.session.Resolve(res.ticket, values)
	if !applied {
		events.Query.Stale(res.ticket.Query, res.ticket.Generation)
		return nil
	}
	events.Query.Resolved(res.ticket.Query, res.ticket.Generation, len(next.Matches()))
	return nil
}
