package ui

import (
	"github.com/atomicstack/tmux-typeahead/internal/backend"
	"github.com/atomicstack/tmux-typeahead/internal/complete"
	"github.com/atomicstack/tmux-typeahead/internal/data/dispatcher"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	cmd := m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		waitCmd := waitForBackendEvent(m.backend)
		if cmd != nil {
			return tea.Batch(cmd, waitCmd)
		}
		return waitCmd
	}
	return cmd
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) tea.Cmd {
	res := m.dispatcher.Handle(evt)
	return m.refreshSearch(res)
}

// refreshSearch re-runs the query when fresh candidates arrive and the user
// is not in the middle of navigating matches.
func (m *Model) refreshSearch(res dispatcher.Result) tea.Cmd {
	if !res.Changed() || m.running {
		return nil
	}
	switch st := m.session.State().(type) {
	case complete.Pending:
		return m.startSearch(st.Query())
	case complete.Inspecting:
		if st.CurrentMatch().IsNull() {
			return m.startSearch(st.Query())
		}
	case complete.Initial:
		if st.Reason() != nil {
			return m.startSearch(st.Query())
		}
	}
	return nil
}
