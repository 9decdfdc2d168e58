package ui

import (
	"github.com/atomicstack/tmux-typeahead/internal/complete"
	"github.com/atomicstack/tmux-typeahead/internal/logging/events"
	"github.com/atomicstack/tmux-typeahead/internal/search"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.String() == "ctrl+c" {
		events.App.Exit("interrupt")
		return tea.Quit
	}
	if m.running {
		return nil
	}
	switch key.String() {
	case "esc":
		return m.cancel()
	case "tab", "down", "ctrl+n":
		m.inspect(true)
		return nil
	case "shift+tab", "up", "ctrl+p":
		m.inspect(false)
		return nil
	case "enter":
		return m.selectCurrent()
	}
	return m.updateInput(key)
}

// updateInput forwards the key to the text input and starts a new search
// cycle when the query changed.
func (m *Model) updateInput(key tea.KeyMsg) tea.Cmd {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	after := m.input.Value()
	if after == before {
		return cmd
	}
	m.errMsg = ""
	m.infoMsg = ""
	return tea.Batch(cmd, m.startSearch(after))
}

// cancel rolls the current cycle back. From a resting state it closes the
// popup.
func (m *Model) cancel() tea.Cmd {
	st := m.session.State()
	if st.Kind() == complete.KindInitial {
		events.App.Exit("cancel")
		return tea.Quit
	}
	events.Query.Cancelled(st.Query())
	next, err := m.session.Cancel()
	if err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.syncInput(next.Query())
	m.viewport.Reset()
	return nil
}

func (m *Model) inspect(forward bool) {
	var (
		next complete.State
		err  error
	)
	if forward {
		next, err = m.session.InspectNext()
	} else {
		next, err = m.session.InspectPrevious()
	}
	if err != nil {
		// nothing to navigate until matches arrive
		return
	}
	current := next.CurrentMatch()
	events.Match.Inspect(current.Index, matchLabel(current))
}

// selectCurrent commits the inspected match, or the first match when none is
// inspected, and runs it through the command bus. From a failed search it
// retries the query instead.
func (m *Model) selectCurrent() tea.Cmd {
	switch st := m.session.State().(type) {
	case complete.Initial:
		if st.Reason() != nil {
			return m.startSearch(st.Query())
		}
		return nil
	case complete.Inspecting:
		match := st.CurrentMatch()
		if match.IsNull() && st.Len() > 0 {
			match = st.At(0)
		}
		next, err := m.session.Select(match)
		if err != nil {
			m.errMsg = err.Error()
			return nil
		}
		m.syncInput(next.Query())
		m.viewport.Reset()
		candidate, ok := next.Value().(search.Candidate)
		if !ok {
			m.infoMsg = "nothing to select"
			return nil
		}
		events.Match.Select(candidate.Label, match.IsDefault)
		m.running = true
		m.errMsg = ""
		return m.bus.Execute(m.request(candidate))
	}
	return nil
}

func (m *Model) syncInput(query string) {
	if m.input.Value() == query {
		return
	}
	m.input.SetValue(query)
	m.input.CursorEnd()
}

func matchLabel(match complete.Match) string {
	if candidate, ok := match.Value.(search.Candidate); ok {
		return candidate.Label
	}
	return ""
}
