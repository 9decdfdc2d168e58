package ui

import (
	"github.com/atomicstack/tmux-typeahead/internal/logging"
	"github.com/atomicstack/tmux-typeahead/internal/logging/events"
	"github.com/atomicstack/tmux-typeahead/internal/search"
	"github.com/atomicstack/tmux-typeahead/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) request(candidate search.Candidate) command.Request {
	return command.Request{
		SocketPath: m.socketPath,
		ClientID:   m.clientID,
		Candidate:  candidate,
	}
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	res, ok := msg.(command.ResultMsg)
	if !ok {
		return nil
	}
	m.running = false
	if res.Err != nil {
		logging.Error(res.Err)
		m.errMsg = res.Err.Error()
		return nil
	}
	candidate := res.Request.Candidate
	m.selected = &candidate
	events.App.Exit("selected")
	return tea.Quit
}
