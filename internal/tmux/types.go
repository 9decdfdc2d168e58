package tmux

import (
	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// Session is a tmux session as offered to the typeahead.
type Session struct {
	Name     string
	Label    string
	Attached bool
	Current  bool
	Windows  int
}

// SessionSnapshot is one poll of the session list.
type SessionSnapshot struct {
	Sessions []Session
	Current  string
}

// Window is a tmux window as offered to the typeahead.
type Window struct {
	ID      string
	Session string
	Index   int
	Name    string
	Active  bool
	Label   string
	Current bool
}

// WindowSnapshot is one poll of the window list.
type WindowSnapshot struct {
	Windows        []Window
	CurrentSession string
}

type tmuxClient interface {
	ListSessions() ([]*gotmux.Session, error)
	ListAllWindows() ([]*gotmux.Window, error)
	ListClients() ([]*gotmux.Client, error)
	SwitchClient(*gotmux.SwitchClientOptions) error
	SelectWindow(string) error
	NewSession(*gotmux.SessionOptions) (*gotmux.Session, error)
	DisplayMessage(target, format string) (string, error)
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}
