package tmux

import (
	"fmt"
	"os"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// FetchSessions lists every session on the server.
func FetchSessions(socketPath string) (SessionSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return SessionSnapshot{}, err
	}
	defer client.Close()
	sessions, err := client.ListSessions()
	if err != nil {
		return SessionSnapshot{}, fmt.Errorf("list sessions: %w", err)
	}
	current := currentSessionName(client)
	out := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if s == nil {
			continue
		}
		out = append(out, Session{
			Name:     s.Name,
			Label:    defaultLabelForSession(s),
			Attached: s.Attached > 0,
			Current:  s.Name == current,
			Windows:  s.Windows,
		})
	}
	return SessionSnapshot{Sessions: out, Current: current}, nil
}

// NewSession creates a detached session called name.
func NewSession(socketPath, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("session name required")
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	defer client.Close()
	if _, err := client.NewSession(&gotmux.SessionOptions{Name: trimmed}); err != nil {
		return fmt.Errorf("new session %s: %w", trimmed, err)
	}
	return nil
}

func defaultLabelForSession(s *gotmux.Session) string {
	label := fmt.Sprintf("%s: %d window", s.Name, s.Windows)
	if s.Windows != 1 {
		label += "s"
	}
	if s.Attached > 0 {
		label += " (attached)"
	}
	return label
}

func currentSessionName(client tmuxClient) string {
	if pane := strings.TrimSpace(os.Getenv("TMUX_PANE")); pane != "" {
		if name, err := client.DisplayMessage(pane, "#{session_name}"); err == nil {
			if name = strings.TrimSpace(name); name != "" {
				return name
			}
		}
	}
	if clients, err := client.ListClients(); err == nil {
		for _, c := range clients {
			if c != nil && c.Session != "" {
				return c.Session
			}
		}
	}
	return ""
}
