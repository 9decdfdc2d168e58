package tmux

import (
	"fmt"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// FetchWindows lists every window across all sessions.
func FetchWindows(socketPath string) (WindowSnapshot, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return WindowSnapshot{}, err
	}
	defer client.Close()
	windows, err := client.ListAllWindows()
	if err != nil {
		return WindowSnapshot{}, fmt.Errorf("list windows: %w", err)
	}
	current := currentSessionName(client)
	snapshot := WindowSnapshot{CurrentSession: current}
	for _, w := range windows {
		if w == nil {
			continue
		}
		session := firstSession(w)
		snapshot.Windows = append(snapshot.Windows, Window{
			ID:      fmt.Sprintf("%s:%d", session, w.Index),
			Session: session,
			Index:   w.Index,
			Name:    w.Name,
			Active:  w.Active,
			Label:   fmt.Sprintf("%s:%d %s", session, w.Index, w.Name),
			Current: session == current && w.Active,
		})
	}
	return snapshot, nil
}

// SelectWindow switches the client to the session owning target and then
// selects the window itself.
func SelectWindow(socketPath, clientID, target string) error {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" {
		return fmt.Errorf("window target required")
	}
	session := trimmed
	if idx := strings.IndexRune(trimmed, ':'); idx > 0 {
		session = trimmed[:idx]
	}
	if err := SwitchClient(socketPath, clientID, session); err != nil {
		return err
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.SelectWindow(trimmed); err != nil {
		return fmt.Errorf("select window %s: %w", trimmed, err)
	}
	return nil
}

func firstSession(w *gotmux.Window) string {
	if len(w.ActiveSessionsList) > 0 {
		return w.ActiveSessionsList[0]
	}
	if len(w.LinkedSessionsList) > 0 {
		return w.LinkedSessionsList[0]
	}
	return ""
}
