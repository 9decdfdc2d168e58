package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tmux-typeahead/internal/backend"
	"github.com/atomicstack/tmux-typeahead/internal/state"
	"github.com/atomicstack/tmux-typeahead/internal/tmux"
	"github.com/atomicstack/tmux-typeahead/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	Width        int
	Height       int
	Source       state.Source
	Create       bool
	Limit        int
	PollInterval time.Duration
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}
	watcher := backend.NewWatcher(socketPath, cfg.PollInterval, watchKinds(cfg.Source)...)
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		SocketPath: socketPath,
		ClientID:   tmux.CurrentClientID(socketPath),
		Width:      cfg.Width,
		Height:     cfg.Height,
		Source:     cfg.Source,
		Create:     cfg.Create,
		Limit:      cfg.Limit,
		Watcher:    watcher,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return err
	}
	if m, ok := final.(*ui.Model); ok {
		return m.Err()
	}
	return nil
}

func watchKinds(source state.Source) []backend.Kind {
	switch source {
	case state.SourceSessions:
		return []backend.Kind{backend.KindSessions}
	case state.SourceWindows:
		return []backend.Kind{backend.KindWindows}
	default:
		return []backend.Kind{backend.KindSessions, backend.KindWindows}
	}
}
