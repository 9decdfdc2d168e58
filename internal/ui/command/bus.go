package command

import (
	"errors"
	"fmt"

	"github.com/atomicstack/tmux-typeahead/internal/logging/events"
	"github.com/atomicstack/tmux-typeahead/internal/search"
	"github.com/atomicstack/tmux-typeahead/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUnknownKind is returned for candidates the bus has no action for.
var ErrUnknownKind = errors.New("unknown candidate kind")

// Request encapsulates the selection of one candidate.
type Request struct {
	SocketPath string
	ClientID   string
	Candidate  search.Candidate
}

// ID returns a stable identifier used in trace logs.
func (r Request) ID() string {
	return string(r.Candidate.Kind) + ":" + r.Candidate.ID
}

// ResultMsg reports the outcome of an executed request.
type ResultMsg struct {
	Request Request
	Err     error
}

// Ops are the tmux operations a Bus performs.
type Ops struct {
	SwitchClient func(socketPath, clientID, target string) error
	SelectWindow func(socketPath, clientID, target string) error
	NewSession   func(socketPath, name string) error
}

// Bus executes selections against tmux.
type Bus struct {
	ops Ops
}

// New initialises a command bus backed by the tmux package.
func New() *Bus {
	return NewWithOps(Ops{
		SwitchClient: tmux.SwitchClient,
		SelectWindow: tmux.SelectWindow,
		NewSession:   tmux.NewSession,
	})
}

// NewWithOps returns a bus running ops, for callers that drive tmux
// differently.
func NewWithOps(ops Ops) *Bus {
	return &Bus{ops: ops}
}

// Execute wraps the selection into a Bubble Tea command while emitting trace
// logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	id := req.ID()
	events.Command.Queue(id, req.Candidate.Label)
	return func() tea.Msg {
		if req.Candidate.Target == "" {
			events.Command.Skip(id, req.Candidate.Label)
			return ResultMsg{Request: req, Err: fmt.Errorf("%s: empty target", id)}
		}
		err := b.run(req)
		events.Command.Result(id, req.Candidate.Label, err)
		return ResultMsg{Request: req, Err: err}
	}
}

func (b *Bus) run(req Request) error {
	c := req.Candidate
	switch c.Kind {
	case search.KindSession:
		if err := b.ops.SwitchClient(req.SocketPath, req.ClientID, c.Target); err != nil {
			return fmt.Errorf("switch to session %s: %w", c.Target, err)
		}
	case search.KindWindow:
		if err := b.ops.SelectWindow(req.SocketPath, req.ClientID, c.Target); err != nil {
			return fmt.Errorf("switch to window %s: %w", c.Target, err)
		}
	case search.KindCreate:
		if err := b.ops.NewSession(req.SocketPath, c.Target); err != nil {
			return fmt.Errorf("create session %s: %w", c.Target, err)
		}
		if err := b.ops.SwitchClient(req.SocketPath, req.ClientID, c.Target); err != nil {
			return fmt.Errorf("switch to new session %s: %w", c.Target, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
	}
	return nil
}
