package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/tmux-typeahead/internal/backend"
	"github.com/atomicstack/tmux-typeahead/internal/complete"
	"github.com/atomicstack/tmux-typeahead/internal/data/dispatcher"
	"github.com/atomicstack/tmux-typeahead/internal/search"
	"github.com/atomicstack/tmux-typeahead/internal/state"
	"github.com/atomicstack/tmux-typeahead/internal/theme"
	"github.com/atomicstack/tmux-typeahead/internal/ui/command"
	uistate "github.com/atomicstack/tmux-typeahead/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultPlaceholder = "type to search"
	promptText         = "› "
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// SearchFunc ranks the snapshot's candidates for query.
type SearchFunc func(ctx context.Context, query string, snap search.Snapshot) ([]search.Candidate, error)

// Options configures a Model.
type Options struct {
	SocketPath string
	ClientID   string
	Width      int
	Height     int
	Source     state.Source
	Create     bool
	Limit      int
	Watcher    *backend.Watcher
	Search     SearchFunc
	Store      state.CandidateStore
	Bus        *command.Bus
}

// Model implements the Bubble Tea model for the typeahead popup.
type Model struct {
	session  *complete.Session
	input    textinput.Model
	viewport uistate.Viewport

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool

	errMsg   string
	infoMsg  string
	selected *search.Candidate
	running  bool
	err      error

	handlers map[reflect.Type]msgHandler

	socketPath string
	clientID   string
	source     state.Source
	search     SearchFunc
	store      state.CandidateStore
	dispatcher *dispatcher.Dispatcher
	backend    *backend.Watcher
	bus        *command.Bus
}

// NewModel initialises the UI state from opts.
func NewModel(opts Options) *Model {
	store := opts.Store
	if store == nil {
		store = state.NewCandidateStore()
	}
	source := opts.Source
	if !source.Valid() {
		source = state.SourceAll
	}
	searchFn := opts.Search
	if searchFn == nil {
		searchFn = search.NewSearcher(opts.Limit).Search
	}
	bus := opts.Bus
	if bus == nil {
		bus = command.New()
	}
	var sessionOpts []complete.Option
	if opts.Create {
		sessionOpts = append(sessionOpts, complete.WithDefaultMatchFunc(func(query string) any {
			return search.CreateMatch(query)
		}))
	}

	m := &Model{
		session:    complete.NewSession(sessionOpts...),
		input:      newInput(source),
		socketPath: opts.SocketPath,
		clientID:   opts.ClientID,
		source:     source,
		search:     searchFn,
		store:      store,
		dispatcher: dispatcher.New(store),
		backend:    opts.Watcher,
		bus:        bus,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.registerHandlers()
	return m
}

func newInput(source state.Source) textinput.Model {
	in := textinput.New()
	in.Prompt = promptText
	in.Placeholder = placeholderFor(source)
	in.PromptStyle = *styles.Prompt
	in.TextStyle = *styles.Query
	in.PlaceholderStyle = *styles.Placeholder
	in.Cursor.SetMode(cursor.CursorStatic)
	in.Focus()
	return in
}

func placeholderFor(source state.Source) string {
	switch source {
	case state.SourceSessions:
		return "search sessions"
	case state.SourceWindows:
		return "search windows"
	default:
		return defaultPlaceholder
	}
}

// Init is part of the tea.Model interface. It starts the first search cycle
// with an empty query so every candidate is listed.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startSearch(m.input.Value())}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(searchResultMsg{}):   m.handleSearchResultMsg,
		reflect.TypeOf(command.ResultMsg{}): m.handleCommandResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	return nil
}

// State returns the current typeahead state.
func (m *Model) State() complete.State {
	return m.session.State()
}

// Selected returns the candidate whose command finished successfully, if any.
func (m *Model) Selected() (search.Candidate, bool) {
	if m.selected == nil {
		return search.Candidate{}, false
	}
	return *m.selected, true
}

// Err returns the error the program should exit with.
func (m *Model) Err() error {
	return m.err
}
