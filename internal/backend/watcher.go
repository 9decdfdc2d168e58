package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-typeahead/internal/logging/events"
	"github.com/atomicstack/tmux-typeahead/internal/tmux"
)

// Kind represents the type of data emitted by the backend watcher.
type Kind int

const (
	KindSessions Kind = iota
	KindWindows
)

func (k Kind) String() string {
	switch k {
	case KindSessions:
		return "sessions"
	case KindWindows:
		return "windows"
	default:
		return "unknown"
	}
}

// Event conveys updated data or an error from a backend poll. Data holds a
// tmux.SessionSnapshot or tmux.WindowSnapshot.
type Event struct {
	Kind Kind
	Data interface{}
	Err  error
}

// Fetcher loads one kind of data from tmux.
type Fetcher func(ctx context.Context) (interface{}, error)

// Watcher polls tmux at a fixed interval and publishes events.
type Watcher struct {
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts a poller for each kind, fetching from the tmux server at
// socketPath every interval.
func NewWatcher(socketPath string, interval time.Duration, kinds ...Kind) *Watcher {
	fetchers := make(map[Kind]Fetcher, len(kinds))
	for _, kind := range kinds {
		switch kind {
		case KindSessions:
			fetchers[kind] = func(context.Context) (interface{}, error) {
				return tmux.FetchSessions(socketPath)
			}
		case KindWindows:
			fetchers[kind] = func(context.Context) (interface{}, error) {
				return tmux.FetchWindows(socketPath)
			}
		}
	}
	return NewWatcherWithFetchers(interval, fetchers)
}

// NewWatcherWithFetchers starts one poller per fetcher.
func NewWatcherWithFetchers(interval time.Duration, fetchers map[Kind]Fetcher) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}
	for kind, fetch := range fetchers {
		w.start(kind, fetch)
	}
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w
}

// Events returns a channel of backend events. It is closed once every poller
// has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes;
// use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until all poller goroutines have exited.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) start(kind Kind, fetch Fetcher) {
	throttle := newThrottle(250 * time.Millisecond)
	w.wg.Add(1)
	go w.poll(kind, func(ctx context.Context) (interface{}, error) {
		if !throttle.wait(ctx) {
			return nil, ctx.Err()
		}
		return fetch(ctx)
	})
}

func (w *Watcher) poll(kind Kind, fetch Fetcher) {
	defer w.wg.Done()

	emit := func() bool {
		data, err := fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		events.Backend.Error(kind.String(), err)
		evt := Event{Kind: kind, Data: data, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}
	if w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
