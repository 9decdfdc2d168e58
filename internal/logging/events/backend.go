package events

import "github.com/atomicstack/tmux-typeahead/internal/logging"

type BackendTracer struct{}

var Backend = BackendTracer{}

func (BackendTracer) Poll(kind string, count int) {
	logging.Trace("backend.poll", map[string]interface{}{"kind": kind, "count": count})
}

func (BackendTracer) Error(kind string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"kind": kind, "error": err.Error()})
}
