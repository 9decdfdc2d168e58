package events

import (
	"fmt"

	"github.com/atomicstack/tmux-typeahead/internal/logging"
)

type QueryTracer struct{}

type MatchTracer struct{}

var (
	Query = QueryTracer{}
	Match = MatchTracer{}
)

func (QueryTracer) Set(query string, generation uint64) {
	logging.Trace("query.set", map[string]interface{}{"query": query, "generation": generation})
}

func (QueryTracer) Resolved(query string, generation uint64, count int) {
	logging.Trace("query.resolved", map[string]interface{}{
		"query":      query,
		"generation": generation,
		"matches":    count,
	})
}

func (QueryTracer) Rejected(query string, generation uint64, reason interface{}) {
	logging.Trace("query.rejected", map[string]interface{}{
		"query":      query,
		"generation": generation,
		"reason":     fmt.Sprint(reason),
	})
}

// Stale records a search result that arrived after its query was replaced or
// cancelled.
func (QueryTracer) Stale(query string, generation uint64) {
	logging.Trace("query.stale", map[string]interface{}{"query": query, "generation": generation})
}

func (QueryTracer) Cancelled(query string) {
	logging.Trace("query.cancel", map[string]interface{}{"query": query})
}

func (MatchTracer) Inspect(index int, label string) {
	logging.Trace("match.inspect", map[string]interface{}{"index": index, "label": label})
}

func (MatchTracer) Select(label string, isDefault bool) {
	logging.Trace("match.select", map[string]interface{}{"label": label, "default": isDefault})
}
