package app

import (
	"reflect"
	"testing"

	"github.com/atomicstack/tmux-typeahead/internal/backend"
	"github.com/atomicstack/tmux-typeahead/internal/state"
)

func TestWatchKindsFollowSource(t *testing.T) {
	cases := map[state.Source][]backend.Kind{
		state.SourceSessions: {backend.KindSessions},
		state.SourceWindows:  {backend.KindWindows},
		state.SourceAll:      {backend.KindSessions, backend.KindWindows},
	}
	for source, want := range cases {
		if got := watchKinds(source); !reflect.DeepEqual(got, want) {
			t.Fatalf("source %s: expected %v, got %v", source, want, got)
		}
	}
}
