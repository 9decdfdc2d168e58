package complete

// Kind identifies the active variant of a State.
type Kind int

const (
	KindInitial Kind = iota
	KindPending
	KindInspecting
)

func (k Kind) String() string {
	switch k {
	case KindInitial:
		return "initial"
	case KindPending:
		return "pending"
	case KindInspecting:
		return "inspecting"
	default:
		return "unknown"
	}
}

// State is the read-only surface shared by Initial, Pending and Inspecting.
// The set of implementations is closed.
type State interface {
	Kind() Kind
	Query() string
	Value() any
	Reason() any
	Matches() []Match
	CurrentMatch() Match
	NullMatch() Match
	IsPending() bool
	IsInspectingMatches() bool

	state()
}

// Initial is the resting state. It holds the last committed value and, after
// a failed search, the reason the search failed.
type Initial struct {
	opts   *options
	query  string
	value  any
	reason any
}

// New returns an empty Initial state configured with opts.
func New(opts ...Option) Initial {
	return Initial{opts: buildOptions(opts)}
}

func (Initial) state() {}

func (Initial) Kind() Kind { return KindInitial }

func (s Initial) Query() string { return s.query }

func (s Initial) Value() any { return s.value }

func (s Initial) Reason() any { return s.reason }

func (Initial) Matches() []Match { return []Match{} }

func (Initial) CurrentMatch() Match { return NullMatch() }

func (Initial) NullMatch() Match { return NullMatch() }

func (Initial) IsPending() bool { return false }

func (Initial) IsInspectingMatches() bool { return false }

// SetQuery starts a new search cycle for text. The returned Pending state
// rolls back to s when cancelled.
func (s Initial) SetQuery(text string) Pending {
	return Pending{initial: s, query: text}
}

func (s Initial) derive(query string, value, reason any) Initial {
	return Initial{opts: s.opts, query: query, value: value, reason: reason}
}
