package complete

// Option configures a state machine created by New or NewSession.
type Option func(*options)

type options struct {
	defaultMatch func(query string) any
}

// WithDefaultMatch appends a match holding value after every resolved
// result set.
func WithDefaultMatch(value any) Option {
	return func(o *options) {
		o.defaultMatch = func(string) any { return value }
	}
}

// WithDefaultMatchFunc appends a match after every resolved result set whose
// value is computed from the pending query.
func WithDefaultMatchFunc(fn func(query string) any) Option {
	return func(o *options) {
		o.defaultMatch = fn
	}
}

func buildOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

func (o *options) hasDefault() bool {
	return o != nil && o.defaultMatch != nil
}
