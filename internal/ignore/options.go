package ignore

import "github.com/bethropolis/repo-structure/internal/utils"

// Option configures a Matcher during construction.
type Option func(*Matcher)

// WithLogger sets the logger used for match tracing and parse warnings.
func WithLogger(logger utils.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}
