package identity

import "time"

// Option alters the default configuration of a Registry during construction
type Option interface {
	apply(*Registry)
}

type optionFunc func(r *Registry)

func (f optionFunc) apply(r *Registry) { f(r) }

// SimulatedLatency inserts an artificial delay into Login and Signup so
// callers can exercise their in-flight states. Zero (the default) disables
// the delay; tests rely on that.
func SimulatedLatency(d time.Duration) Option {
	return optionFunc(func(r *Registry) {
		r.latency = d
	})
}
