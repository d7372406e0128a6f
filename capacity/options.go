package capacity

import "fmt"

// DefaultInitial is the initial capacity of a container built without WithInitial.
const DefaultInitial = 10

// Options configures a container's backing store.
type Options struct {
	// Initial is the number of slots allocated on construction.
	Initial int
	// Max is a hard capacity cap, zero means unbounded.
	Max int
	// Policy governs resizing.
	Policy Policy
}

// Option mutates Options.
type Option func(*Options)

// WithInitial sets the initial capacity.
func WithInitial(n int) Option {
	return func(o *Options) {
		o.Initial = n
	}
}

// WithMax caps the capacity, growth past it is refused.
func WithMax(n int) Option {
	return func(o *Options) {
		o.Max = n
	}
}

// WithPolicy replaces the default resize policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

// Resolve applies opts over the defaults and validates the result.
func Resolve(opts ...Option) (Options, error) {
	o := Options{
		Initial: DefaultInitial,
		Policy:  DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.Policy.Validate(); err != nil {
		return Options{}, err
	}

	if o.Initial < 1 {
		return Options{}, fmt.Errorf("%w: initial capacity %d below 1", ErrInvalidCapacity, o.Initial)
	}

	if o.Max < 0 || (o.Max > 0 && o.Max < o.Initial) {
		return Options{}, fmt.Errorf("%w: max capacity %d below initial %d", ErrInvalidCapacity, o.Max, o.Initial)
	}

	return o, nil
}

// Bounded reports whether a hard cap is configured.
func (o Options) Bounded() bool {
	return o.Max > 0
}
