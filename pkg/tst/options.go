package tst

import "github.com/specvital/harness/pkg/registry"

// Options configures test cases and suites.
type Options struct {
	// Capacity is the maximum number of test functions of a case or units
	// of a suite. Non-positive values mean unbounded.
	// Default: registry.DefaultCapacity.
	Capacity int

	// Name is the display name of a suite. Cases take their name as a
	// constructor argument.
	Name string
}

// Option is a functional option for configuring cases and suites.
type Option func(*Options)

// WithCapacity sets the registration capacity. Non-positive values make the
// unit unbounded.
func WithCapacity(n int) Option {
	return func(o *Options) {
		o.Capacity = n
	}
}

// WithName sets the display name of a suite.
func WithName(name string) Option {
	return func(o *Options) {
		o.Name = name
	}
}

func newOptions(opts []Option) Options {
	options := Options{
		Capacity: registry.DefaultCapacity,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
