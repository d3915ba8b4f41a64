package result

import "log/slog"

// Options configures a Default result.
type Options struct {
	// Logger is used for debug logging of scope transitions. If nil, a
	// discarding logger is used.
	Logger *slog.Logger

	// Verbose enables printing of one summary line per completed test.
	// Errors are printed regardless.
	Verbose bool

	// TrackFunctions enables statistics at test-function granularity.
	// Default: true.
	TrackFunctions bool

	// Record enables keeping a per-test report of the run.
	Record bool
}

// Option is a functional option for configuring Default.
type Option func(*Options)

// WithVerbose enables or disables the per-test summary line.
func WithVerbose(enabled bool) Option {
	return func(o *Options) {
		o.Verbose = enabled
	}
}

// WithFunctionTracking enables or disables test-function statistics.
// Default: true (enabled).
func WithFunctionTracking(enabled bool) Option {
	return func(o *Options) {
		o.TrackFunctions = enabled
	}
}

// WithRecording enables or disables keeping a per-test report.
func WithRecording(enabled bool) Option {
	return func(o *Options) {
		o.Record = enabled
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// newDefaultOptions returns Options with default values.
func newDefaultOptions() Options {
	return Options{
		TrackFunctions: true,
	}
}
