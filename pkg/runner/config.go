// Package runner runs a test unit with a result.Default configured from a
// Config and renders its outcome.
package runner

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/specvital/harness/pkg/domain"
)

// Config is the configuration of a run.
type Config struct {
	// Logger is used for logging the run. If nil, a discarding logger is
	// used.
	Logger *slog.Logger

	// Printer receives error lines, verbose test lines and the summary. It
	// must not be nil.
	Printer io.Writer

	// ReportWriter, if not nil, receives a JSON report of the run after it
	// completed.
	ReportWriter io.Writer

	// Baseline, if not nil, is the report of an earlier run. The run then
	// only fails if a test fails that did not fail in the baseline.
	Baseline *domain.Report

	// Patterns are glob patterns selecting units by their slash-separated
	// name path, for example "math/**". Empty means all units run.
	Patterns []string

	// Verbose enables a result line per completed test.
	Verbose bool

	// Summary enables printing the counters after the run.
	Summary bool

	// Details enables printing a per-test listing of failed assertions after
	// the run.
	Details bool

	// NoFunctionTracking disables test-function statistics.
	NoFunctionTracking bool
}

const (
	errNilConfig      errors.Error = "config is nil"
	errNoPrinter      errors.Error = "printer is nil"
	errInvalidPattern errors.Error = "invalid pattern"
)

// Validate returns an error if c is not usable for a run.
func (c *Config) Validate() error {
	if c == nil {
		return errNilConfig
	}

	var errs []error
	if c.Printer == nil {
		errs = append(errs, errNoPrinter)
	}

	for i, p := range c.Patterns {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("patterns: at index %d: %w: %q", i, errInvalidPattern, p))
		}
	}

	return errors.Join(errs...)
}

// needsRecording returns true if the run must keep a per-test report.
func (c *Config) needsRecording() bool {
	return c.ReportWriter != nil || c.Details || c.Baseline != nil
}
