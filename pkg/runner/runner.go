package runner

import (
	"context"
	"log/slog"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/AdguardTeam/golibs/logutil/slogutil"
	"github.com/AdguardTeam/golibs/osutil"

	"github.com/specvital/harness/pkg/domain"
	"github.com/specvital/harness/pkg/report"
	"github.com/specvital/harness/pkg/result"
	"github.com/specvital/harness/pkg/tst"
)

// LogPrefix is the prefix used for log messages of the runner.
const LogPrefix = "runner"

// ErrNothingSelected is returned when the patterns of a run select no unit.
const ErrNothingSelected errors.Error = "no unit matches the patterns"

// Outcome is the outcome of a completed run.
type Outcome struct {
	// Report is the per-test report, nil unless the run needed one.
	Report *domain.Report

	// Diff is the comparison with the configured baseline, nil if there is
	// none.
	Diff *report.Diff

	// Summary contains the counters of the run.
	Summary result.Summary
}

// ExitCode returns the process exit code for o. With a baseline, only new
// failures fail the run.
func (o *Outcome) ExitCode() int {
	failed := !o.Summary.OK()
	if o.Diff != nil {
		failed = o.Diff.Regressed()
	}

	if failed {
		return osutil.ExitCodeFailure
	}

	return osutil.ExitCodeSuccess
}

// Run runs u as configured by conf. It returns an error if conf is invalid,
// nothing is selected, ctx is done before the run starts or the outcome
// cannot be written. Failing tests are not errors; see [Outcome.ExitCode].
func Run(ctx context.Context, conf *Config, u tst.Unit) (*Outcome, error) {
	err := conf.Validate()
	if err != nil {
		return nil, errors.Annotate(err, "validating config: %w")
	}

	l := conf.Logger
	if l == nil {
		l = slogutil.NewDiscardLogger()
	}
	l = l.With(slogutil.KeyPrefix, LogPrefix)

	selected := selectUnits(u, conf.Patterns)
	if selected == nil {
		return nil, ErrNothingSelected
	}

	err = ctx.Err()
	if err != nil {
		return nil, errors.Annotate(err, "starting run: %w")
	}

	r := result.New(
		conf.Printer,
		result.WithLogger(l),
		result.WithVerbose(conf.Verbose),
		result.WithFunctionTracking(!conf.NoFunctionTracking),
		result.WithRecording(conf.needsRecording()),
	)

	l.InfoContext(ctx, "running tests", "unit", tst.NameOf(selected), "patterns", conf.Patterns)

	selected.Run(r)

	o := &Outcome{
		Report:  r.Report(),
		Summary: r.Summary(),
	}

	logOutcome(ctx, l, o)

	if conf.Baseline != nil {
		o.Diff = report.Compare(conf.Baseline, o.Report)
		if !o.Diff.IsEmpty() {
			l.WarnContext(ctx, "differs from baseline", "regressed", o.Diff.Regressed())
			slogutil.PrintLines(ctx, l, slog.LevelWarn, "baseline diff", o.Diff.String())
		}
	}

	return o, writeOutcome(conf, o)
}

// logOutcome logs the counters of o and, if one was recorded, of its report.
func logOutcome(ctx context.Context, l *slog.Logger, o *Outcome) {
	s := o.Summary

	lvl := slog.LevelInfo
	if !s.OK() {
		lvl = slog.LevelWarn
	}

	attrs := []any{
		"tests_run", s.TestsRun,
		"tests_failed", s.TestsFailed,
		"assertions_checked", s.AssertionsChecked,
		"assertions_failed", s.AssertionsFailed,
	}

	if o.Report != nil {
		attrs = append(
			attrs,
			"report_failed", o.Report.CountFailed(),
			"report_failures", o.Report.CountFailures(),
		)
	}

	l.Log(ctx, lvl, "finished tests", attrs...)
}

// writeOutcome prints the optional parts of the outcome configured by conf.
func writeOutcome(conf *Config, o *Outcome) error {
	if conf.Details {
		err := report.WriteText(conf.Printer, o.Report)
		if err != nil {
			return errors.Annotate(err, "writing details: %w")
		}
	}

	if conf.Summary {
		_, err := o.Summary.WriteTo(conf.Printer)
		if err != nil {
			return errors.Annotate(err, "writing summary: %w")
		}
	}

	if conf.ReportWriter != nil {
		err := report.WriteJSON(conf.ReportWriter, o.Summary, o.Report)
		if err != nil {
			return errors.Annotate(err, "writing report: %w")
		}
	}

	return nil
}
