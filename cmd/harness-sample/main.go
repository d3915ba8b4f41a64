// Command harness-sample runs the sample test suite and prints its results.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/AdguardTeam/golibs/errors"
	"github.com/AdguardTeam/golibs/logutil/slogutil"
	"github.com/AdguardTeam/golibs/osutil"

	"github.com/specvital/harness/internal/sample"
	"github.com/specvital/harness/pkg/domain"
	"github.com/specvital/harness/pkg/report"
	"github.com/specvital/harness/pkg/runner"
)

func main() {
	opts, exitCode, err := parseOptions(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, fmt.Errorf("parsing options: %w", err))
	}

	if opts == nil {
		os.Exit(exitCode)
	}

	format, err := logFormat(opts.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(osutil.ExitCodeArgumentError)
	}

	lvl := slog.LevelInfo
	if opts.Debug {
		lvl = slog.LevelDebug
	}

	l := slogutil.New(&slogutil.Config{
		Output: os.Stderr,
		Format: format,
		Level:  lvl,
	})

	ctx := context.Background()

	exitCode, err = run(ctx, l, opts)
	if err != nil {
		l.ErrorContext(ctx, "running tests", slogutil.KeyError, err)
	}

	os.Exit(exitCode)
}

// run runs the sample suite as configured by opts and returns the exit code.
func run(ctx context.Context, l *slog.Logger, opts *options) (exitCode int, err error) {
	conf := &runner.Config{
		Logger:             l,
		Printer:            os.Stdout,
		Patterns:           opts.Patterns,
		Verbose:            opts.Verbose,
		Summary:            true,
		Details:            opts.Details,
		NoFunctionTracking: opts.NoFunctions,
	}

	if opts.BaselinePath != "" {
		conf.Baseline, err = readBaseline(opts.BaselinePath)
		if err != nil {
			return osutil.ExitCodeArgumentError, err
		}
	}

	if opts.ReportPath != "" {
		// #nosec G304 -- Trust the file path that is given in the args.
		f, fErr := os.Create(opts.ReportPath)
		if fErr != nil {
			return osutil.ExitCodeArgumentError, fmt.Errorf("creating report: %w", fErr)
		}

		defer func() {
			err = errors.WithDeferred(err, f.Close())
			exitCode = failureOnError(exitCode, err)
		}()

		conf.ReportWriter = f
	}

	_, _ = fmt.Fprintln(os.Stdout, "Running Tests...")

	o, err := runner.Run(ctx, conf, sample.NewSuite())
	if err != nil {
		return osutil.ExitCodeFailure, err
	}

	return o.ExitCode(), nil
}

// failureOnError returns exitCode, turned into a failure if err is not nil.
func failureOnError(exitCode int, err error) int {
	if err != nil && exitCode == osutil.ExitCodeSuccess {
		return osutil.ExitCodeFailure
	}

	return exitCode
}

// readBaseline reads the report of an earlier run from the file at path.
func readBaseline(path string) (rep *domain.Report, err error) {
	// #nosec G304 -- Trust the file path that is given in the args.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening baseline: %w", err)
	}

	defer func() { err = errors.WithDeferred(err, f.Close()) }()

	doc, err := report.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("reading baseline %s: %w", path, err)
	}

	return doc.Report(), nil
}
