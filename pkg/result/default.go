package result

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/AdguardTeam/golibs/logutil/slogutil"

	"github.com/specvital/harness/pkg/domain"
)

// LogPrefix is the prefix used for log messages of Default.
const LogPrefix = "result"

// Default counts tests, test functions and assertions and prints errors and,
// optionally, per-test results to a printer.
//
// A test or test function is counted as failed at most once, no matter how
// many assertions fail within it. Failures are charged only to open scopes:
// an assertion made after EndTest or EndTestFunction is counted but fails
// neither the closed test nor the closed function.
//
// Default is not safe for concurrent use and is meant for exactly one run.
type Default struct {
	printer io.Writer
	logger  *slog.Logger

	verbose        bool
	trackFunctions bool

	testID     int
	functionID int

	testsRun          int
	testsFailed       int
	functionsRun      int
	functionsFailed   int
	assertionsChecked int
	assertionsFailed  int

	// Identifiers of the most recent test and test function marked as
	// failed. Identifiers start at one, so zero never matches.
	lastFailedTest     int
	lastFailedFunction int

	// Function counters of the currently open test.
	testFunctionsRun    int
	testFunctionsFailed int

	currentTest  string
	testOpen     bool
	functionOpen bool

	report *domain.Report
}

var _ Result = (*Default)(nil)

// New creates a Default result printing to printer, which must not be nil.
func New(printer io.Writer, opts ...Option) *Default {
	options := newDefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slogutil.NewDiscardLogger()
	}

	r := &Default{
		printer:        printer,
		logger:         options.Logger.With(slogutil.KeyPrefix, LogPrefix),
		verbose:        options.Verbose,
		trackFunctions: options.TrackFunctions,
	}

	if options.Record {
		r.report = &domain.Report{Tests: []domain.TestRecord{}}
	}

	return r
}

// StartTest opens a new test with a fresh identifier and resets the
// per-test function counters.
func (r *Default) StartTest(name string) {
	r.testID++
	r.testsRun++
	r.currentTest = name
	r.testOpen = true

	r.testFunctionsRun = 0
	r.testFunctionsFailed = 0

	if r.report != nil {
		r.report.Tests = append(r.report.Tests, domain.TestRecord{
			ID:     r.testID,
			Name:   name,
			Status: domain.TestStatusPassed,
		})
	}

	r.logger.Debug("starting test", "id", r.testID, "name", name)
}

// EndTest closes the current test and prints its result line in verbose
// mode.
func (r *Default) EndTest() {
	if r.verbose {
		r.printTestResult()
	}

	r.logger.Debug(
		"finished test",
		"id", r.testID,
		"failed", r.currentTestFailed(),
		"functions_run", r.testFunctionsRun,
		"functions_failed", r.testFunctionsFailed,
	)

	r.currentTest = ""
	r.testOpen = false
	r.functionOpen = false
}

// StartTestFunction opens a new test function with a fresh identifier.
func (r *Default) StartTestFunction() {
	if !r.trackFunctions {
		return
	}

	r.functionID++
	r.functionOpen = true
}

// EndTestFunction closes the current test function and counts it as run.
func (r *Default) EndTestFunction() {
	if !r.trackFunctions {
		return
	}

	r.functionOpen = false
	r.functionsRun++
	r.testFunctionsRun++

	if rec := r.currentRecord(); rec != nil {
		rec.FunctionsRun = r.testFunctionsRun
	}
}

// Assert counts the assertion and, if cond is false, marks the open test and
// test function as failed and prints an error line. It returns cond.
func (r *Default) Assert(cond bool, file string, line int, msg string) bool {
	r.assertionsChecked++

	rec := r.currentRecord()
	if rec != nil {
		rec.AssertionsChecked++
	}

	if cond {
		return true
	}

	r.assertionsFailed++

	if r.testOpen && r.lastFailedTest != r.testID {
		r.testsFailed++
		r.lastFailedTest = r.testID
	}

	if r.functionOpen && r.lastFailedFunction != r.functionID {
		r.functionsFailed++
		r.testFunctionsFailed++
		r.lastFailedFunction = r.functionID
	}

	if rec != nil {
		rec.Failures = append(rec.Failures, domain.Failure{
			Location: domain.Location{File: file, Line: line},
			Message:  msg,
		})
		rec.Status = domain.StatusOf(len(rec.Failures))
		rec.FunctionsFailed = r.testFunctionsFailed
	}

	r.printError(file, line, msg)

	return false
}

// PrintSummary prints the accumulated counters to the printer.
func (r *Default) PrintSummary() {
	_, err := r.Summary().WriteTo(r.printer)
	if err != nil {
		r.logger.Error("printing summary", slogutil.KeyError, err)
	}
}

// Summary returns a snapshot of the accumulated counters.
func (r *Default) Summary() Summary {
	return Summary{
		TestsRun:          r.testsRun,
		TestsFailed:       r.testsFailed,
		FunctionsRun:      r.functionsRun,
		FunctionsFailed:   r.functionsFailed,
		AssertionsChecked: r.assertionsChecked,
		AssertionsFailed:  r.assertionsFailed,
		Functions:         r.trackFunctions,
	}
}

// Report returns the per-test report of the run, or nil if recording is
// disabled. The report must not be modified while the run is in progress.
func (r *Default) Report() *domain.Report {
	return r.report
}

func (r *Default) TestsRun() int { return r.testsRun }

// TestsFailed counts each failed test once, however many of its assertions
// failed.
func (r *Default) TestsFailed() int { return r.testsFailed }

// FunctionsRun is always zero when function tracking is disabled.
func (r *Default) FunctionsRun() int { return r.functionsRun }

func (r *Default) FunctionsFailed() int { return r.functionsFailed }

func (r *Default) AssertionsChecked() int { return r.assertionsChecked }

func (r *Default) AssertionsFailed() int { return r.assertionsFailed }

func (r *Default) currentTestFailed() bool {
	return r.testID != 0 && r.lastFailedTest == r.testID
}

// currentRecord returns the record of the open test or nil.
func (r *Default) currentRecord() *domain.TestRecord {
	if r.report == nil || !r.testOpen || len(r.report.Tests) == 0 {
		return nil
	}

	return &r.report.Tests[len(r.report.Tests)-1]
}

// displayName returns the name of the current test or its identifier.
func (r *Default) displayName() string {
	if r.currentTest != "" {
		return r.currentTest
	}

	return strconv.Itoa(r.testID)
}

func (r *Default) printTestResult() {
	status := "Successful"
	if r.currentTestFailed() {
		status = "Failed"
	}

	var err error
	if r.trackFunctions {
		passed := r.testFunctionsRun - r.testFunctionsFailed
		_, err = fmt.Fprintf(
			r.printer,
			"%s:\n\t%d/%d (%d%%):\t%s\n",
			r.displayName(),
			passed,
			r.testFunctionsRun,
			percent(passed, r.testFunctionsRun),
			status,
		)
	} else {
		_, err = fmt.Fprintf(r.printer, "%s: %s\n", r.displayName(), status)
	}

	if err != nil {
		r.logger.Error("printing test result", slogutil.KeyError, err)
	}
}

// printError prints the error line of a failed assertion. An empty msg is
// omitted.
func (r *Default) printError(file string, line int, msg string) {
	s := fmt.Sprintf("Error: %s (%d)", file, line)
	if r.currentTest != "" {
		s += ": " + r.currentTest
	}

	if msg != "" {
		s += ": " + msg
	}

	_, err := io.WriteString(r.printer, s+"\n")
	if err != nil {
		r.logger.Error("printing error", slogutil.KeyError, err)
	}
}

// percent returns part of total in whole percent, rounded down, and 100 for
// a zero total.
func percent(part, total int) int {
	if total == 0 {
		return 100
	}

	return part * 100 / total
}
