// Package result defines the reporting contract consumed by running tests and
// its default, counting implementation.
package result

// Result collects the outcome of a test run. Test units report scope
// transitions and assertion outcomes to it while they execute.
type Result interface {
	// StartTest marks the beginning of a new test case. An empty name means
	// the test has no display name.
	StartTest(name string)

	// EndTest marks the end of the test case previously started with
	// StartTest.
	EndTest()

	// StartTestFunction marks the beginning of a single test function within
	// the current test case.
	StartTestFunction()

	// EndTestFunction marks the end of the test function previously started
	// with StartTestFunction.
	EndTestFunction()

	// Assert records the outcome of checking cond at the given source
	// position. msg is optional additional information, empty means none.
	// It returns cond.
	Assert(cond bool, file string, line int, msg string) bool
}
