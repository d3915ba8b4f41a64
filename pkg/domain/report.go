// Package domain defines the core types describing the outcome of a test run.
package domain

import "strconv"

// Failure is a single failed assertion.
type Failure struct {
	// Location is where the assertion was made.
	Location Location `json:"location"`
	// Message is the optional message supplied with the assertion.
	Message string `json:"message,omitempty"`
}

// TestRecord describes one started test case.
type TestRecord struct {
	// ID is the sequential identifier assigned when the test started.
	ID int `json:"id"`
	// Name is the display name, empty for unnamed tests.
	Name string `json:"name,omitempty"`
	// Status is the outcome of the test.
	Status TestStatus `json:"status"`
	// FunctionsRun is the number of test functions completed.
	FunctionsRun int `json:"functionsRun"`
	// FunctionsFailed is the number of test functions with a failed assertion.
	FunctionsFailed int `json:"functionsFailed"`
	// AssertionsChecked is the number of assertions evaluated.
	AssertionsChecked int `json:"assertionsChecked"`
	// Failures contains the failed assertions in the order they occurred.
	Failures []Failure `json:"failures,omitempty"`
}

// DisplayName returns the name of the test or, if it has none, its ID.
func (r *TestRecord) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return strconv.Itoa(r.ID)
}

// Report represents the outcome of a whole run.
type Report struct {
	// Tests contains one record per started test in start order.
	Tests []TestRecord `json:"tests"`
}

// CountTests returns the number of recorded tests.
func (r Report) CountTests() int {
	return len(r.Tests)
}

// CountFailed returns the number of failed tests.
func (r Report) CountFailed() int {
	count := 0
	for _, t := range r.Tests {
		if t.Status == TestStatusFailed {
			count++
		}
	}
	return count
}

// CountFailures returns the total number of failed assertions.
func (r Report) CountFailures() int {
	count := 0
	for _, t := range r.Tests {
		count += len(t.Failures)
	}
	return count
}
