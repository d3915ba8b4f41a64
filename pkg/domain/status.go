package domain

// TestStatus represents the outcome of a completed test.
type TestStatus string

// Test status values.
const (
	// TestStatusPassed indicates that no assertion failed within the test.
	TestStatusPassed TestStatus = "passed"
	// TestStatusFailed indicates that at least one assertion failed.
	TestStatusFailed TestStatus = "failed"
)

// StatusOf returns the status of a test with the given number of failed
// assertions.
func StatusOf(failedAssertions int) TestStatus {
	if failedAssertions > 0 {
		return TestStatusFailed
	}
	return TestStatusPassed
}
