package result

import (
	"fmt"
	"io"
)

// Summary is a snapshot of the counters of a Default result.
type Summary struct {
	TestsRun          int `json:"testsRun"`
	TestsFailed       int `json:"testsFailed"`
	FunctionsRun      int `json:"functionsRun"`
	FunctionsFailed   int `json:"functionsFailed"`
	AssertionsChecked int `json:"assertionsChecked"`
	AssertionsFailed  int `json:"assertionsFailed"`

	// Functions is false when the counters were collected without
	// test-function statistics.
	Functions bool `json:"-"`
}

// OK returns true if no test failed and no assertion failed.
func (s Summary) OK() bool {
	return s.TestsFailed == 0 && s.AssertionsFailed == 0
}

// WriteTo writes the summary as "<label>: <count>" lines to w. Function
// counters are only written if s.Functions is true.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	lines := []struct {
		label string
		count int
		fn    bool
	}{
		{"Tests run", s.TestsRun, false},
		{"Tests failed", s.TestsFailed, false},
		{"Functions run", s.FunctionsRun, true},
		{"Functions failed", s.FunctionsFailed, true},
		{"Assertions checked", s.AssertionsChecked, false},
		{"Assertions failed", s.AssertionsFailed, false},
	}

	var n int64
	for _, l := range lines {
		if l.fn && !s.Functions {
			continue
		}

		written, err := fmt.Fprintf(w, "%-20s%d\n", l.label+":", l.count)
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("writing %q: %w", l.label, err)
		}
	}

	return n, nil
}
