package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specvital/harness/pkg/domain"
)

// maxListed is the maximum number of test names listed per section of
// Diff.String.
const maxListed = 10

// ReadJSON reads a document written by WriteJSON from r.
func ReadJSON(r io.Reader) (*Document, error) {
	doc := &Document{}
	err := json.NewDecoder(r).Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}

	return doc, nil
}

// Diff represents differences between a baseline report and the report of
// the current run. Tests are matched by display name.
type Diff struct {
	// NewFailures are tests failing now that passed or were absent in the
	// baseline.
	NewFailures []string
	// Fixed are tests passing now that failed in the baseline.
	Fixed []string
	// Missing are tests of the baseline that did not run.
	Missing []string
	// Extra are tests that ran but are absent from the baseline.
	Extra []string
	// TestCountDiff is the change in the number of tests.
	TestCountDiff int
}

// Compare returns the differences between baseline and actual. If several
// tests share a display name, the last one is used.
func Compare(baseline, actual *domain.Report) *Diff {
	want := statusByName(baseline)
	got := statusByName(actual)

	d := &Diff{
		TestCountDiff: actual.CountTests() - baseline.CountTests(),
	}

	for name, status := range got {
		wantStatus, ok := want[name]
		if !ok {
			d.Extra = append(d.Extra, name)
		}

		switch {
		case status == domain.TestStatusFailed && wantStatus != domain.TestStatusFailed:
			d.NewFailures = append(d.NewFailures, name)
		case status == domain.TestStatusPassed && wantStatus == domain.TestStatusFailed:
			d.Fixed = append(d.Fixed, name)
		}
	}

	for name := range want {
		if _, ok := got[name]; !ok {
			d.Missing = append(d.Missing, name)
		}
	}

	sort.Strings(d.NewFailures)
	sort.Strings(d.Fixed)
	sort.Strings(d.Missing)
	sort.Strings(d.Extra)

	return d
}

func statusByName(rep *domain.Report) map[string]domain.TestStatus {
	m := make(map[string]domain.TestStatus, len(rep.Tests))
	for _, t := range rep.Tests {
		m[t.DisplayName()] = t.Status
	}

	return m
}

// IsEmpty returns true if there are no differences.
func (d *Diff) IsEmpty() bool {
	return d.TestCountDiff == 0 &&
		len(d.NewFailures) == 0 &&
		len(d.Fixed) == 0 &&
		len(d.Missing) == 0 &&
		len(d.Extra) == 0
}

// Regressed returns true if any test fails that did not fail in the
// baseline.
func (d *Diff) Regressed() bool {
	return len(d.NewFailures) > 0
}

// String returns a human-readable diff summary.
func (d *Diff) String() string {
	if d.IsEmpty() {
		return "no differences"
	}

	var sb strings.Builder

	if d.TestCountDiff != 0 {
		sb.WriteString(fmt.Sprintf("  test count: %+d\n", d.TestCountDiff))
	}

	writeNames(&sb, "new failures", d.NewFailures)
	writeNames(&sb, "fixed", d.Fixed)
	writeNames(&sb, "missing tests", d.Missing)
	writeNames(&sb, "extra tests", d.Extra)

	return sb.String()
}

func writeNames(sb *strings.Builder, title string, names []string) {
	if len(names) == 0 {
		return
	}

	sb.WriteString(fmt.Sprintf("  %s (%d):\n", title, len(names)))
	for i, n := range names {
		if i == maxListed {
			sb.WriteString(fmt.Sprintf("    ... and %d more\n", len(names)-maxListed))
			break
		}
		sb.WriteString(fmt.Sprintf("    - %s\n", n))
	}
}
