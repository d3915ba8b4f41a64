// Package report renders the outcome of a run recorded by a result.Default.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/AdguardTeam/golibs/errors"

	"github.com/specvital/harness/pkg/domain"
	"github.com/specvital/harness/pkg/result"
)

// ErrNoReport is returned when there is no recorded report to render.
const ErrNoReport errors.Error = "no report recorded"

// Document is the JSON representation of a run.
type Document struct {
	Summary result.Summary      `json:"summary"`
	Tests   []domain.TestRecord `json:"tests"`
}

// Report returns the tests of doc as a report.
func (doc *Document) Report() *domain.Report {
	return &domain.Report{Tests: doc.Tests}
}

// WriteJSON writes s and rep as an indented JSON document to w.
func WriteJSON(w io.Writer, s result.Summary, rep *domain.Report) error {
	if rep == nil {
		return ErrNoReport
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(Document{
		Summary: s,
		Tests:   rep.Tests,
	})
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	return nil
}

// WriteText writes one line per recorded test to w, followed by an indented
// line per failed assertion.
func WriteText(w io.Writer, rep *domain.Report) error {
	if rep == nil {
		return ErrNoReport
	}

	for _, t := range rep.Tests {
		_, err := fmt.Fprintf(
			w,
			"%-6s %s (%d/%d functions, %d assertions)\n",
			statusLabel(t.Status),
			t.DisplayName(),
			t.FunctionsRun-t.FunctionsFailed,
			t.FunctionsRun,
			t.AssertionsChecked,
		)
		if err != nil {
			return fmt.Errorf("writing test %d: %w", t.ID, err)
		}

		for _, f := range t.Failures {
			err = writeFailure(w, f)
			if err != nil {
				return fmt.Errorf("writing test %d: %w", t.ID, err)
			}
		}
	}

	return nil
}

func writeFailure(w io.Writer, f domain.Failure) error {
	var err error
	if f.Message == "" {
		_, err = fmt.Fprintf(w, "\t%s:%d\n", f.Location.File, f.Location.Line)
	} else {
		_, err = fmt.Fprintf(w, "\t%s:%d: %s\n", f.Location.File, f.Location.Line, f.Message)
	}

	return err
}

func statusLabel(s domain.TestStatus) string {
	switch s {
	case domain.TestStatusPassed:
		return "PASS"
	case domain.TestStatusFailed:
		return "FAIL"
	default:
		return string(s)
	}
}
