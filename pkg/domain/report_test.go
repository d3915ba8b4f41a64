package domain

import "testing"

func TestReport_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		report       Report
		wantTests    int
		wantFailed   int
		wantFailures int
	}{
		{
			name:   "should return zero for empty report",
			report: Report{},
		},
		{
			name: "should count passed tests only",
			report: Report{
				Tests: []TestRecord{
					{ID: 1, Status: TestStatusPassed},
					{ID: 2, Status: TestStatusPassed},
				},
			},
			wantTests: 2,
		},
		{
			name: "should count failed tests once regardless of failures",
			report: Report{
				Tests: []TestRecord{
					{
						ID:     1,
						Status: TestStatusFailed,
						Failures: []Failure{
							{Location: Location{File: "a.go", Line: 1}},
							{Location: Location{File: "a.go", Line: 2}, Message: "x"},
						},
					},
					{ID: 2, Status: TestStatusPassed},
				},
			},
			wantTests:    2,
			wantFailed:   1,
			wantFailures: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.report.CountTests(); got != tt.wantTests {
				t.Errorf("CountTests() = %d, want %d", got, tt.wantTests)
			}
			if got := tt.report.CountFailed(); got != tt.wantFailed {
				t.Errorf("CountFailed() = %d, want %d", got, tt.wantFailed)
			}
			if got := tt.report.CountFailures(); got != tt.wantFailures {
				t.Errorf("CountFailures() = %d, want %d", got, tt.wantFailures)
			}
		})
	}
}

func TestTestRecord_DisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record TestRecord
		want   string
	}{
		{name: "should prefer name", record: TestRecord{ID: 3, Name: "MyTest1"}, want: "MyTest1"},
		{name: "should fall back to id", record: TestRecord{ID: 3}, want: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.record.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusOf(t *testing.T) {
	t.Parallel()

	if got := StatusOf(0); got != TestStatusPassed {
		t.Errorf("StatusOf(0) = %q, want %q", got, TestStatusPassed)
	}
	if got := StatusOf(2); got != TestStatusFailed {
		t.Errorf("StatusOf(2) = %q, want %q", got, TestStatusFailed)
	}
}
