package report

import (
	"testing"
	"time"

	"semrun/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func sampleReport() *domain.Report {
	r := &domain.Report{
		StartedAt: time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Results: []domain.Result{
			{Path: []string{"Arithmetic", "adds"}, Status: domain.StatusPassed},
			{
				Path:    []string{"Arithmetic", "fails on purpose"},
				Status:  domain.StatusFailed,
				Reason:  "Equal: expected 2 to equal 3",
				Failure: &domain.Detail{Primitive: "Equal", Expected: "3", Actual: "2"},
			},
			{Path: []string{"Broken", "nil map"}, Status: domain.StatusErrored, Reason: "panic: assignment to entry in nil map"},
		},
	}
	for _, res := range r.Results {
		r.Counts.Add(res.Status)
	}
	return r
}

func TestFailures(t *testing.T) {
	want := []domain.CaseFailure{
		{
			Path:      []string{"Arithmetic", "fails on purpose"},
			Status:    domain.StatusFailed,
			Message:   "Equal: expected 2 to equal 3",
			Primitive: "Equal",
			Expected:  "3",
			Actual:    "2",
		},
		{
			Path:    []string{"Broken", "nil map"},
			Status:  domain.StatusErrored,
			Message: "panic: assignment to entry in nil map",
		},
	}

	if diff := cmp.Diff(want, Failures(sampleReport())); diff != "" {
		t.Errorf("Failures() mismatch (-want +got):\n%s", diff)
	}
}

func TestOutput(t *testing.T) {
	out := Output(sampleReport())

	wantCounts := domain.Counts{Passed: 1, Failed: 1, Errored: 1, Total: 3}
	if out.Meta.Counts != wantCounts {
		t.Errorf("expected counts %+v, got %+v", wantCounts, out.Meta.Counts)
	}
	if out.Meta.Timestamp != "2026-10-17T09:30:00Z" {
		t.Errorf("unexpected timestamp %s", out.Meta.Timestamp)
	}
	if out.Meta.DurationSeconds != 1.5 {
		t.Errorf("expected 1.5 seconds, got %v", out.Meta.DurationSeconds)
	}
	if len(out.Details) != 2 {
		t.Errorf("expected 2 details, got %d", len(out.Details))
	}
}

func TestFormatPath(t *testing.T) {
	if got := FormatPath([]string{"Arithmetic", "adds"}); got != "Arithmetic > adds" {
		t.Errorf("unexpected path %q", got)
	}
}
