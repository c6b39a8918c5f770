// Package report turns a run Report into the records that are printed and stored.
package report

import (
	"strings"
	"time"

	"semrun/internal/domain"
)

// PathSeparator joins group and case names when a path is shown on one line
const PathSeparator = " > "

// FormatPath renders a case path on one line.
func FormatPath(path []string) string {
	return strings.Join(path, PathSeparator)
}

// Failures extracts a record for every case that did not pass, in run order.
func Failures(r *domain.Report) []domain.CaseFailure {
	var failures []domain.CaseFailure
	for _, res := range r.Results {
		if res.Status == domain.StatusPassed {
			continue
		}
		f := domain.CaseFailure{
			Path:    res.Path,
			Status:  res.Status,
			Message: res.Reason,
		}
		if res.Failure != nil {
			f.Primitive = res.Failure.Primitive
			f.Expected = res.Failure.Expected
			f.Actual = res.Failure.Actual
		}
		failures = append(failures, f)
	}
	return failures
}

// Output builds the stored form of a run.
func Output(r *domain.Report) *domain.RunOutput {
	return &domain.RunOutput{
		Meta: domain.RunMeta{
			Counts:          r.Counts,
			Aborted:         r.Aborted,
			Duration:        r.Duration.String(),
			DurationSeconds: r.Duration.Seconds(),
			Timestamp:       r.StartedAt.Format(time.RFC3339),
		},
		Details: Failures(r),
	}
}
