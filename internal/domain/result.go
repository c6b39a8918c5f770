package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Status is the outcome of a case
type Status int

const (
	// StatusPassed means the action and every hook completed without a fault.
	StatusPassed Status = iota
	// StatusFailed means an assertion in the action did not hold.
	StatusFailed
	// StatusErrored means the action or a hook faulted with something other
	// than an assertion failure, or timed out.
	StatusErrored
)

// String returns the lowercase label of the status.
func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the status as its label
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status label
func (s *Status) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch label {
	case "passed":
		*s = StatusPassed
	case "failed":
		*s = StatusFailed
	case "errored":
		*s = StatusErrored
	default:
		return fmt.Errorf("unknown status %q", label)
	}
	return nil
}

// Result is the outcome of executing one case
type Result struct {
	Path     []string      // Enclosing group names followed by the case name
	Status   Status        // Terminal outcome
	Reason   string        // Failure message or fault description, empty when passed
	Failure  *Detail       // Structured assertion data, set only for failed cases
	Duration time.Duration // Time spent in hooks and action
}

// Detail is the structured part of an assertion failure
type Detail struct {
	Primitive string `json:"primitive"`
	Expected  string `json:"expected"`
	Actual    string `json:"actual"`
}

// Counts aggregates results by status
type Counts struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Errored int `json:"errored"`
	Total   int `json:"total"`
}

// Add records one result in the counts.
func (c *Counts) Add(s Status) {
	c.Total++
	switch s {
	case StatusPassed:
		c.Passed++
	case StatusFailed:
		c.Failed++
	case StatusErrored:
		c.Errored++
	}
}

// Report is the outcome of running a group tree once
type Report struct {
	Results   []Result
	Counts    Counts
	Aborted   bool // The run was stopped before every case executed
	StartedAt time.Time
	Duration  time.Duration
}

// OK reports whether every executed case passed and the run was not aborted.
func (r *Report) OK() bool {
	return !r.Aborted && r.Counts.Passed == r.Counts.Total
}

// RunMeta contains metadata about a stored run
type RunMeta struct {
	Counts          Counts  `json:"counts"`
	Aborted         bool    `json:"aborted"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete stored structure of a run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []CaseFailure `json:"details"`
}
