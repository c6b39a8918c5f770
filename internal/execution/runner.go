package execution

import (
	"context"
	"errors"
	"fmt"
	"time"

	"semrun/internal/assert"
	"semrun/internal/domain"
)

// ErrTimeout is the cause recorded for a case whose action outlived the case timeout.
var ErrTimeout = errors.New("case timed out")

// Options tune a Runner
type Options struct {
	// CaseTimeout bounds the action of each case. Zero waits indefinitely.
	// A timed-out action is abandoned on its own goroutine.
	CaseTimeout time.Duration
	// FailFast stops the run after the first case that does not pass.
	FailFast bool
}

// Runner executes cases strictly one after another in declaration order
type Runner struct {
	opts      Options
	scheduler Scheduler
	progress  Progress
}

var _ Executor = (*Runner)(nil)

// NewRunner creates a new Runner
func NewRunner(opts Options, scheduler Scheduler) *Runner {
	if scheduler == nil {
		scheduler = NewDepthFirstScheduler()
	}
	return &Runner{opts: opts, scheduler: scheduler}
}

// SetProgress sets the progress observer for the runner
func (r *Runner) SetProgress(progress Progress) {
	r.progress = progress
}

// Run executes every case under root. Cancelling ctx stops the run before the
// next case starts; the case in flight always completes, teardown included.
func (r *Runner) Run(ctx context.Context, root *domain.Group) *domain.Report {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	report := &domain.Report{StartedAt: time.Now()}
	plan := r.scheduler.Schedule(root)
	report.Results = make([]domain.Result, 0, len(plan))

	for _, p := range plan {
		if ctx.Err() != nil {
			report.Aborted = true
			break
		}

		result := r.runCase(p)
		report.Results = append(report.Results, result)
		report.Counts.Add(result.Status)

		if r.progress != nil {
			c := report.Counts
			r.progress.Update(c.Total, c.Passed, c.Failed+c.Errored)
		}
		if r.opts.FailFast && result.Status != domain.StatusPassed {
			cancel()
		}
	}

	if r.progress != nil {
		r.progress.Finish()
	}
	report.Duration = time.Since(report.StartedAt)
	return report
}

// outcome is the classified end of one guarded step
type outcome struct {
	status domain.Status
	reason string
	detail *domain.Detail
}

var passed = outcome{status: domain.StatusPassed}

func (r *Runner) runCase(p Planned) domain.Result {
	start := time.Now()
	env := domain.NewEnv()

	o := r.setupAndRun(p, env)

	// Teardown runs whatever happened above.
	for _, hook := range p.After {
		after := guard(func() error { return hook(env) })
		if after.status != domain.StatusPassed && o.status == domain.StatusPassed {
			o = outcome{status: domain.StatusErrored, reason: "after each hook: " + after.reason}
		}
	}

	return domain.Result{
		Path:     p.Path,
		Status:   o.status,
		Reason:   o.reason,
		Failure:  o.detail,
		Duration: time.Since(start),
	}
}

func (r *Runner) setupAndRun(p Planned, env *domain.Env) outcome {
	for _, hook := range p.Before {
		if o := guard(func() error { return hook(env) }); o.status != domain.StatusPassed {
			return outcome{status: domain.StatusErrored, reason: "before each hook: " + o.reason}
		}
	}
	return r.runAction(p.Case.Action, env)
}

func (r *Runner) runAction(action domain.Action, env *domain.Env) outcome {
	body := func() error {
		action(env)
		return nil
	}
	if r.opts.CaseTimeout <= 0 {
		return guard(body)
	}

	done := make(chan outcome, 1)
	go func() { done <- guard(body) }()

	timer := time.NewTimer(r.opts.CaseTimeout)
	defer timer.Stop()
	select {
	case o := <-done:
		return o
	case <-timer.C:
		return outcome{
			status: domain.StatusErrored,
			reason: fmt.Sprintf("%v after %s", ErrTimeout, r.opts.CaseTimeout),
		}
	}
}

// guard runs fn and classifies how it ended: an *assert.Failure panic is a
// failure, any other panic or a returned error is a fault.
func guard(fn func() error) (o outcome) {
	defer func() {
		if v := recover(); v != nil {
			o = classify(v)
		}
	}()
	if err := fn(); err != nil {
		return outcome{status: domain.StatusErrored, reason: err.Error()}
	}
	return passed
}

func classify(v any) outcome {
	if err, ok := v.(error); ok {
		var f *assert.Failure
		if errors.As(err, &f) {
			return outcome{
				status: domain.StatusFailed,
				reason: f.Message,
				detail: &domain.Detail{Primitive: f.Primitive, Expected: f.Expected, Actual: f.Actual},
			}
		}
	}
	return outcome{status: domain.StatusErrored, reason: fmt.Sprintf("panic: %v", v)}
}
