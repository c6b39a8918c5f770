package execution

import (
	"context"

	"semrun/internal/domain"
)

// Executor runs a group tree and reports the outcome
type Executor interface {
	Run(ctx context.Context, root *domain.Group) *domain.Report
}

// Progress observes a run case by case
type Progress interface {
	Update(completed, passed, failed int)
	Finish()
}
