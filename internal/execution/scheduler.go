package execution

import "semrun/internal/domain"

// Planned is a case together with the hooks that surround it
type Planned struct {
	Path   []string
	Case   *domain.Case
	Before []domain.Hook // Outermost group first
	After  []domain.Hook // Innermost group first
}

// Scheduler turns a group tree into the order cases are executed in
type Scheduler interface {
	Schedule(root *domain.Group) []Planned
}

// DepthFirstScheduler plans cases in declaration order (tree pre-order)
type DepthFirstScheduler struct{}

// NewDepthFirstScheduler creates a new DepthFirstScheduler
func NewDepthFirstScheduler() *DepthFirstScheduler {
	return &DepthFirstScheduler{}
}

// Schedule flattens root without modifying it.
func (s *DepthFirstScheduler) Schedule(root *domain.Group) []Planned {
	if root == nil {
		return nil
	}
	var prefix []string
	if root.Name != "" {
		prefix = []string{root.Name}
	}
	var plan []Planned
	s.schedule(root, prefix, nil, nil, &plan)
	return plan
}

func (s *DepthFirstScheduler) schedule(g *domain.Group, prefix []string, before, after []domain.Hook, plan *[]Planned) {
	before = concat(before, g.BeforeEach)
	after = concat(g.AfterEach, after)

	for _, child := range g.Children {
		if child.Case != nil {
			*plan = append(*plan, Planned{
				Path:   domain.JoinPath(prefix, child.Case.Name),
				Case:   child.Case,
				Before: before,
				After:  after,
			})
			continue
		}
		s.schedule(child.Group, domain.JoinPath(prefix, child.Group.Name), before, after, plan)
	}
}

func concat(a, b []domain.Hook) []domain.Hook {
	out := make([]domain.Hook, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
