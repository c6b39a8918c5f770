package discovery

import (
	"path/filepath"
	"strings"

	"semrun/internal/domain"
	"semrun/internal/report"
)

// Filter selects cases by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterTree returns a copy of root holding only the cases whose full path,
// joined with " > ", matches pattern. Groups left without cases are dropped;
// hooks of the kept groups are carried over. root itself is not modified.
func (f *Filter) FilterTree(root *domain.Group, pattern string) *domain.Group {
	if pattern == "" || root == nil {
		return root
	}
	var prefix []string
	if root.Name != "" {
		prefix = []string{root.Name}
	}
	kept := f.filterGroup(root, prefix, pattern)
	if kept == nil {
		return &domain.Group{Name: root.Name}
	}
	return kept
}

func (f *Filter) filterGroup(g *domain.Group, prefix []string, pattern string) *domain.Group {
	out := &domain.Group{
		Name:       g.Name,
		BeforeEach: g.BeforeEach,
		AfterEach:  g.AfterEach,
	}
	for _, child := range g.Children {
		if child.Case != nil {
			if Match(report.FormatPath(domain.JoinPath(prefix, child.Case.Name)), pattern) {
				out.Children = append(out.Children, child)
			}
			continue
		}
		if sub := f.filterGroup(child.Group, domain.JoinPath(prefix, child.Group.Name), pattern); sub != nil {
			out.Children = append(out.Children, domain.Node{Group: sub})
		}
	}
	if len(out.Children) == 0 {
		return nil
	}
	return out
}

// Match reports whether name matches pattern using wildcard matching.
// Supports patterns like "*Closures*" or "Arithmetic > *"; a pattern
// without wildcards matches as a substring.
func Match(name, pattern string) bool {
	if pattern == "" {
		return true
	}

	// Try to match using filepath.Match (supports * and ? wildcards)
	matched, err := filepath.Match(pattern, name)
	if err == nil && matched {
		return true
	}

	// If pattern contains wildcards but filepath.Match didn't match,
	// try a more flexible match: every non-empty part must appear in order
	if strings.Contains(pattern, "*") {
		rest := name
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			idx := strings.Index(rest, part)
			if idx < 0 {
				return false
			}
			rest = rest[idx+len(part):]
		}
		return hasNonEmptyPart
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
