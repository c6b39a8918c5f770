package discovery

import (
	"testing"

	"semrun/internal/domain"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		caseName string
		pattern  string
		expected bool
	}{
		{
			name:     "empty pattern matches everything",
			caseName: "Arithmetic > adds",
			pattern:  "",
			expected: true,
		},
		{
			name:     "wildcard pattern matches suffix",
			caseName: "Arithmetic > adds",
			pattern:  "*adds",
			expected: true,
		},
		{
			name:     "wildcard pattern matches substring",
			caseName: "Scope And Closures For Loops > reduced per-iteration loop variable",
			pattern:  "*Loops*",
			expected: true,
		},
		{
			name:     "simple contains match",
			caseName: "Arithmetic > adds",
			pattern:  "Arith",
			expected: true,
		},
		{
			name:     "no match",
			caseName: "Arithmetic > adds",
			pattern:  "*Receiver*",
			expected: false,
		},
		{
			name:     "parts must appear in order",
			caseName: "Arithmetic > adds",
			pattern:  "*adds*Arithmetic*",
			expected: false,
		},
		{
			name:     "question mark is not a substring match",
			caseName: "Arithmetic > adds",
			pattern:  "add?",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(tt.caseName, tt.pattern); got != tt.expected {
				t.Errorf("Match(%q, %q) = %v, expected %v", tt.caseName, tt.pattern, got, tt.expected)
			}
		})
	}
}

func sampleTree() *domain.Group {
	noop := func(*domain.Env) {}
	hook := func(*domain.Env) error { return nil }
	return &domain.Group{Children: []domain.Node{
		{Group: &domain.Group{
			Name:       "Arithmetic",
			BeforeEach: []domain.Hook{hook},
			Children: []domain.Node{
				{Case: &domain.Case{Name: "adds", Action: noop}},
				{Case: &domain.Case{Name: "fails on purpose", Action: noop}},
				{Group: &domain.Group{Name: "Nested", Children: []domain.Node{
					{Case: &domain.Case{Name: "adds again", Action: noop}},
				}}},
			},
		}},
		{Group: &domain.Group{
			Name: "Closures",
			Children: []domain.Node{
				{Case: &domain.Case{Name: "captures", Action: noop}},
			},
		}},
	}}
}

func TestFilter_FilterTree(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{name: "empty pattern keeps all", pattern: "", expected: 4},
		{name: "group prefix", pattern: "Arithmetic > *", expected: 3},
		{name: "case substring", pattern: "adds", expected: 2},
		{name: "nested path", pattern: "*Nested*", expected: 1},
		{name: "no matches", pattern: "*NonExistent*", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterTree(sampleTree(), tt.pattern)
			if got := result.CaseCount(); got != tt.expected {
				t.Errorf("expected %d cases, got %d", tt.expected, got)
			}
		})
	}
}

func TestFilter_FilterTree_KeepsHooksAndOriginal(t *testing.T) {
	root := sampleTree()
	result := NewFilter().FilterTree(root, "*fails*")

	if len(result.Children) != 1 {
		t.Fatalf("expected 1 group, got %d", len(result.Children))
	}
	kept := result.Children[0].Group
	if len(kept.BeforeEach) != 1 {
		t.Errorf("expected hooks to be carried over, got %d", len(kept.BeforeEach))
	}
	if root.CaseCount() != 4 {
		t.Errorf("original tree was modified: %d cases", root.CaseCount())
	}
}
