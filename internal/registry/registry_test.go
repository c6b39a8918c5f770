package registry

import (
	"errors"
	"testing"

	"semrun/internal/domain"

	"github.com/stretchr/testify/require"
)

func noop(*domain.Env) {}

func casePaths(root *domain.Group) [][]string {
	var paths [][]string
	root.Walk(func(path []string, _ *domain.Case) {
		paths = append(paths, path)
	})
	return paths
}

func TestRegistry_PreservesDeclarationOrder(t *testing.T) {
	r := New()
	r.DefineGroup("A", func() {
		r.DefineCase("a1", noop)
		r.DefineGroup("B", func() {
			r.DefineCase("b1", noop)
			r.DefineCase("b2", noop)
		})
		r.DefineCase("a2", noop)
	})
	r.DefineGroup("C", func() {
		r.DefineCase("c1", noop)
	})

	root, err := r.Build()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"A", "a1"},
		{"A", "B", "b1"},
		{"A", "B", "b2"},
		{"A", "a2"},
		{"C", "c1"},
	}, casePaths(root))
	require.Equal(t, 5, root.CaseCount())
}

func TestRegistry_GroupNamesMayRepeat(t *testing.T) {
	r := New()
	r.DefineGroup("Same", func() { r.DefineCase("x", noop) })
	r.DefineGroup("Same", func() { r.DefineCase("x", noop) })

	root, err := r.Build()
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
}

func TestRegistry_SameCaseNameInDifferentGroups(t *testing.T) {
	r := New()
	r.DefineGroup("A", func() {
		r.DefineCase("x", noop)
		r.DefineGroup("B", func() { r.DefineCase("x", noop) })
	})
	_, err := r.Build()
	require.NoError(t, err)
}

func TestRegistry_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		register func(r *Registry)
		path     []string
	}{
		{
			name: "duplicate sibling case",
			register: func(r *Registry) {
				r.DefineGroup("G", func() {
					r.DefineCase("dup", noop)
					r.DefineCase("dup", noop)
				})
			},
			path: []string{"G", "dup"},
		},
		{
			name:     "case outside any group",
			register: func(r *Registry) { r.DefineCase("orphan", noop) },
			path:     []string{"orphan"},
		},
		{
			name:     "before each outside any group",
			register: func(r *Registry) { r.BeforeEach(func(*domain.Env) error { return nil }) },
			path:     []string{},
		},
		{
			name:     "after each outside any group",
			register: func(r *Registry) { r.AfterEach(func(*domain.Env) error { return nil }) },
			path:     []string{},
		},
		{
			name:     "empty group name",
			register: func(r *Registry) { r.DefineGroup(" ", func() {}) },
			path:     []string{},
		},
		{
			name: "nil action",
			register: func(r *Registry) {
				r.DefineGroup("G", func() { r.DefineCase("nothing", nil) })
			},
			path: []string{"G", "nothing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New()
			tt.register(r)

			root, err := r.Build()
			require.Nil(t, root)
			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "expected *ConfigError, got %v", err)
			require.Equal(t, tt.path, cfgErr.Path)
		})
	}
}

func TestRegistry_FirstErrorWins(t *testing.T) {
	r := New()
	built := false
	r.DefineCase("orphan", noop)
	r.DefineGroup("Later", func() { built = true })

	_, err := r.Build()
	require.Error(t, err)
	require.Contains(t, err.Error(), "outside any group")
	require.False(t, built, "builders after a configuration error must not run")
}

func TestRegistry_HooksAttachToOpenGroup(t *testing.T) {
	r := New()
	hook := func(*domain.Env) error { return nil }
	r.DefineGroup("Outer", func() {
		r.BeforeEach(hook)
		r.DefineGroup("Inner", func() {
			r.AfterEach(hook)
			r.AfterEach(hook)
			r.DefineCase("c", noop)
		})
	})

	root, err := r.Build()
	require.NoError(t, err)
	outer := root.Children[0].Group
	inner := outer.Children[0].Group
	require.Len(t, outer.BeforeEach, 1)
	require.Empty(t, outer.AfterEach)
	require.Len(t, inner.AfterEach, 2)
}
