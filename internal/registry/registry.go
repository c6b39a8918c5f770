// Package registry collects groups and cases in declaration order.
package registry

import (
	"fmt"
	"strings"

	"semrun/internal/domain"
)

// ConfigError reports a malformed registration. It is detected while the
// registration call is made and aborts the whole run before any case executes.
type ConfigError struct {
	Path   []string // Open groups at the time of the call, plus the offending name if any
	Reason string
}

func (e *ConfigError) Error() string {
	if len(e.Path) == 0 {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error at %s: %s", strings.Join(e.Path, " > "), e.Reason)
}

// Registry builds a group tree from nested DefineGroup / DefineCase calls
type Registry struct {
	root  *domain.Group
	open  []*domain.Group
	names map[*domain.Group]map[string]bool
	err   error
}

// New creates an empty Registry. Top-level groups become children of an
// unnamed root group.
func New() *Registry {
	return &Registry{
		root:  &domain.Group{},
		names: make(map[*domain.Group]map[string]bool),
	}
}

// DefineGroup registers a group under the currently open group (or the root)
// and calls builder immediately; registrations made by builder land in the
// new group.
func (r *Registry) DefineGroup(name string, builder func()) {
	if r.err != nil {
		return
	}
	if strings.TrimSpace(name) == "" {
		r.fail("", "group name must not be empty")
		return
	}

	group := &domain.Group{Name: name}
	parent := r.current()
	parent.Children = append(parent.Children, domain.Node{Group: group})

	r.open = append(r.open, group)
	defer func() { r.open = r.open[:len(r.open)-1] }()
	if builder != nil {
		builder()
	}
}

// DefineCase appends a case to the currently open group.
func (r *Registry) DefineCase(name string, action domain.Action) {
	if r.err != nil {
		return
	}
	if len(r.open) == 0 {
		r.fail(name, "case defined outside any group")
		return
	}
	if strings.TrimSpace(name) == "" {
		r.fail("", "case name must not be empty")
		return
	}
	if action == nil {
		r.fail(name, "case has no action")
		return
	}

	group := r.current()
	seen := r.names[group]
	if seen == nil {
		seen = make(map[string]bool)
		r.names[group] = seen
	}
	if seen[name] {
		r.fail(name, fmt.Sprintf("duplicate case name %q", name))
		return
	}
	seen[name] = true
	group.Children = append(group.Children, domain.Node{Case: &domain.Case{Name: name, Action: action}})
}

// BeforeEach attaches a setup hook to the currently open group.
func (r *Registry) BeforeEach(hook domain.Hook) {
	if r.err != nil {
		return
	}
	if len(r.open) == 0 {
		r.fail("", "BeforeEach outside any group")
		return
	}
	if hook == nil {
		r.fail("", "BeforeEach hook is nil")
		return
	}
	g := r.current()
	g.BeforeEach = append(g.BeforeEach, hook)
}

// AfterEach attaches a teardown hook to the currently open group.
func (r *Registry) AfterEach(hook domain.Hook) {
	if r.err != nil {
		return
	}
	if len(r.open) == 0 {
		r.fail("", "AfterEach outside any group")
		return
	}
	if hook == nil {
		r.fail("", "AfterEach hook is nil")
		return
	}
	g := r.current()
	g.AfterEach = append(g.AfterEach, hook)
}

// Err returns the first configuration error, if any.
func (r *Registry) Err() error {
	return r.err
}

// Build returns the root of the registered tree, or the first configuration
// error encountered during registration.
func (r *Registry) Build() (*domain.Group, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.root, nil
}

func (r *Registry) current() *domain.Group {
	if len(r.open) == 0 {
		return r.root
	}
	return r.open[len(r.open)-1]
}

func (r *Registry) fail(name, reason string) {
	path := make([]string, 0, len(r.open)+1)
	for _, g := range r.open {
		path = append(path, g.Name)
	}
	if name != "" {
		path = append(path, name)
	}
	r.err = &ConfigError{Path: path, Reason: reason}
}
