package domain

// Action is the body of a case. It signals failure by panicking, normally
// through the assert package.
type Action func(env *Env)

// Hook runs before or after every case of the group it is attached to,
// including cases of nested groups.
type Hook func(env *Env) error

// Case is a single named example within a group
type Case struct {
	Name   string
	Action Action
}

// Node is one child of a group: exactly one of Case and Group is set.
type Node struct {
	Case  *Case
	Group *Group
}

// Group is a named, ordered collection of cases and nested groups
type Group struct {
	Name       string
	Children   []Node
	BeforeEach []Hook
	AfterEach  []Hook
}

// CaseCount returns the number of cases in the group and all nested groups.
func (g *Group) CaseCount() int {
	n := 0
	for _, child := range g.Children {
		if child.Case != nil {
			n++
			continue
		}
		n += child.Group.CaseCount()
	}
	return n
}

// Walk visits every case in declaration order. path holds the names of the
// enclosing groups followed by the case name; the root group is included only
// when it has a name.
func (g *Group) Walk(fn func(path []string, c *Case)) {
	var prefix []string
	if g.Name != "" {
		prefix = []string{g.Name}
	}
	g.walk(prefix, fn)
}

func (g *Group) walk(prefix []string, fn func(path []string, c *Case)) {
	for _, child := range g.Children {
		if child.Case != nil {
			fn(JoinPath(prefix, child.Case.Name), child.Case)
			continue
		}
		child.Group.walk(JoinPath(prefix, child.Group.Name), fn)
	}
}

// JoinPath returns a new slice holding prefix followed by name.
func JoinPath(prefix []string, name string) []string {
	path := make([]string, len(prefix), len(prefix)+1)
	copy(path, prefix)
	return append(path, name)
}
