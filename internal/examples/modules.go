package examples

import (
	"semrun/internal/assert"
	"semrun/internal/domain"
	"semrun/internal/registry"
)

// coolModule exposes its behaviour only through closures; the state they
// share is unreachable from outside.
type coolModule struct {
	DoSomething func() string
	DoAnother   func() []int
}

func newCoolModule() coolModule {
	something := "cool"
	another := []int{1, 2, 3}

	doSomething := func() string {
		return something
	}
	doAnother := func() []int {
		return another
	}

	return coolModule{
		DoSomething: doSomething,
		DoAnother:   doAnother,
	}
}

type identifier struct {
	Identify func() string
}

func newIdentifier(id string) identifier {
	return identifier{
		Identify: func() string {
			return id
		},
	}
}

func registerModules(r *registry.Registry) {
	r.DefineGroup("Scopes And Closures Module Patterns", func() {
		r.DefineCase("basic module pattern, the revealing module", func(*domain.Env) {
			foo := newCoolModule()
			assert.Equal(foo.DoSomething(), "cool")
			assert.DeepEqual(foo.DoAnother(), []int{1, 2, 3})
		})

		r.DefineCase("return an inner function", func(*domain.Env) {
			makeModule := func() func() string {
				something := "cool"
				doSomething := func() string {
					return something
				}
				return doSomething
			}

			foo := makeModule()
			assert.Equal(foo(), "cool")
		})

		r.DefineCase("module built by an immediately invoked function", func(*domain.Env) {
			foo := func() coolModule {
				something := "cool"
				another := []int{1, 2, 3}
				return coolModule{
					DoSomething: func() string { return something },
					DoAnother:   func() []int { return another },
				}
			}()

			assert.Equal(foo.DoSomething(), "cool")
			assert.DeepEqual(foo.DoAnother(), []int{1, 2, 3})
		})

		r.DefineCase("modules with parameters", func(*domain.Env) {
			foo1 := newIdentifier("foo 1")
			foo2 := newIdentifier("foo 2")

			assert.Equal(foo1.Identify(), "foo 1")
			assert.Equal(foo2.Identify(), "foo 2")
		})

		r.DefineCase("each module instance has its own state", func(*domain.Env) {
			a, b := newCoolModule(), newCoolModule()
			a.DoAnother()[0] = 10

			assert.DeepEqual(a.DoAnother(), []int{10, 2, 3})
			assert.DeepEqual(b.DoAnother(), []int{1, 2, 3})
		})
	})
}
