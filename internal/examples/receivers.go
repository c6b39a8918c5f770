package examples

import (
	"fmt"
	"strings"

	"semrun/internal/assert"
	"semrun/internal/domain"
	"semrun/internal/registry"
)

const fixtureKey = "fixture"

type person struct {
	name string
}

func (p person) identify() string {
	return strings.ToUpper(p.name)
}

func (p person) speak() string {
	return "Hello I'm " + p.identify()
}

// counter has a value-receiver and a pointer-receiver method with the same body.
type counter struct {
	count int
}

func (c counter) callOnCopy(num int) string {
	c.count++
	return fmt.Sprintf("foo1: %d", num)
}

func (c *counter) call(num int) string {
	c.count++
	return fmt.Sprintf("foo1: %d", num)
}

type tracker struct {
	count int
}

type object struct {
	a int
}

func (o object) value() int {
	return o.a
}

func (o *object) pointerValue() int {
	return o.a
}

func (o *object) plus(something int) int {
	return o.a + something
}

// lookup tolerates a nil receiver.
func (o *object) lookup() *int {
	if o == nil {
		return nil
	}
	return &o.a
}

// bind fixes the receiver of a method expression, giving a plain function.
func bind[T, A, R any](fn func(T, A) R, recv T) func(A) R {
	return func(arg A) R {
		return fn(recv, arg)
	}
}

type basicFixture struct {
	me, you person
	ary     []string
	data    *tracker
	foo1    *counter
	foo2    func(int) string
	foo3    func(int) string
	calls3  int
}

func newBasicFixture() *basicFixture {
	fx := &basicFixture{
		me:   person{name: "kyle"},
		you:  person{name: "reader"},
		data: &tracker{},
		foo1: &counter{},
	}
	fx.foo2 = func(num int) string {
		fx.data.count++
		return fmt.Sprintf("foo2: %d", num)
	}
	var foo3 func(int) string
	foo3 = func(num int) string {
		fx.calls3++
		if num < 0 {
			return foo3(-num)
		}
		return fmt.Sprintf("foo3: %d", num)
	}
	fx.foo3 = foo3
	return fx
}

type pairFixture struct {
	obj1, obj2 *object
}

func setFixture[T any](build func() T) domain.Hook {
	return func(env *domain.Env) error {
		env.Set(fixtureKey, build())
		return nil
	}
}

func fixture[T any](env *domain.Env) T {
	return domain.Value[T](env, fixtureKey)
}

func registerReceivers(r *registry.Registry) {
	r.DefineGroup("Receiver Binding", func() {
		r.DefineGroup("Basic Receiver Examples", func() {
			r.BeforeEach(setFixture(newBasicFixture))

			r.DefineCase("call identify", func(env *domain.Env) {
				fx := fixture[*basicFixture](env)
				assert.Equal(fx.me.identify(), "KYLE")
				assert.Equal(person.identify(fx.you), "READER")
			})

			r.DefineCase("call speak", func(env *domain.Env) {
				fx := fixture[*basicFixture](env)
				assert.Equal(fx.me.speak(), "Hello I'm KYLE")
				assert.Equal(person.speak(fx.you), "Hello I'm READER")
			})

			r.DefineCase("a value receiver is a copy of the caller", func(env *domain.Env) {
				fx := fixture[*basicFixture](env)
				for i := 0; i < 10; i++ {
					if i > 5 {
						fx.ary = append(fx.ary, fx.foo1.callOnCopy(i))
					}
				}
				assert.DeepEqual(fx.ary, []string{"foo1: 6", "foo1: 7", "foo1: 8", "foo1: 9"})
				assert.Equal(fx.foo1.count, 0)
			})

			r.DefineCase("an outside tracker is a brittle workaround", func(env *domain.Env) {
				fx := fixture[*basicFixture](env)
				for i := 0; i < 10; i++ {
					if i > 5 {
						fx.ary = append(fx.ary, fx.foo2(i))
					}
				}
				assert.DeepEqual(fx.ary, []string{"foo2: 6", "foo2: 7", "foo2: 8", "foo2: 9"})
				assert.Equal(fx.data.count, 4)
			})

			r.DefineCase("a function literal can refer to itself through its variable", func(env *domain.Env) {
				fx := fixture[*basicFixture](env)
				for i := 0; i < 10; i++ {
					if i > 5 {
						fx.ary = append(fx.ary, fx.foo3(-i))
					}
				}
				assert.DeepEqual(fx.ary, []string{"foo3: 6", "foo3: 7", "foo3: 8", "foo3: 9"})
				assert.Equal(fx.calls3, 8)
			})

			r.DefineCase("a pointer receiver updates the caller", func(env *domain.Env) {
				fx := fixture[*basicFixture](env)
				for i := 0; i < 10; i++ {
					if i > 5 {
						fx.ary = append(fx.ary, fx.foo1.call(i))
					}
				}
				assert.DeepEqual(fx.ary, []string{"foo1: 6", "foo1: 7", "foo1: 8", "foo1: 9"})
				assert.Equal(fx.foo1.count, 4)
			})
		})

		r.DefineGroup("Nil Receivers", func() {
			r.BeforeEach(setFixture(func() *object { return nil }))

			r.DefineCase("a method may accept a nil receiver", func(env *domain.Env) {
				obj := fixture[*object](env)
				assert.Undefined(obj.lookup())
			})

			r.DefineCase("dereferencing a nil receiver panics", func(env *domain.Env) {
				obj := fixture[*object](env)
				assert.Throws(func() { obj.pointerValue() }, "nil pointer dereference")
			})
		})

		r.DefineGroup("Method Values", func() {
			r.BeforeEach(setFixture(func() *object { return &object{a: 2} }))

			r.DefineCase("the receiver is bound when the method value is evaluated", func(env *domain.Env) {
				obj := fixture[*object](env)
				foo := obj.pointerValue
				assert.Equal(foo(), 2)
			})

			r.DefineCase("a value receiver is copied into the method value", func(env *domain.Env) {
				obj := fixture[*object](env)
				bar := obj.value
				obj.a = 3
				assert.Equal(bar(), 2)
				assert.Equal(obj.value(), 3)
			})

			r.DefineCase("a pointer receiver is shared with the method value", func(env *domain.Env) {
				obj := fixture[*object](env)
				bar := obj.pointerValue
				obj.a = 3
				assert.Equal(bar(), 3)
			})
		})

		r.DefineGroup("Explicit And Hard Binding", func() {
			r.BeforeEach(setFixture(func() *object { return &object{a: 2} }))

			r.DefineCase("a method expression takes the receiver as its first argument", func(env *domain.Env) {
				obj := fixture[*object](env)
				assert.Equal((*object).pointerValue(obj), 2)
			})

			r.DefineCase("hard binding wraps the method expression in a closure", func(env *domain.Env) {
				obj := fixture[*object](env)
				bar := func(something int) int {
					return (*object).plus(obj, something)
				}
				assert.Equal(bar(3), 5)
			})

			r.DefineCase("programmatically invoke a hard binding", func(env *domain.Env) {
				obj := fixture[*object](env)
				bar := bind((*object).plus, obj)
				assert.Equal(bar(3), 5)
			})

			r.DefineCase("the method value is the built-in bind", func(env *domain.Env) {
				obj := fixture[*object](env)
				bar := obj.plus
				assert.Equal(bar(3), 5)
			})
		})

		r.DefineGroup("Constructor Functions", func() {
			r.DefineCase("produces a new value with its fields set", func(*domain.Env) {
				newObject := func(a int) *object {
					return &object{a: a}
				}
				foo := newObject(3)
				assert.Equal(foo.a, 3)
				assert.NotEqual(foo, newObject(3))
			})
		})

		r.DefineGroup("Order Of Precedence For Receiver Binding", func() {
			r.BeforeEach(setFixture(func() *pairFixture {
				return &pairFixture{obj1: &object{a: 2}, obj2: &object{a: 3}}
			}))

			r.DefineCase("explicit over implicit", func(env *domain.Env) {
				fx := fixture[*pairFixture](env)
				assert.Equal(fx.obj1.pointerValue(), 2)
				assert.Equal(fx.obj2.pointerValue(), 3)
				assert.Equal((*object).pointerValue(fx.obj2), 3)
				assert.Equal((*object).pointerValue(fx.obj1), 2)
			})
		})
	})
}
