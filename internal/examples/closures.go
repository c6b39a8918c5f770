package examples

import (
	"semrun/internal/assert"
	"semrun/internal/domain"
	"semrun/internal/registry"
)

func registerClosures(r *registry.Registry) {
	r.DefineGroup("Basic Scope And Closures", func() {
		r.DefineCase("simple example of a closure", func(*domain.Env) {
			foo := func() func() int {
				a := 2
				bar := func() int {
					return a
				}
				return bar
			}

			// baz still reaches a after foo has returned
			baz := foo()
			assert.Equal(baz(), 2)
		})

		r.DefineCase("another example of the use of closure", func(*domain.Env) {
			bar := func(fn func() int) int {
				return fn()
			}
			foo := func() int {
				a := 2
				baz := func() int {
					return a
				}
				return bar(baz)
			}

			assert.Equal(foo(), 2)
		})

		r.DefineCase("assign inner scope to an outer variable", func(*domain.Env) {
			var fn func() int
			foo := func() {
				a := 2
				fn = func() int {
					return a
				}
			}
			bar := func() int {
				return fn()
			}

			foo()
			assert.Equal(bar(), 2)
		})

		r.DefineCase("each closure keeps its own state", func(*domain.Env) {
			adder := func() func(int) int {
				sum := 0
				return func(x int) int {
					sum += x
					return sum
				}
			}

			pos, doub := adder(), adder()
			for i := 0; i < 10; i++ {
				pos(i)
				doub(2 * i)
			}
			assert.Equal(pos(0), 45)
			assert.Equal(doub(0), 90)
		})

		r.DefineCase("closures share the variable, not its value", func(*domain.Env) {
			x := 1
			read := func() int { return x }
			x = 5
			assert.Equal(read(), 5)
		})
	})
}
