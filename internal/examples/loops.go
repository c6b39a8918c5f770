package examples

import (
	"semrun/internal/assert"
	"semrun/internal/domain"
	"semrun/internal/registry"
)

func registerLoops(r *registry.Registry) {
	r.DefineGroup("Scope And Closures For Loops", func() {
		r.DefineCase("closures defined in a loop are not executed", func(*domain.Env) {
			var funcs []func() int
			var varAry, captureAry []int

			var i int
			for i = 0; i <= 5; i++ {
				varAry = append(varAry, i)
				funcs = append(funcs, func() int {
					captureAry = append(captureAry, i)
					return i
				})
			}

			assert.Len(funcs, 6)
			assert.DeepEqual(varAry, []int{0, 1, 2, 3, 4, 5})
			assert.DeepEqual(captureAry, []int{})
		})

		r.DefineCase("closures over one shared variable see its final value", func(*domain.Env) {
			var funcs []func() int
			var varAry, captureAry, ary []int

			// i is declared once, outside the loop, so every closure shares it
			var i int
			for i = 0; i <= 5; i++ {
				varAry = append(varAry, i)
				funcs = append(funcs, func() int {
					captureAry = append(captureAry, i)
					return i
				})
				assert.Equal(funcs[i](), i)
			}

			for j := 0; j <= 5; j++ {
				ary = append(ary, funcs[j]())
			}

			assert.DeepEqual(ary, []int{6, 6, 6, 6, 6, 6})
			assert.DeepEqual(varAry, []int{0, 1, 2, 3, 4, 5})
			assert.DeepEqual(captureAry, []int{0, 1, 2, 3, 4, 5, 6, 6, 6, 6, 6, 6})
		})

		r.DefineCase("one way to fix the shared variable", func(*domain.Env) {
			bar := func(n int) int {
				return n
			}
			funcs := make([]int, 6)
			otherFuncs := make([]int, 6)

			var i int
			for i = 0; i <= 5; i++ {
				// the argument is evaluated now, so each call sees this iteration's i
				funcs[i] = func(j int) int {
					return j
				}(i)
				otherFuncs[i] = bar(i)
			}

			for j := 0; j <= 5; j++ {
				assert.Equal(funcs[j], j)
				assert.Equal(otherFuncs[j], j)
			}
		})

		r.DefineCase("copy the variable inside the loop body", func(*domain.Env) {
			funcs := make([]func() int, 6)

			var i int
			for i = 0; i <= 5; i++ {
				j := i
				funcs[i] = func() int {
					return j
				}
			}

			for j := 0; j <= 5; j++ {
				assert.Equal(funcs[j](), j)
			}
		})

		r.DefineCase("loop variables are per iteration", func(*domain.Env) {
			funcs := make([]func() int, 6)
			for i := 0; i <= 5; i++ {
				funcs[i] = func() int {
					return i
				}
			}

			for j := 0; j <= 5; j++ {
				assert.Equal(funcs[j](), j)
			}
		})

		r.DefineCase("range variables are per iteration", func(*domain.Env) {
			var funcs []func() string
			for _, word := range []string{"zero", "one", "two"} {
				funcs = append(funcs, func() string { return word })
			}

			var got []string
			for _, fn := range funcs {
				got = append(got, fn())
			}
			assert.DeepEqual(got, []string{"zero", "one", "two"})
		})
	})
}
