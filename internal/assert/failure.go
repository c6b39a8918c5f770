// Package assert provides the comparison primitives used inside case actions.
//
// Every primitive checks its condition immediately and, on mismatch, panics
// with a *Failure. The runner recovers the panic at the case boundary and
// records the case as failed; any other panic value is recorded as errored.
package assert

import "fmt"

// Failure is raised by a primitive whose expectation did not hold
type Failure struct {
	Primitive string // Name of the primitive, e.g. "Equal"
	Expected  string // Rendering of the expected value or criterion
	Actual    string // Rendering of the observed value
	Message   string // Human-readable summary holding both renderings
}

// Error implements error so a Failure can travel through error-returning code.
func (f *Failure) Error() string {
	return f.Message
}

// Fail raises a failure with a free-form message.
func Fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	panic(&Failure{Primitive: "Fail", Message: msg})
}

func raise(primitive, expected, actual, message string) {
	panic(&Failure{
		Primitive: primitive,
		Expected:  expected,
		Actual:    actual,
		Message:   primitive + ": " + message,
	})
}

// render formats a value for failure messages: Go syntax, so strings are
// quoted and composite values show their type.
func render(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%#v", v)
}
