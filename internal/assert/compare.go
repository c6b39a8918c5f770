package assert

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// deepOptions make nil and empty containers equal and let unexported struct
// fields take part in the comparison.
var deepOptions = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal asserts that actual and expected have the same type and compare equal
// with ==. It is meant for primitive values; composite values belong to DeepEqual.
func Equal(actual, expected any) {
	eq, err := strictEqual(actual, expected)
	if err != nil {
		raise("Equal", render(expected), render(actual), err.Error())
	}
	if !eq {
		raise("Equal", render(expected), render(actual),
			fmt.Sprintf("expected %s to equal %s", render(actual), render(expected)))
	}
}

// NotEqual asserts that actual and expected differ under the rules of Equal.
func NotEqual(actual, expected any) {
	eq, err := strictEqual(actual, expected)
	if err != nil {
		raise("NotEqual", render(expected), render(actual), err.Error())
	}
	if eq {
		raise("NotEqual", "not "+render(expected), render(actual),
			fmt.Sprintf("expected %s to not equal %s", render(actual), render(expected)))
	}
}

// DeepEqual asserts structural equality: same length and every corresponding
// element or field recursively equal, in order for slices and arrays.
func DeepEqual(actual, expected any) {
	if cmp.Equal(actual, expected, deepOptions...) {
		return
	}
	diff := cmp.Diff(expected, actual, deepOptions...)
	raise("DeepEqual", render(expected), render(actual),
		fmt.Sprintf("expected %s to deeply equal %s (-expected +actual):\n%s", render(actual), render(expected), diff))
}

// Undefined asserts that actual is nil: an untyped nil or a nil pointer, map,
// slice, func, channel or interface.
func Undefined(actual any) {
	if isNil(actual) {
		return
	}
	raise("Undefined", "nil", render(actual), fmt.Sprintf("expected %s to be nil", render(actual)))
}

// True asserts that cond holds.
func True(cond bool) {
	if !cond {
		raise("True", "true", "false", "expected condition to be true")
	}
}

// Len asserts that a slice, array, map, string or channel has n elements.
func Len(actual any, n int) {
	v := reflect.ValueOf(actual)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
	default:
		raise("Len", fmt.Sprintf("length %d", n), render(actual), fmt.Sprintf("%s has no length", render(actual)))
	}
	if v.Len() != n {
		raise("Len", fmt.Sprintf("length %d", n), fmt.Sprintf("length %d", v.Len()),
			fmt.Sprintf("expected %s to have length %d, got %d", render(actual), n, v.Len()))
	}
}

func strictEqual(actual, expected any) (eq bool, err error) {
	if actual == nil || expected == nil {
		return actual == nil && expected == nil, nil
	}
	ta, te := reflect.TypeOf(actual), reflect.TypeOf(expected)
	if ta != te {
		return false, nil
	}
	if !ta.Comparable() {
		return false, fmt.Errorf("values of type %s are not comparable with ==, use DeepEqual", ta)
	}
	defer func() {
		// Structs with interface fields may still hold incomparable values.
		if r := recover(); r != nil {
			eq, err = false, fmt.Errorf("comparing %s: %v", ta, r)
		}
	}()
	return actual == expected, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
