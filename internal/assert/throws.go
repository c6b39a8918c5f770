package assert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dlclark/regexp2"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Throws runs action, recovers the one panic it raises and checks it against
// expected. It returns the recovered value.
//
// expected may be:
//   - nil: any panic matches
//   - string: the fault description contains it
//   - *regexp2.Regexp: the fault description matches it
//   - a pointer to an error variable (as for errors.As): the fault is an error
//     assignable to it; the variable is filled in
//   - an error: the fault is an error and errors.Is(fault, expected) holds
//
// If action returns normally, or the fault does not match, Throws raises a Failure.
func Throws(action func(), expected any) any {
	fault, panicked := capture(action)
	want := describeCriterion(expected)
	if !panicked {
		raise("Throws", want, "no panic", fmt.Sprintf("expected action to panic with %s, but it returned normally", want))
	}
	desc := describeFault(fault)
	ok, err := matchFault(fault, desc, expected)
	if err != nil {
		raise("Throws", want, desc, err.Error())
	}
	if !ok {
		raise("Throws", want, desc, fmt.Sprintf("expected action to panic with %s, but it panicked with %q", want, desc))
	}
	return fault
}

func capture(action func()) (fault any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			fault, panicked = r, true
		}
	}()
	action()
	return nil, false
}

func matchFault(fault any, desc string, expected any) (bool, error) {
	switch want := expected.(type) {
	case nil:
		return true, nil
	case string:
		return strings.Contains(desc, want), nil
	case *regexp2.Regexp:
		if want == nil {
			return false, errors.New("unsupported criterion: nil *regexp2.Regexp")
		}
		return want.MatchString(desc)
	}

	faultErr, isErr := fault.(error)
	if target, ok := asTarget(expected); ok {
		return isErr && errors.As(faultErr, target), nil
	}
	if wantErr, ok := expected.(error); ok {
		return isErr && errors.Is(faultErr, wantErr), nil
	}
	return false, fmt.Errorf("unsupported criterion of type %T", expected)
}

// asTarget reports whether v is a non-nil pointer to a type implementing error
// or to an interface type, the shape errors.As accepts.
func asTarget(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, false
	}
	elem := rv.Type().Elem()
	if elem.Kind() == reflect.Interface || elem.Implements(errorType) {
		return v, true
	}
	return nil, false
}

func describeFault(fault any) string {
	switch f := fault.(type) {
	case error:
		return f.Error()
	case string:
		return f
	default:
		return fmt.Sprint(f)
	}
}

func describeCriterion(expected any) string {
	switch want := expected.(type) {
	case nil:
		return "any fault"
	case string:
		return fmt.Sprintf("a fault containing %q", want)
	case *regexp2.Regexp:
		if want == nil {
			return "a fault matching a nil pattern"
		}
		return fmt.Sprintf("a fault matching /%s/", want.String())
	}
	if _, ok := asTarget(expected); ok {
		return fmt.Sprintf("a fault of type %s", reflect.TypeOf(expected).Elem())
	}
	if err, ok := expected.(error); ok {
		return fmt.Sprintf("fault %q", err.Error())
	}
	return render(expected)
}
