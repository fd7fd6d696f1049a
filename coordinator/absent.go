package coordinator

import "reflect"

// isAbsent reports whether val is nil or a typed nil hidden inside an
// interface, such as a (*ordering.Insertion[T])(nil) strategy.
func isAbsent(val any) bool {
	if val == nil {
		return true
	}

	valOf := reflect.ValueOf(val)

	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	}

	return false
}
