// Package check holds shared argument inspection helpers used by the
// public packages to police nil inputs.
package check

import "reflect"

// IsNil reports whether i is nil or wraps a nil pointer, map, slice,
// function, channel or interface value.
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
