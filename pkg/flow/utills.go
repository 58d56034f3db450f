package flow

import "reflect"

// IsNil reports whether i is nil or holds a nil pointer, func, map, slice,
// chan or interface. Callbacks stored behind any are treated as absent when
// IsNil is true.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
