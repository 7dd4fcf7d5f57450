package structdump

import (
	"reflect"
)

// typeName returns package qualified type name, unnamed and predeclared types use reflect type string
func typeName(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// derefPointer follows pointer and interface chain, it returns the final value and the address of the last pointer, or 0 for non pointer value.
// A chain pointing back to itself stops at the first repeated address.
func derefPointer(value reflect.Value) (reflect.Value, uintptr) {
	var address uintptr
	var seen map[uintptr]bool
	for {
		switch value.Kind() {
		case reflect.Interface:
			if value.IsNil() {
				return value, address
			}
			value = value.Elem()
			continue
		case reflect.Ptr:
			if value.IsNil() {
				return value, address
			}
		default:
			return value, address
		}
		next := value.Pointer()
		if seen[next] {
			return value, address
		}
		if seen == nil {
			seen = map[uintptr]bool{}
		}
		seen[next] = true
		address = next
		value = value.Elem()
	}
}

// isNil returns true for nil value or nil nillable kinds, including pointer chain ending with nil
func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue, _ := derefPointer(reflect.ValueOf(value))
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rValue.IsNil()
	}
	return false
}
