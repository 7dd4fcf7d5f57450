package visitor

import (
	"fmt"
	"reflect"
)

// AnySliceVisitorOf dynamically creates a visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []bool:
		return AnyTypedSliceVisitorOf[bool](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []int64:
		return AnyTypedSliceVisitorOf[int64](actual), nil
	case []uint64:
		return AnyTypedSliceVisitorOf[uint64](actual), nil
	case []byte:
		return AnyTypedSliceVisitorOf[byte](actual), nil
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []float64:
		return AnyTypedSliceVisitorOf[float64](actual), nil
	case []float32:
		return AnyTypedSliceVisitorOf[float32](actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, fmt.Errorf("expected slice or array, got %T", value)
	}
	visitor := &AnySliceVisitor[any]{data: val}
	return visitor.Visit, nil
}

// AnyTypedSliceVisitorOf return visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnySliceVisitor implements Visitor[int, E] for slices and arrays of any type.
type AnySliceVisitor[E any] struct {
	data reflect.Value
}

// Visit iterates over any slice or array type via reflection.
func (v *AnySliceVisitor[E]) Visit(f func(key int, element E) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		val, ok := as[E](v.data.Index(i))
		if !ok {
			return fmt.Errorf("type assertion failed for element %v", i)
		}
		continueVisit, err := f(i, val)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

// as returns value as E, nil interface values yield zero E
func as[E any](value reflect.Value) (E, bool) {
	var zero E
	actual := value.Interface()
	if actual == nil {
		return zero, true
	}
	ret, ok := actual.(E)
	return ret, ok
}
