package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// AnyMapVisitorOf dynamically creates a visitor from any map value.
// Entries are visited in key order, see compareKeys.
func AnyMapVisitorOf(value interface{}) (Visitor[any, any], error) {
	val := reflect.ValueOf(value)
	if val.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	visitor := &AnyMapVisitor[any, any]{data: val}
	return visitor.Visit, nil
}

type entry struct {
	key   reflect.Value
	value reflect.Value
}

// AnyMapVisitor defines any map visitor
type AnyMapVisitor[K comparable, E any] struct {
	data reflect.Value
}

// Visit iterates over the map via reflection and calls f for each entry, ordered by key.
func (v *AnyMapVisitor[K, E]) Visit(f func(key K, element E) (bool, error)) error {
	var entries []entry
	iter := v.data.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: iter.Key(), value: iter.Value()})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return compareKeys(entries[i].key, entries[j].key) < 0
	})
	for _, item := range entries {
		key, val := item.key, item.value
		k, ok1 := as[K](key)
		e, ok2 := as[E](val)

		if !ok1 || !ok2 {
			return fmt.Errorf("type assertion failed for key or element")
		}

		continueVisit, err := f(k, e)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
