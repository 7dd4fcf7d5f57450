package visitor

import (
	"errors"
	"fmt"
	"github.com/viant/xunsafe"
	"reflect"
	"unsafe"
)

var structCache = NewSyncMap[reflect.Type, *xunsafe.Struct]()

// FieldError reports a struct field that could not be read
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("failed to read field %v: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// StructVisitor implements Visitor[string, interface{}] for structs using xunsafe,
// unexported fields included.
type StructVisitor struct {
	value   interface{}
	ptr     unsafe.Pointer
	xStruct *xunsafe.Struct
}

// StructVisitorOf creates a StructVisitor from any struct value or non nil pointer to struct.
func StructVisitorOf(value interface{}) (Visitor[string, interface{}], error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	isPtr := false
	var structType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected non nil pointer, got nil %T", value)
		}
		isPtr = true
		structType = valueType.Elem()
	case reflect.Struct:
		structType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	if !isPtr {
		rPointer := reflect.New(structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	xStruct := structCache.GetOrCreate(structType, func() *xunsafe.Struct {
		return xunsafe.NewStruct(structType)
	})
	visitor := &StructVisitor{
		value:   value,
		ptr:     xunsafe.AsPointer(value),
		xStruct: xStruct,
	}
	return visitor.Visit, nil
}

// Visit iterates over struct fields in declaration order, calling the provided function with each field name and value.
// A field whose value cannot be read is skipped; all such failures are returned joined as *FieldError
// once the iteration completes. An error returned by f stops the iteration immediately.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	var fieldErrors []error
	for i := 0; i < len(w.xStruct.Fields); i++ {
		xField := w.xStruct.Fields[i]
		fieldValue, err := readField(xField.Name, func() interface{} { return xField.Value(w.ptr) })
		if err != nil {
			fieldErrors = append(fieldErrors, err)
			continue
		}
		continueVisit, err := f(xField.Name, fieldValue)
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return errors.Join(fieldErrors...)
}

func readField(name string, read func() interface{}) (value interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FieldError{Field: name, Err: fmt.Errorf("%v", r)}
		}
	}()
	return read(), nil
}
