package sparsetable

import "reflect"

// Nullable is implemented by types that can represent a null value.
type Nullable interface {
	IsNull() bool
}

var typeOfNullable = reflect.TypeFor[Nullable]()

// IsNullLike returns true if the passed reflect.Value
// is not valid, nil (of a type that can be nil),
// implements Nullable returning true from IsNull,
// or is of type struct{}.
func IsNullLike(val reflect.Value) bool {
	if !val.IsValid() {
		return true
	}
	switch val.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if val.IsNil() {
			return true
		}
	case reflect.Struct:
		if t := val.Type(); t.NumField() == 0 && t.NumMethod() == 0 {
			// Treat a value of type struct{} like nil
			return true
		}
	}
	if val.Type().Implements(typeOfNullable) {
		return val.Interface().(Nullable).IsNull()
	}
	return false
}
