// Package clone provides deep copies of binding values so captured initial
// state and emitted snapshots stay detached from caller-owned structures.
package clone

import "reflect"

// Value returns a deep copy of value. Unexported struct fields are left at
// their zero value since they cannot be set through reflection.
func Value[T any](value T) T {
	var zero T
	cloned := cloneValue(reflect.ValueOf(value))
	if !cloned.IsValid() {
		return zero
	}
	// TypeOf(zero) is nil when T is an interface type; the concrete clone
	// already satisfies it.
	if reflect.TypeOf(zero) == nil {
		return cloned.Interface().(T)
	}
	if cloned.Type() != reflect.TypeOf(zero) {
		result := reflect.New(reflect.TypeOf(zero)).Elem()
		result.Set(cloned.Convert(reflect.TypeOf(zero)))
		return result.Interface().(T)
	}
	return cloned.Interface().(T)
}

func cloneValue(v reflect.Value) reflect.Value {
	if !v.IsValid() {
		return v
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		cloned := reflect.New(v.Type().Elem())
		cloned.Elem().Set(cloneValue(v.Elem()))
		return cloned
	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		elem := cloneValue(v.Elem())
		if !elem.IsValid() {
			return reflect.Zero(v.Type())
		}
		return elem.Convert(v.Type())
	case reflect.Struct:
		cloned := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := cloned.Field(i)
			if !field.CanSet() {
				continue
			}
			field.Set(cloneValue(v.Field(i)))
		}
		return cloned
	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		cloned := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			cloned.SetMapIndex(iter.Key(), cloneValue(iter.Value()))
		}
		return cloned
	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		cloned := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			cloned.Index(i).Set(cloneValue(v.Index(i)))
		}
		return cloned
	case reflect.Array:
		cloned := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			cloned.Index(i).Set(cloneValue(v.Index(i)))
		}
		return cloned
	default:
		return reflect.ValueOf(v.Interface())
	}
}
