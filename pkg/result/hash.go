package result

import (
	"reflect"

	"github.com/mitchellh/hashstructure/v2"
)

type visit struct {
	ptr uintptr
	typ reflect.Type
}

// canonical turns v into a tree of primitives and []any that
// hashstructure can hash, such that reflect.DeepEqual values produce equal
// trees. Unexported fields are included, signed zeros are folded and nil is
// kept distinct from empty. It reports false when v reaches itself through
// a pointer, map or slice.
func canonical(v reflect.Value, path map[visit]bool) (any, bool) {
	if !v.IsValid() {
		return "invalid", true
	}

	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint(), true
	case reflect.Float32, reflect.Float64:
		return foldZero(v.Float()), true
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return []any{foldZero(real(c)), foldZero(imag(c))}, true
	case reflect.String:
		return v.String(), true
	case reflect.Func:
		// non-nil funcs are never DeepEqual
		return []any{"func", v.IsNil()}, true
	case reflect.Chan, reflect.UnsafePointer:
		return []any{"ref", uint64(v.Pointer())}, true
	case reflect.Interface:
		if v.IsNil() {
			return "nil-interface", true
		}
		elem := v.Elem()
		inner, ok := canonical(elem, path)
		return []any{"interface", elem.Type().String(), inner}, ok
	case reflect.Pointer:
		if v.IsNil() {
			return "nil-pointer", true
		}
		return enter(v, path, func() (any, bool) {
			inner, ok := canonical(v.Elem(), path)
			return []any{"pointer", inner}, ok
		})
	case reflect.Struct:
		fields := make([]any, 0, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			f, ok := canonical(v.Field(i), path)
			if !ok {
				return nil, false
			}
			fields = append(fields, f)
		}
		return []any{"struct", fields}, true
	case reflect.Array:
		return sequence("array", v, path)
	case reflect.Slice:
		if v.IsNil() {
			return "nil-slice", true
		}
		return enter(v, path, func() (any, bool) {
			return sequence("slice", v, path)
		})
	case reflect.Map:
		if v.IsNil() {
			return "nil-map", true
		}
		return enter(v, path, func() (any, bool) {
			return entries(v, path)
		})
	}
	return v.Kind().String(), true
}

func enter(v reflect.Value, path map[visit]bool, walk func() (any, bool)) (any, bool) {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if path[key] {
		return nil, false
	}
	path[key] = true
	defer delete(path, key)
	return walk()
}

func sequence(tag string, v reflect.Value, path map[visit]bool) (any, bool) {
	items := make([]any, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		item, ok := canonical(v.Index(i), path)
		if !ok {
			return nil, false
		}
		items = append(items, item)
	}
	return []any{tag, items}, true
}

// entries hashes each key/value pair separately and sums them, so the
// result does not depend on iteration order.
func entries(v reflect.Value, path map[visit]bool) (any, bool) {
	var sum uint64
	iter := v.MapRange()
	for iter.Next() {
		k, ok := canonical(iter.Key(), path)
		if !ok {
			return nil, false
		}
		val, ok := canonical(iter.Value(), path)
		if !ok {
			return nil, false
		}
		h, err := hashstructure.Hash([]any{k, val}, hashstructure.FormatV2, nil)
		if err != nil {
			return nil, false
		}
		sum += h
	}
	return []any{"map", v.Len(), sum}, true
}

func foldZero(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}
