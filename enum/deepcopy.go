package enum

import "reflect"

// deepCopy returns a copy of v where maps, slices, arrays, and pointers
// are recursively duplicated. Scalars, strings, channels, and funcs are
// returned as-is. Used so a clone's payload and metadata can be mutated
// without touching the source.
func deepCopy(v any) any {
	if v == nil {
		return nil
	}
	return deepCopyValue(reflect.ValueOf(v)).Interface()
}

func deepCopyValue(v reflect.Value) reflect.Value {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), deepCopyElem(iter.Value()))
		}
		return out
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopyElem(v.Index(i)))
		}
		return out
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			out.Index(i).Set(deepCopyElem(v.Index(i)))
		}
		return out
	case reflect.Pointer:
		if v.IsNil() {
			return v
		}
		out := reflect.New(v.Type().Elem())
		out.Elem().Set(deepCopyElem(v.Elem()))
		return out
	default:
		return v
	}
}

// deepCopyElem copies through interface wrappers so map values and slice
// elements typed as `any` are descended into, not aliased.
func deepCopyElem(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		copied := deepCopyValue(v.Elem())
		out := reflect.New(v.Type()).Elem()
		out.Set(copied)
		return out
	}
	return deepCopyValue(v)
}

// copyMetadata deep-copies a metadata map, returning an empty map for nil
// input so callers never share or nil-check metadata storage.
func copyMetadata(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopy(v)
	}
	return out
}
