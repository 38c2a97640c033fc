// Package normalize turns response values into a form that generic encoders
// (YAML in particular) render the same way encoding/json does.
//
// Value walks a value recursively and:
//
//   - replaces every Enum by its wire string; an Enum that reports itself
//     invalid through IsValid is left as is, so the encoder's own marshalling
//     rejects it exactly like encoding/json does;
//   - turns structs into *OrderedMap keyed by their json field names, in
//     declaration order ("-" and omitempty are honored, exported embedded
//     structs are flattened);
//   - turns slices and arrays into []any and maps into map[string]any
//     (string keys) or map[any]any, leaving keys as they are; nil slices and
//     maps become nil, which encodes as null in both formats;
//   - dereferences pointers.
//
// Other scalars, []byte and structs that marshal themselves as text (such as
// time.Time) are returned unchanged. Value is idempotent.
package normalize

import (
	"encoding"
	"reflect"
	"strings"
)

// Enum is implemented by closed enumerations that have a wire string.
type Enum interface {
	EnumValue() string
}

// checker is the optional validity check of an Enum.
type checker interface {
	IsValid() bool
}

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// Value returns v with every Enum replaced by its string, recursively.
func Value(v any) any {
	if v == nil {
		return nil
	}
	return value(reflect.ValueOf(v))
}

func value(rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}

	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Enum:
			if c, ok := x.(checker); ok && !c.IsValid() {
				return x
			}
			return x.EnumValue()
		case *OrderedMap:
			return orderedMap(x)
		}
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return value(rv.Elem())

	case reflect.Struct:
		if rv.Type().Implements(textMarshalerType) || reflect.PointerTo(rv.Type()).Implements(textMarshalerType) {
			return rv.Interface()
		}
		out := NewOrderedMap(rv.NumField())
		structFields(rv, out)
		return out

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return rv.Interface()
		}
		return sequence(rv)

	case reflect.Array:
		return sequence(rv)

	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		return mapping(rv)

	default:
		return rv.Interface()
	}
}

func orderedMap(m *OrderedMap) *OrderedMap {
	out := NewOrderedMap(m.Len())
	for _, k := range m.keys {
		out.Set(k, Value(m.values[k]))
	}
	return out
}

func sequence(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = value(rv.Index(i))
	}
	return out
}

func mapping(rv reflect.Value) any {
	if rv.Type().Key().Kind() == reflect.String {
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = value(iter.Value())
		}
		return out
	}

	out := make(map[any]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().Interface()] = value(iter.Value())
	}
	return out
}

func structFields(rv reflect.Value, out *OrderedMap) {
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")

		fv := rv.Field(i)

		if sf.Anonymous && name == "" {
			embedded := fv
			if embedded.Kind() == reflect.Pointer {
				if embedded.IsNil() {
					continue
				}
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct {
				structFields(embedded, out)
				continue
			}
		}

		if name == "" {
			name = sf.Name
		}
		if hasOption(opts, "omitempty") && isEmpty(fv) {
			continue
		}

		out.Set(name, value(fv))
	}
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}
	return false
}

// isEmpty mirrors the omitempty rule of encoding/json.
func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer:
		return v.IsZero()
	}
	return false
}
