package value

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
)

var bigIntType = reflect.TypeOf((*big.Int)(nil))

// FromAny creates a Value from a Go value using reflection.
//
// FromAny converts Go types to their corresponding kinds:
//   - nil -> Null
//   - bool, integer, float and string types -> Bool, Int, Float, String
//   - slices and arrays of those types -> the matching typed list
//   - other slices and arrays -> ListAny (recursively)
//   - maps and structs -> Struct (structs use exported fields and json tags)
//   - pointers and interfaces -> dereference and convert
//
// Channels, functions and other values with no Ago counterpart fail with
// ErrUnsupportedCast.
func FromAny(v any) (Value, error) {
	switch d := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return d, nil
	case *big.Int:
		return FromBigInt(d), nil
	case Range:
		return Value{data: d}, nil
	}
	return fromReflectValue(reflect.ValueOf(v))
}

func fromReflectValue(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}
	if rv.CanInterface() {
		switch d := rv.Interface().(type) {
		case Value:
			return d, nil
		case Range:
			return Value{data: d}, nil
		}
		if rv.Type() == bigIntType {
			if rv.IsNil() {
				return Null(), nil
			}
			return FromBigInt(rv.Interface().(*big.Int)), nil
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Value{data: new(big.Int).SetUint64(rv.Uint())}, nil
	case reflect.Float32, reflect.Float64:
		return FromFloat(rv.Float()), nil
	case reflect.String:
		return FromString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return FromList(), nil
		}
		return fromSequence(rv)
	case reflect.Map:
		m := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key()
			var key string
			if k.Kind() == reflect.String {
				key = k.String()
			} else {
				key = fmt.Sprintf("%v", k.Interface())
			}
			val, err := fromReflectValue(iter.Value())
			if err != nil {
				return Null(), err
			}
			m[key] = val
		}
		return FromStruct(m), nil
	case reflect.Struct:
		return fromStruct(rv)
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return fromReflectValue(rv.Elem())
	default:
		return Null(), Errorf(ErrUnsupportedCast, "cannot represent Go type %s", rv.Type())
	}
}

func fromSequence(rv reflect.Value) (Value, error) {
	items := make([]Value, rv.Len())
	for i := range items {
		item, err := fromReflectValue(rv.Index(i))
		if err != nil {
			return Null(), err
		}
		items[i] = item
	}
	switch rv.Type().Elem().Kind() {
	case reflect.Bool:
		return collect(KindBoolList, items), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return collect(KindIntList, items), nil
	case reflect.Float32, reflect.Float64:
		return collect(KindFloatList, items), nil
	case reflect.String:
		return collect(KindStringList, items), nil
	}
	if rv.Type().Elem() == bigIntType && allKind(items, KindInt) {
		return collect(KindIntList, items), nil
	}
	return FromList(items...), nil
}

func fromStruct(rv reflect.Value) (Value, error) {
	t := rv.Type()
	m := make(map[string]Value)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag := field.Tag.Get("json"); tag != "" {
			parts := strings.Split(tag, ",")
			if parts[0] == "-" {
				continue
			}
			if parts[0] != "" {
				name = parts[0]
			}
		}
		val, err := fromReflectValue(rv.Field(i))
		if err != nil {
			return Null(), err
		}
		m[name] = val
	}
	return FromStruct(m), nil
}

// ToNative converts a Value into plain Go data: int64 (or *big.Int when
// it does not fit), float64, bool, string, []any, map[string]any, Range
// and nil for Null.
func ToNative(v Value) any {
	switch d := v.data.(type) {
	case *big.Int:
		if d.IsInt64() {
			return d.Int64()
		}
		return new(big.Int).Set(d)
	case float64, bool, string, Range:
		return d
	case intList, floatList, boolList, stringList, listAny:
		items := v.elements()
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = ToNative(item)
		}
		return out
	case structMap:
		out := make(map[string]any, len(d))
		for k, item := range d {
			out[k] = ToNative(item)
		}
		return out
	default:
		return nil
	}
}
