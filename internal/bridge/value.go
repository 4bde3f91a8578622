package bridge

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// Validate checks that v is made only of strings, finite numbers, booleans,
// nil, and sequences or string-keyed mappings of those.
func Validate(v any) error {
	return validate(reflect.ValueOf(v), "$")
}

func validate(rv reflect.Value, path string) error {
	if !rv.IsValid() {
		return nil
	}

	switch rv.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return nil

	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return &SerializationError{Path: path, Reason: "number is not finite"}
		}
		return nil

	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return validate(rv.Elem(), path)

	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return &SerializationError{Path: path, Reason: "raw byte slices are not supported, send a string"}
		}
		fallthrough

	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := validate(rv.Index(i), fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return &SerializationError{Path: path, Reason: fmt.Sprintf("map keys must be strings, got %s", rv.Type().Key())}
		}
		iter := rv.MapRange()
		for iter.Next() {
			if err := validate(iter.Value(), path+"."+iter.Key().String()); err != nil {
				return err
			}
		}
		return nil
	}

	return &SerializationError{Path: path, Reason: fmt.Sprintf("unsupported type %s", rv.Type())}
}

// Decode turns one JSON-encoded argument from the script side into a plain value.
func Decode(raw json.RawMessage) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &SerializationError{Reason: "invalid argument", Err: err}
	}
	return v, nil
}

// convert re-shapes a plain value into the typed destination out.
func convert(v any, out any, path string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &SerializationError{Path: path, Reason: fmt.Sprintf("expected %s", reflect.TypeOf(out).Elem()), Err: err}
	}
	return nil
}
