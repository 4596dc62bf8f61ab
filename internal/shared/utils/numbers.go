package utils

import (
	"encoding/json"
	"math"
	"reflect"
)

// ToFloat converts the numeric types produced by encoding/json, sonic,
// goccy/go-yaml and go-toml to float64.
func ToFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// IsFinite reports whether every number inside v, however deeply nested in
// maps, slices and structs, is neither NaN nor infinite. JSON cannot carry
// anything else.
func IsFinite(v interface{}) bool {
	return finite(reflect.ValueOf(v))
}

func finite(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return finite(reflect.ValueOf(real(c))) && finite(reflect.ValueOf(imag(c)))
	case reflect.Interface, reflect.Pointer:
		return v.IsNil() || finite(v.Elem())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !finite(v.Index(i)) {
				return false
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if !finite(iter.Value()) {
				return false
			}
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if !finite(v.Field(i)) {
				return false
			}
		}
	}
	return true
}
