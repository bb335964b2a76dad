// File: common.go
// Title: Validation Utilities
// Description: Conversion helpers shared by the built-in type validators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-15 v0.2.0: Integer conversion for command-line strings

package validation

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// GetValueLength returns the length of strings, slices, arrays, or maps.
// Strings are measured in runes. Returns -1 for unsupported types.
func GetValueLength(value interface{}) int {
	if value == nil {
		return 0
	}

	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len()
	case reflect.String:
		return utf8.RuneCountInString(rv.String())
	default:
		return -1
	}
}

// ConvertToFloat64 converts numeric types and numeric strings to float64
func ConvertToFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("cannot convert %q to a number", v)
		}
		return f, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float64", value)
	}
}

// ConvertToInt64 converts integer types and base-10 integer strings to int64.
// Floats are accepted only when they carry no fraction.
func ConvertToInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int64(v), nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return int64(rv.Uint()), nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int64", value)
	}
}
