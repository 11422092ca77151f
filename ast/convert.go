// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"
	"maps"
	"slices"
)

// ToValue converts a Go value into a Value. It handles nil, bool, string,
// the built-in integer and floating-point types, []any, map[string]any,
// and values that already implement Value. Maps are converted with their
// keys in sorted order. ToValue panics for any other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case float32:
		return Double(t)
	case float64:
		return Double(t)
	case []any:
		out := make(List, len(t))
		for i, elt := range t {
			out[i] = ToValue(elt)
		}
		return out
	case map[string]any:
		keys := slices.Sorted(maps.Keys(t))
		ms := make([]Member, len(keys))
		for i, key := range keys {
			ms[i] = Field(key, ToValue(t[key]))
		}
		return NewMap(ms...)
	default:
		panic(fmt.Sprintf("cannot convert %T to a Value", v))
	}
}
