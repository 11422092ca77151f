// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is matched by every *TypeMismatchError via errors.Is.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError is reported by the accessors when the requested variant
// does not match the variant of the value.
type TypeMismatchError struct {
	Want, Got Kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: got %v, want %v", e.Got, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

func as[T Value](v Value, want Kind) (T, error) {
	t, ok := v.(T)
	if !ok {
		got := NullKind
		if v != nil {
			got = v.Kind()
		}
		return t, &TypeMismatchError{Want: want, Got: got}
	}
	return t, nil
}

// AsBool returns the payload of v if it is a Bool.
func AsBool(v Value) (bool, error) {
	b, err := as[Bool](v, BoolKind)
	return bool(b), err
}

// AsInt returns the payload of v if it is an Int.
func AsInt(v Value) (int64, error) {
	z, err := as[Int](v, IntKind)
	return int64(z), err
}

// AsDouble returns the payload of v if it is a Double.
func AsDouble(v Value) (float64, error) {
	d, err := as[Double](v, DoubleKind)
	return float64(d), err
}

// AsString returns the payload of v if it is a String.
func AsString(v Value) (string, error) {
	s, err := as[String](v, StringKind)
	return string(s), err
}

// AsList returns v if it is a List.
func AsList(v Value) (List, error) { return as[List](v, ListKind) }

// AsMap returns v if it is a Map.
func AsMap(v Value) (Map, error) { return as[Map](v, MapKind) }

// Equal reports whether a and b are structurally equal. Maps are equal if
// they have the same members in the same order.
func Equal(a, b Value) bool {
	switch t := a.(type) {
	case List:
		u, ok := b.(List)
		if !ok || len(t) != len(u) {
			return false
		}
		for i := range t {
			if !Equal(t[i], u[i]) {
				return false
			}
		}
		return true
	case Map:
		u, ok := b.(Map)
		return ok && t.Equal(u)
	default:
		return a == b
	}
}

// Equal reports whether m and o have the same members in the same order.
func (m Map) Equal(o Map) bool {
	if len(m.members) != len(o.members) {
		return false
	}
	for i, mem := range m.members {
		if mem.Key != o.members[i].Key || !Equal(mem.Value, o.members[i].Value) {
			return false
		}
	}
	return true
}
