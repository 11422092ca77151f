// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import "fmt"

// A Visitor has one method per variant of Value. Adding a variant to Value
// adds a method here, so every Visitor must handle it.
type Visitor interface {
	VisitNull() error
	VisitBool(bool) error
	VisitInt(int64) error
	VisitDouble(float64) error
	VisitString(string) error
	VisitList(List) error
	VisitMap(Map) error
}

// Visit calls the method of vis corresponding to the variant of v and
// returns its result. Visit does not descend into containers; a visitor that
// wants the whole tree calls Visit again from VisitList and VisitMap.
//
// A nil v is visited as Null.
func Visit(v Value, vis Visitor) error {
	switch t := v.(type) {
	case nil, Null:
		return vis.VisitNull()
	case Bool:
		return vis.VisitBool(bool(t))
	case Int:
		return vis.VisitInt(int64(t))
	case Double:
		return vis.VisitDouble(float64(t))
	case String:
		return vis.VisitString(string(t))
	case List:
		return vis.VisitList(t)
	case Map:
		return vis.VisitMap(t)
	default:
		panic(fmt.Sprintf("unknown value type %T", v))
	}
}
