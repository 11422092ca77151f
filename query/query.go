// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package query implements structural queries over parsed values.
//
// A query describes a substructure of a value tree, such as a map member, a
// list element, or a path through the tree. Evaluating a query against a
// concrete value traverses the structure described by the query and returns
// the resulting value.
//
// The simplest query is a "path", a sequence of map keys and/or list indices
// that describes a path from the root of a value. For example, given the
// value:
//
//	[{"a": 1, "b": 2}, {"c": {"d": 3}, "e": 4}]
//
// the query
//
//	query.Path(1, "c", "d")
//
// yields the value 3.
package query

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/creachadair/jlite/ast"
)

// Eval evaluates the given query beginning from root, returning the resulting
// value or an error.
func Eval(root ast.Value, q Query) (ast.Value, error) {
	return q.eval(root)
}

// A Query describes a traversal of a value.
type Query interface {
	eval(ast.Value) (ast.Value, error)
}

// Path traverses a sequence of nested map keys or list indices from the
// root. If no keys are specified, the root is returned. Each key must be a
// string, an int, or a Query.
func Path(keys ...any) Query {
	if len(keys) == 1 {
		return pathElem(keys[0])
	}
	pq := make(Seq, 0, len(keys))
	for _, key := range keys {
		q := pathElem(key)
		if sq, ok := q.(Seq); ok {
			pq = append(pq, sq...)
		} else {
			pq = append(pq, q)
		}
	}
	return pq
}

func pathElem(key any) Query {
	switch t := key.(type) {
	case string:
		return mapKey(t)
	case int:
		return nthQuery(t)
	case Query:
		return t
	default:
		panic(fmt.Sprintf("invalid path element %T", key))
	}
}

type mapKey string

func (k mapKey) eval(v ast.Value) (ast.Value, error) {
	m, ok := v.(ast.Map)
	if !ok {
		return nil, fmt.Errorf("got %v, want map", kindOf(v))
	}
	val, ok := m.Get(string(k))
	if !ok {
		return nil, fmt.Errorf("key %q not found", k)
	}
	return val, nil
}

type nthQuery int

func (nq nthQuery) eval(v ast.Value) (ast.Value, error) {
	lst, ok := v.(ast.List)
	if !ok {
		return nil, fmt.Errorf("got %v, want list", kindOf(v))
	}
	idx, ok := fixIndex(len(lst), int(nq))
	if !ok {
		return nil, fmt.Errorf("index %d out of range (0..%d)", nq, len(lst))
	}
	return lst[idx], nil
}

// Selection constructs a list of the elements of its input list, for which
// the specified function returns true.
type Selection func(ast.Value) bool

func (q Selection) eval(v ast.Value) (ast.Value, error) {
	lst, ok := v.(ast.List)
	if !ok {
		return nil, fmt.Errorf("got %v, want list", kindOf(v))
	}
	out := ast.List{}
	for _, elt := range lst {
		if q(elt) {
			out = append(out, elt)
		}
	}
	return out, nil
}

// Mapping constructs a list in which each value is replaced by the result of
// calling the specified function on the corresponding input value.
type Mapping func(ast.Value) ast.Value

func (q Mapping) eval(v ast.Value) (ast.Value, error) {
	lst, ok := v.(ast.List)
	if !ok {
		return nil, fmt.Errorf("got %v, want list", kindOf(v))
	}
	out := make(ast.List, len(lst))
	for i, elt := range lst {
		out[i] = q(elt)
	}
	return out, nil
}

// Slice selects a slice of a list from offsets lo to hi. The range includes
// lo but excludes hi. Negative offsets select from the end of the list.
// If hi == 0, the length of the list is used.
func Slice(lo, hi int) Query { return sliceQuery{lo, hi} }

type sliceQuery struct{ lo, hi int }

func (q sliceQuery) eval(v ast.Value) (ast.Value, error) {
	lst, ok := v.(ast.List)
	if !ok {
		return nil, fmt.Errorf("got %v, want list", kindOf(v))
	}
	lox := q.lo
	if lox < 0 {
		lox += len(lst)
	}
	hix := q.hi
	if hix <= 0 {
		hix += len(lst)
	}
	if lox < 0 || lox > len(lst) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.lo, len(lst))
	} else if hix < 0 || hix > len(lst) {
		return nil, fmt.Errorf("index %d out of range (0..%d)", q.hi, len(lst))
	} else if lox > hix {
		return nil, fmt.Errorf("index start %d > end %d", q.lo, q.hi)
	}
	return lst[lox:hix], nil
}

// Pick constructs a list by picking the designated offsets from a list.
// Negative offsets select from the end of the input list.
func Pick(offsets ...int) Query { return pickQuery(offsets) }

type pickQuery []int

func (q pickQuery) eval(v ast.Value) (ast.Value, error) {
	lst, ok := v.(ast.List)
	if !ok {
		return nil, fmt.Errorf("got %v, want list", kindOf(v))
	}
	out := make(ast.List, 0, len(q))
	for _, off := range q {
		idx, ok := fixIndex(len(lst), off)
		if !ok {
			return nil, fmt.Errorf("index %d out of range (0..%d)", off, len(lst))
		}
		out = append(out, lst[idx])
	}
	return out, nil
}

// Len returns an integer representing the length of the root.
//
// For a map, the length is the number of members.
// For a list, the length is the number of elements.
// For a string, the length is the length of the string in bytes.
// For null, the length is zero.
func Len() Query { return lenQuery{} }

type lenQuery struct{}

func (lenQuery) eval(v ast.Value) (ast.Value, error) {
	switch t := v.(type) {
	case nil, ast.Null:
		return ast.Int(0), nil
	case ast.String:
		return ast.Int(len(t)), nil
	case ast.List:
		return ast.Int(len(t)), nil
	case ast.Map:
		return ast.Int(t.Len()), nil
	}
	return nil, fmt.Errorf("cannot take length of %v", kindOf(v))
}

// Seq is a sequential composition of queries. An empty sequence selects the
// root; otherwise, each query is applied to the result selected by the
// previous query in the sequence.
type Seq []Query

func (q Seq) eval(v ast.Value) (ast.Value, error) {
	cur := v
	for _, sq := range q {
		next, err := sq.eval(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Alt is a query that selects among a sequence of alternatives. The result of
// the first alternative that does not report an error is returned. If there
// are no alternatives, the query fails on all inputs.
type Alt []Query

func (q Alt) eval(v ast.Value) (ast.Value, error) {
	for _, alt := range q {
		if w, err := alt.eval(v); err == nil {
			return w, nil
		}
	}
	return nil, errors.New("no matching alternatives")
}

// Recur applies a query to each recursive descendant of its input, including
// the input itself, and returns a list of the resulting values. The arguments
// have the same constraints as Path.
func Recur(keys ...any) Query { return recQuery{Path(keys...)} }

type recQuery struct{ Query }

func (q recQuery) eval(v ast.Value) (ast.Value, error) {
	var out ast.List

	stk := []ast.Value{v}
	for len(stk) != 0 {
		next := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		if r, err := q.Query.eval(next); err == nil {
			out = append(out, r)
		}

		// N.B. Push in reverse order, so we visit in lexical order.
		switch t := next.(type) {
		case ast.Map:
			for i := t.Len() - 1; i >= 0; i-- {
				stk = append(stk, t.At(i).Value)
			}
		case ast.List:
			for i := len(t) - 1; i >= 0; i-- {
				stk = append(stk, t[i])
			}
		}
	}

	if len(out) == 0 {
		return nil, errors.New("no matches")
	}
	return out, nil
}

// Each applies a query to each element of a list, or to each member value of
// a map, and returns a list of the resulting values. It fails if the input is
// not a container. The arguments have the same constraints as Path.
func Each(keys ...any) Query { return eachQuery{Path(keys...)} }

type eachQuery struct{ Query }

func (q eachQuery) eval(v ast.Value) (ast.Value, error) {
	elts, err := children(v)
	if err != nil {
		return nil, err
	}
	out := make(ast.List, 0, len(elts))
	for i, elt := range elts {
		v, err := q.Query.eval(elt)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Object constructs a map with the given keys mapped to the results of
// matching the query values against its input. The members of the result are
// in key order.
type Object map[string]Query

func (o Object) eval(v ast.Value) (ast.Value, error) {
	ms := make([]ast.Member, 0, len(o))
	for _, key := range slices.Sorted(maps.Keys(o)) {
		val, err := o[key].eval(v)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", key, err)
		}
		ms = append(ms, ast.Field(key, val))
	}
	return ast.NewMap(ms...), nil
}

// Array constructs a list with the values produced by matching the given
// queries against its input.
type Array []Query

func (a Array) eval(v ast.Value) (ast.Value, error) {
	out := make(ast.List, len(a))
	for i, q := range a {
		val, err := q.eval(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = val
	}
	return out, nil
}

// A String query ignores its input and returns the given string.
func String(s string) Query { return Value(ast.String(s)) }

// A Double query ignores its input and returns the given number.
func Double(d float64) Query { return Value(ast.Double(d)) }

// An Int query ignores its input and returns the given integer.
func Int(z int64) Query { return Value(ast.Int(z)) }

// A Bool query ignores its input and returns the given bool.
func Bool(b bool) Query { return Value(ast.Bool(b)) }

// A Null query ignores its input and returns a null value.
func Null() Query { return Value(ast.Null{}) }

// A Value query ignores its input and returns the given value.
func Value(v ast.Value) Query { return constQuery{v} }

type constQuery struct{ ast.Value }

func (c constQuery) eval(_ ast.Value) (ast.Value, error) { return c.Value, nil }

// A Glob query returns a list of the elements of a list, or of the member
// values of a map.
func Glob() Query { return globQuery{} }

type globQuery struct{}

func (globQuery) eval(v ast.Value) (ast.Value, error) {
	elts, err := children(v)
	if err != nil {
		return nil, errors.New("no matching values")
	}
	return elts, nil
}

func children(v ast.Value) (ast.List, error) {
	switch t := v.(type) {
	case ast.List:
		return t, nil
	case ast.Map:
		out := make(ast.List, 0, t.Len())
		for _, val := range t.All() {
			out = append(out, val)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("got %v, want list or map", kindOf(v))
	}
}

func fixIndex(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}

func kindOf(v ast.Value) ast.Kind {
	if v == nil {
		return ast.NullKind
	}
	return v.Kind()
}
