// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/creachadair/jlite"
	"github.com/creachadair/jlite/ast"
)

// treePrinter renders a value as an indented outline, one node per line.
type treePrinter struct {
	w     io.Writer
	depth int
	label string
}

func (p *treePrinter) emit(text string) error {
	_, err := fmt.Fprintf(p.w, "%s%s%s\n", strings.Repeat("  ", p.depth), p.label, text)
	return err
}

func (p *treePrinter) child(label string) *treePrinter {
	return &treePrinter{w: p.w, depth: p.depth + 1, label: label}
}

func (p *treePrinter) VisitNull() error            { return p.emit("null") }
func (p *treePrinter) VisitBool(b bool) error      { return p.emit("bool " + strconv.FormatBool(b)) }
func (p *treePrinter) VisitInt(z int64) error      { return p.emit("int " + strconv.FormatInt(z, 10)) }
func (p *treePrinter) VisitDouble(d float64) error { return p.emit("double " + strconv.FormatFloat(d, 'g', -1, 64)) }
func (p *treePrinter) VisitString(s string) error  { return p.emit("string " + jlite.Quote(s)) }

func (p *treePrinter) VisitList(l ast.List) error {
	if err := p.emit(fmt.Sprintf("list len=%d", len(l))); err != nil {
		return err
	}
	for i, v := range l {
		if err := ast.Visit(v, p.child(fmt.Sprintf("[%d] ", i))); err != nil {
			return err
		}
	}
	return nil
}

func (p *treePrinter) VisitMap(m ast.Map) error {
	if err := p.emit(fmt.Sprintf("map len=%d", m.Len())); err != nil {
		return err
	}
	for key, v := range m.All() {
		if err := ast.Visit(v, p.child(jlite.Quote(key)+": ")); err != nil {
			return err
		}
	}
	return nil
}

// kindCounter counts the nodes of each kind in a value.
type kindCounter map[ast.Kind]int

func (c kindCounter) VisitNull() error          { c[ast.NullKind]++; return nil }
func (c kindCounter) VisitBool(bool) error      { c[ast.BoolKind]++; return nil }
func (c kindCounter) VisitInt(int64) error      { c[ast.IntKind]++; return nil }
func (c kindCounter) VisitDouble(float64) error { c[ast.DoubleKind]++; return nil }
func (c kindCounter) VisitString(string) error  { c[ast.StringKind]++; return nil }

func (c kindCounter) VisitList(l ast.List) error {
	c[ast.ListKind]++
	for _, v := range l {
		if err := ast.Visit(v, c); err != nil {
			return err
		}
	}
	return nil
}

func (c kindCounter) VisitMap(m ast.Map) error {
	c[ast.MapKind]++
	for _, v := range m.All() {
		if err := ast.Visit(v, c); err != nil {
			return err
		}
	}
	return nil
}

// writeSummary writes the count of each kind of node present in v, in kind
// order, followed by the total.
func writeSummary(w io.Writer, v ast.Value) error {
	c := make(kindCounter)
	if err := ast.Visit(v, c); err != nil {
		return err
	}
	var total int
	for k := ast.NullKind; k <= ast.MapKind; k++ {
		if c[k] == 0 {
			continue
		}
		total += c[k]
		if _, err := fmt.Fprintf(w, "%s\t%d\n", k, c[k]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total\t%d\n", total)
	return err
}
