//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Kexogg
//
// This file is part of clean-code.
//
// clean-code is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2022-present Kexogg
//-----------------------------------------------------------------------------

// Package nativeenc encodes the abstract syntax tree into an indented tree
// dump, suitable for debugging.
package nativeenc

import (
	"io"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
)

func init() {
	encoder.Register("native", encoder.Info{
		Create: func(*encoder.Environment) encoder.Encoder { return &nativeEncoder{} },
	})
}

type nativeEncoder struct{}

// WriteDocument writes the tree dump, followed by a newline.
func (ne *nativeEncoder) WriteDocument(w io.Writer, ns ast.NodeSlice) (int, error) {
	v := newVisitor(w)
	v.acceptNodeSlice(ns)
	if len(ns) > 0 {
		v.b.WriteByte('\n')
	}
	length, err := v.b.Flush()
	return length, err
}

// WriteNodes writes every top level node on its own line. Children are
// indented by one space per level.
func (*nativeEncoder) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	v := newVisitor(w)
	v.acceptNodeSlice(ns)
	length, err := v.b.Flush()
	return length, err
}

type visitor struct {
	b     encoder.BufWriter
	level int
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewBufWriter(w)}
}

var (
	rawBackslash   = []byte{'\\', '\\'}
	rawDoubleQuote = []byte{'\\', '"'}
	rawNewline     = []byte{'\\', 'n'}
	rawTab         = []byte{'\\', 't'}
)

func (v *visitor) acceptNodeSlice(ns ast.NodeSlice) {
	for i, n := range ns {
		if i > 0 {
			v.writeNewLine()
		}
		v.acceptNode(n)
	}
}

func (v *visitor) acceptNode(n ast.Node) {
	switch n := n.(type) {
	case *ast.TextNode:
		v.b.WriteString("[Text \"")
		v.writeEscaped(n.Text)
		v.b.WriteString("\"]")
	case *ast.ElementNode:
		v.b.WriteStrings("[", n.Kind.String())
		v.visitAttributes(n.Attrs)
		if len(n.Children) > 0 {
			v.level++
			v.writeNewLine()
			v.acceptNodeSlice(n.Children)
			v.level--
		}
		v.b.WriteByte(']')
	}
}

func (v *visitor) visitAttributes(a *ast.Attributes) {
	if a.IsEmpty() {
		return
	}
	v.b.WriteString(" (")
	for i, p := range a.Pairs() {
		if i > 0 {
			v.b.WriteByte(' ')
		}
		v.b.WriteStrings(p.Key, "=\"")
		v.writeEscaped(p.Value)
		v.b.WriteByte('"')
	}
	v.b.WriteByte(')')
}

func (v *visitor) writeNewLine() {
	v.b.WriteByte('\n')
	for i := 0; i < v.level; i++ {
		v.b.WriteByte(' ')
	}
}

func (v *visitor) writeEscaped(s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc []byte
		switch s[i] {
		case '\\':
			esc = rawBackslash
		case '"':
			esc = rawDoubleQuote
		case '\n':
			esc = rawNewline
		case '\t':
			esc = rawTab
		default:
			continue
		}
		v.b.WriteString(s[last:i])
		v.b.Write(esc)
		last = i + 1
	}
	v.b.WriteString(s[last:])
}
