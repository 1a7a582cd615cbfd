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

// Package mdenc encodes the abstract syntax tree into CommonMark.
package mdenc

import (
	"io"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
)

func init() {
	encoder.Register("md", encoder.Info{
		Create: func(*encoder.Environment) encoder.Encoder { return Create() },
	})
}

// Create an encoder.
func Create() *Encoder { return &myME }

// Encoder writes CommonMark text.
type Encoder struct{}

var myME Encoder

// WriteDocument writes the nodes as CommonMark.
func (me *Encoder) WriteDocument(w io.Writer, ns ast.NodeSlice) (int, error) {
	return me.WriteNodes(w, ns)
}

// WriteNodes writes the nodes as CommonMark.
func (*Encoder) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	v := newVisitor(w)
	ast.WalkNodeSlice(v, ns)
	length, err := v.b.Flush()
	return length, err
}

// visitor writes the abstract syntax tree to a BufWriter.
type visitor struct {
	b encoder.BufWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewBufWriter(w)}
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.TextNode:
		v.writeEscaped(n.Text)
	case *ast.ElementNode:
		v.visitElement(n)
	default:
		return v
	}
	return nil
}

func (v *visitor) visitElement(en *ast.ElementNode) {
	switch en.Kind {
	case ast.KindBold:
		v.writeWrapped("**", en.Children)
	case ast.KindItalic:
		v.writeWrapped("*", en.Children)
	case ast.KindHeader:
		v.b.WriteString("# ")
		ast.WalkNodeSlice(v, en.Children)
		v.b.WriteByte('\n')
	case ast.KindImage:
		alt, _ := en.Attrs.Get("alt")
		src, _ := en.Attrs.Get("src")
		v.b.WriteString("![")
		v.writeEscaped(alt)
		v.b.WriteString("](")
		v.writeEscaped(src)
		v.b.WriteByte(')')
	case ast.KindLineBreak:
		v.b.WriteString("\\\n")
	default:
		ast.WalkNodeSlice(v, en.Children)
	}
}

func (v *visitor) writeWrapped(delim string, ns ast.NodeSlice) {
	v.b.WriteString(delim)
	ast.WalkNodeSlice(v, ns)
	v.b.WriteString(delim)
}

// writeEscaped escapes every ASCII punctuation character that may start an
// inline construct.
func (v *visitor) writeEscaped(s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '*', '_', '`', '[', ']', '(', ')', '!', '#', '<', '>', '&':
		default:
			continue
		}
		v.b.WriteString(s[last:i])
		v.b.WriteByte('\\')
		last = i
	}
	v.b.WriteString(s[last:])
}
