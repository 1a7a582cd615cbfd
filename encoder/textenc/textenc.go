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

// Package textenc encodes the abstract syntax tree into its text.
package textenc

import (
	"io"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
)

func init() {
	encoder.Register("text", encoder.Info{
		Create: func(*encoder.Environment) encoder.Encoder { return Create() },
	})
}

// Create an encoder.
func Create() *Encoder { return &myTE }

// Encoder writes only the text content. Line breaks become newlines, a
// header ends with a newline and an image is represented by its alt text.
type Encoder struct{}

var myTE Encoder // Only a singleton is required.

// WriteDocument writes the text of all nodes.
func (te *Encoder) WriteDocument(w io.Writer, ns ast.NodeSlice) (int, error) {
	return te.WriteNodes(w, ns)
}

// WriteNodes writes the text of all nodes.
func (*Encoder) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	v := newVisitor(w)
	ast.WalkNodeSlice(v, ns)
	length, err := v.b.Flush()
	return length, err
}

type visitor struct {
	b encoder.BufWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewBufWriter(w)}
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.TextNode:
		v.b.WriteString(n.Text)
		return nil
	case *ast.ElementNode:
		switch n.Kind {
		case ast.KindLineBreak:
			v.b.WriteByte('\n')
		case ast.KindImage:
			if alt, ok := n.Attrs.Get("alt"); ok {
				v.b.WriteString(alt)
			}
		case ast.KindHeader:
			ast.WalkNodeSlice(v, n.Children)
			v.b.WriteByte('\n')
		default:
			ast.WalkNodeSlice(v, n.Children)
		}
		return nil
	}
	return v
}
