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

package htmlenc

import (
	"io"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
	"github.com/Kexogg/clean-code/strfun"
)

type visitor struct {
	env *encoder.Environment
	b   encoder.BufWriter
}

func newVisitor(he *htmlEncoder, w io.Writer) *visitor {
	return &visitor{
		env: he.env,
		b:   encoder.NewBufWriter(w),
	}
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.TextNode:
		v.writeHTMLEscaped(n.Text)
	case *ast.ElementNode:
		v.visitElement(n)
	default:
		return v
	}
	return nil
}

func (v *visitor) visitElement(en *ast.ElementNode) {
	tag := en.Kind.Element()
	if tag == "" {
		// Unknown kinds contribute their content only.
		ast.WalkNodeSlice(v, en.Children)
		return
	}
	v.b.WriteStrings("<", tag)
	v.visitAttributes(en.Attrs)
	if en.Kind.IsSelfClosing() {
		v.b.WriteString(" />")
		return
	}
	v.b.WriteByte('>')
	ast.WalkNodeSlice(v, en.Children)
	v.b.WriteStrings("</", tag, ">")
}

// visitAttributes writes the attributes in insertion order.
func (v *visitor) visitAttributes(a *ast.Attributes) {
	for _, p := range a.Pairs() {
		v.b.WriteStrings(" ", p.Key, "=\"")
		v.writeHTMLEscaped(p.Value)
		v.b.WriteByte('"')
	}
}

func (v *visitor) writeHTMLEscaped(s string) {
	strfun.HTMLEscape(&v.b, s)
}
