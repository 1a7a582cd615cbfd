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

// Package htmlenc encodes the abstract syntax tree into HTML5.
package htmlenc

import (
	"io"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
	"github.com/Kexogg/clean-code/encoder/textenc"
)

func init() {
	encoder.Register("html", encoder.Info{
		Create:  func(env *encoder.Environment) encoder.Encoder { return &htmlEncoder{env: env} },
		Default: true,
	})
}

type htmlEncoder struct {
	env *encoder.Environment
}

// WriteDocument writes the nodes as a full HTML5 document. The title is
// taken from the environment, or from the text of the first header.
func (he *htmlEncoder) WriteDocument(w io.Writer, ns ast.NodeSlice) (int, error) {
	v := newVisitor(he, w)
	v.b.WriteStrings("<!DOCTYPE html>\n<html lang=\"", he.env.GetLang("en"), "\">\n<head>\n")
	v.b.WriteString("<meta charset=\"utf-8\">\n")
	if title, ok := he.documentTitle(ns); ok {
		v.b.WriteString("<title>")
		v.writeHTMLEscaped(title)
		v.b.WriteString("</title>\n")
	}
	v.b.WriteString("</head>\n<body>\n")
	ast.WalkNodeSlice(v, ns)
	v.b.WriteString("\n</body>\n</html>\n")
	length, err := v.b.Flush()
	return length, err
}

// WriteNodes writes the nodes as an HTML fragment.
func (he *htmlEncoder) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	v := newVisitor(he, w)
	ast.WalkNodeSlice(v, ns)
	length, err := v.b.Flush()
	return length, err
}

func (he *htmlEncoder) documentTitle(ns ast.NodeSlice) (string, bool) {
	if title, ok := he.env.GetTitle(); ok {
		return title, true
	}
	for _, n := range ns {
		if en, ok := n.(*ast.ElementNode); ok && en.Kind == ast.KindHeader {
			title, err := encoder.EncodeString(textenc.Create(), en.Children)
			return title, err == nil && title != ""
		}
	}
	return "", false
}
