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

// Package sexprenc encodes the abstract syntax tree into a s-expression.
package sexprenc

import (
	"io"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
)

func init() {
	encoder.Register("sexpr", encoder.Info{
		Create: func(*encoder.Environment) encoder.Encoder { return Create() },
	})
}

// Create a s-expression encoder.
func Create() *Encoder {
	return &Encoder{trans: NewTransformer()}
}

// Encoder writes the node forest as one s-expression.
type Encoder struct {
	trans *Transformer
}

// WriteDocument writes the s-expression, followed by a newline.
func (enc *Encoder) WriteDocument(w io.Writer, ns ast.NodeSlice) (int, error) {
	length, err := enc.WriteNodes(w, ns)
	if err != nil {
		return length, err
	}
	l, err := io.WriteString(w, "\n")
	return length + l, err
}

// WriteNodes writes the s-expression of the node slice.
func (enc *Encoder) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
	return enc.trans.GetSexpr(&ns).Print(w)
}
