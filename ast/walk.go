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

package ast

// Visitor is a visitor for walking the AST.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses the AST.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	node.WalkChildren(v)
	v.Visit(nil)
}

// WalkNodeSlice traverses a node slice.
func WalkNodeSlice(v Visitor, ns NodeSlice) {
	for _, n := range ns {
		Walk(v, n)
	}
}
