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

package sexprenc

import (
	"fmt"

	"codeberg.org/t73fde/sxpf"
	"github.com/Kexogg/clean-code/ast"
)

// NewTransformer returns a new transformer to create s-expressions from AST nodes.
func NewTransformer() *Transformer {
	sf := sxpf.MakeMappedFactory()
	t := Transformer{
		sf:        sf,
		symInline: sf.Make("INLINE"),
		symText:   sf.Make("TEXT"),
		symQuote:  sf.Make("QUOTE"),
		mapKindS:  make(map[ast.Kind]*sxpf.Symbol, len(ast.Kinds)),
	}
	for _, k := range ast.Kinds {
		t.mapKindS[k] = sf.Make(k.String())
	}
	return &t
}

// Transformer maps nodes to s-expressions. Symbols are shared by all
// expressions it creates.
type Transformer struct {
	sf        sxpf.SymbolFactory
	symInline *sxpf.Symbol
	symText   *sxpf.Symbol
	symQuote  *sxpf.Symbol
	mapKindS  map[ast.Kind]*sxpf.Symbol
}

// GetSexpr returns the s-expression of the given node.
//
// A node slice becomes (INLINE node...), a text node (TEXT "text"), and an
// element (KIND attributes child...). Attributes are either the empty list
// or (QUOTE ("key" . "value")...).
func (t *Transformer) GetSexpr(node ast.Node) *sxpf.List {
	switch n := node.(type) {
	case *ast.NodeSlice:
		return t.getNodeSlice(*n)
	case *ast.TextNode:
		return sxpf.MakeList(t.symText, sxpf.MakeString(n.Text))
	case *ast.ElementNode:
		return t.getNodeSlice(n.Children).Tail().
			Cons(t.getAttributes(n.Attrs)).
			Cons(t.getKind(n.Kind))
	}
	return sxpf.MakeList(t.sf.Make("UNKNOWN"), sxpf.MakeString(fmt.Sprintf("%T", node)))
}

func (t *Transformer) getNodeSlice(ns ast.NodeSlice) *sxpf.List {
	objs := make([]sxpf.Object, len(ns))
	for i, n := range ns {
		objs[i] = t.GetSexpr(n)
	}
	return sxpf.MakeList(objs...).Cons(t.symInline)
}

func (t *Transformer) getAttributes(a *ast.Attributes) sxpf.Object {
	if a.IsEmpty() {
		return sxpf.Nil()
	}
	pairs := a.Pairs()
	objs := make([]sxpf.Object, 0, len(pairs))
	for _, p := range pairs {
		objs = append(objs, sxpf.Cons(sxpf.MakeString(p.Key), sxpf.MakeString(p.Value)))
	}
	return sxpf.MakeList(objs...).Cons(t.symQuote)
}

func (t *Transformer) getKind(k ast.Kind) *sxpf.Symbol {
	if sym, found := t.mapKindS[k]; found {
		return sym
	}
	return t.sf.Make(fmt.Sprintf("**%v:NOT-FOUND**", k))
}
