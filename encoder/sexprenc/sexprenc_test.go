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
	"strings"
	"testing"

	"codeberg.org/t73fde/sxpf"
	"github.com/Kexogg/clean-code/ast"
)

func TestGetSexprElement(t *testing.T) {
	t.Parallel()
	trans := NewTransformer()
	ns := ast.NodeSlice{
		ast.CreateElementNode(ast.KindBold, ast.CreateTextNode("bold")),
	}
	lst := trans.GetSexpr(&ns)
	if !trans.symInline.IsEqual(lst.Car()) {
		t.Fatalf("expected INLINE, got %v", lst.Car())
	}
	bold, ok := lst.Tail().Car().(*sxpf.List)
	if !ok {
		t.Fatalf("expected list, got %T", lst.Tail().Car())
	}
	if !trans.mapKindS[ast.KindBold].IsEqual(bold.Car()) {
		t.Errorf("expected BOLD, got %v", bold.Car())
	}
	text, ok := bold.Tail().Tail().Car().(*sxpf.List)
	if !ok {
		t.Fatalf("expected text list, got %T", bold.Tail().Tail().Car())
	}
	if !trans.symText.IsEqual(text.Car()) {
		t.Errorf("expected TEXT, got %v", text.Car())
	}
	if s, isString := text.Tail().Car().(sxpf.String); !isString || !s.IsEqual(sxpf.MakeString("bold")) {
		t.Errorf("expected string \"bold\", got %v", text.Tail().Car())
	}
}

func TestGetSexprAttributes(t *testing.T) {
	t.Parallel()
	trans := NewTransformer()
	img := &ast.ElementNode{
		Kind:  ast.KindImage,
		Attrs: (&ast.Attributes{}).Set("alt", "a cat").Set("src", "cat.png"),
	}
	lst := trans.GetSexpr(img)
	attrs, ok := lst.Tail().Car().(*sxpf.List)
	if !ok {
		t.Fatalf("expected attribute list, got %T", lst.Tail().Car())
	}
	if !trans.symQuote.IsEqual(attrs.Car()) {
		t.Errorf("expected QUOTE, got %v", attrs.Car())
	}
}

func TestWriteNodes(t *testing.T) {
	t.Parallel()
	ns := ast.NodeSlice{
		ast.CreateTextNode("Look "),
		&ast.ElementNode{
			Kind:  ast.KindImage,
			Attrs: (&ast.Attributes{}).Set("alt", "a cat").Set("src", "cat.png"),
		},
		ast.CreateElementNode(ast.KindLineBreak),
	}
	var sb strings.Builder
	length, err := Create().WriteNodes(&sb, ns)
	if err != nil {
		t.Fatal(err)
	}
	got := sb.String()
	if length != len(got) {
		t.Errorf("length %d, but wrote %d bytes", length, len(got))
	}
	for _, exp := range []string{"INLINE", "TEXT", `"Look "`, "IMAGE", "QUOTE", `"cat.png"`, "BREAK"} {
		if !strings.Contains(got, exp) {
			t.Errorf("%q not found in %q", exp, got)
		}
	}
	if strings.Count(got, "(") != strings.Count(got, ")") {
		t.Errorf("unbalanced parentheses: %q", got)
	}
}
