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

package markup

import "github.com/Kexogg/clean-code/ast"

// buildFrame is an open element during tree building.
type buildFrame struct {
	open     candidate
	children ast.NodeSlice
}

// builder owns the frame stack and the text cursor. All state changes go
// through its methods, which are called from build only.
type builder struct {
	text    string
	stack   []*buildFrame
	result  ast.NodeSlice
	lastEnd int
}

// build assembles the valid candidates into a node forest. Positions of the
// candidates must refer to text.
func build(text string, cands []candidate) (ast.NodeSlice, error) {
	b := builder{text: text}
	for _, c := range cands {
		if err := b.add(c); err != nil {
			return nil, err
		}
		b.lastEnd = c.End()
	}
	if len(b.stack) > 0 {
		open := b.stack[len(b.stack)-1].open
		return nil, &InvariantError{Pos: open.Pos, Msg: "unclosed " + open.Kind.String()}
	}
	b.appendGap(len(text))
	return b.result, nil
}

func (b *builder) add(c candidate) error {
	if c.desc().single {
		b.appendGap(c.Pos)
		b.appendNode(&ast.ElementNode{Kind: c.Kind})
		return nil
	}
	if c.Close {
		if top := b.top(); top == nil || top.open.Kind != c.Kind {
			return &InvariantError{Pos: c.Pos, Msg: "closing " + c.Kind.String() + " without opener"}
		}
		b.closeFrame(c)
		return nil
	}
	b.appendGap(c.Pos)
	b.stack = append(b.stack, &buildFrame{open: c})
	return nil
}

func (b *builder) closeFrame(c candidate) {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	en := &ast.ElementNode{Kind: c.Kind}
	if c.Kind == ast.KindImage {
		en.Attrs = attributesFromSpan(b.text[f.open.Pos:c.End()])
	} else {
		if gap := b.text[b.lastEnd:c.Pos]; gap != "" {
			f.children = append(f.children, &ast.TextNode{Text: gap})
		}
		en.Children = f.children
	}
	b.appendNode(en)
}

func (b *builder) top() *buildFrame {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

// appendNode adds the node to the current frame, or to the result.
func (b *builder) appendNode(n ast.Node) {
	if top := b.top(); top != nil {
		top.children = append(top.children, n)
		return
	}
	b.result = append(b.result, n)
}

// appendGap adds the text between the last delimiter and pos, if any.
func (b *builder) appendGap(pos int) {
	if pos > b.lastEnd {
		b.appendNode(&ast.TextNode{Text: b.text[b.lastEnd:pos]})
	}
}
