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

// Package markdown provides a parser for CommonMark, mapped onto the node
// kinds of the markup dialect.
package markdown

import (
	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"
	gmUtil "github.com/yuin/goldmark/util"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
	"github.com/Kexogg/clean-code/encoder/textenc"
	"github.com/Kexogg/clean-code/input"
	"github.com/Kexogg/clean-code/logger"
	"github.com/Kexogg/clean-code/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:     "markdown",
		AltNames: []string{"md"},
		Parse:    parse,
	})
}

func parse(inp *input.Input, log *logger.Logger) (ast.NodeSlice, error) {
	source := inp.Src[inp.Pos:]
	docNode := gm.DefaultParser().Parse(gmText.NewReader(source))
	p := mdP{source: source, log: log}
	return p.acceptBlockSlice(docNode), nil
}

type mdP struct {
	source []byte
	log    *logger.Logger
}

// acceptBlockSlice maps all blocks of the node. A paragraph ends its line,
// and consecutive blocks are separated by an empty line. A header already
// ends its line.
func (p *mdP) acceptBlockSlice(node gmAst.Node) ast.NodeSlice {
	var result ast.NodeSlice
	needSep := false
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		ns := p.acceptBlock(child)
		if len(ns) == 0 {
			continue
		}
		if needSep {
			result = append(result, lineBreak(), lineBreak())
		}
		result = append(result, ns...)
		needSep = child.Kind() != gmAst.KindHeading
	}
	return result
}

func (p *mdP) acceptBlock(node gmAst.Node) ast.NodeSlice {
	switch n := node.(type) {
	case *gmAst.Paragraph, *gmAst.TextBlock:
		return p.acceptChildren(n)
	case *gmAst.Heading:
		return ast.NodeSlice{ast.CreateElementNode(ast.KindHeader, p.acceptChildren(n)...)}
	case *gmAst.CodeBlock, *gmAst.FencedCodeBlock, *gmAst.HTMLBlock:
		return p.acceptRawText(n)
	case *gmAst.Blockquote, *gmAst.List, *gmAst.ListItem:
		return p.acceptBlockSlice(n)
	}
	p.log.Trace().Str("kind", node.Kind().String()).Msg("ignored block")
	return nil
}

// acceptRawText returns the lines of a verbatim block, separated by line
// breaks.
func (p *mdP) acceptRawText(node gmAst.Node) ast.NodeSlice {
	lines := node.Lines()
	result := make(ast.NodeSlice, 0, 2*lines.Len())
	for i := 0; i < lines.Len(); i++ {
		if i > 0 {
			result = append(result, lineBreak())
		}
		s := lines.At(i)
		line := s.Value(p.source)
		if l := len(line); l > 0 && line[l-1] == '\n' {
			line = line[:l-1]
		}
		if tn := ast.CreateTextNode(string(line)); tn != nil {
			result = append(result, tn)
		}
	}
	return result
}

func (p *mdP) acceptChildren(node gmAst.Node) ast.NodeSlice {
	result := make(ast.NodeSlice, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		result = append(result, p.acceptInline(child)...)
	}
	return result
}

func (p *mdP) acceptInline(node gmAst.Node) ast.NodeSlice {
	switch n := node.(type) {
	case *gmAst.Text:
		return p.acceptText(n)
	case *gmAst.String:
		return textSlice(string(n.Value))
	case *gmAst.CodeSpan:
		return textSlice(string(n.Text(p.source)))
	case *gmAst.Emphasis:
		kind := ast.KindItalic
		if n.Level == 2 {
			kind = ast.KindBold
		}
		return ast.NodeSlice{ast.CreateElementNode(kind, p.acceptChildren(n)...)}
	case *gmAst.Link:
		return p.acceptChildren(n)
	case *gmAst.Image:
		return p.acceptImage(n)
	case *gmAst.AutoLink:
		return textSlice(string(n.Label(p.source)))
	case *gmAst.RawHTML:
		var buf []byte
		for i := 0; i < n.Segments.Len(); i++ {
			s := n.Segments.At(i)
			buf = append(buf, s.Value(p.source)...)
		}
		return textSlice(string(buf))
	}
	p.log.Trace().Str("kind", node.Kind().String()).Msg("ignored inline")
	return nil
}

func (p *mdP) acceptText(node *gmAst.Text) ast.NodeSlice {
	value := node.Segment.Value(p.source)
	if !node.IsRaw() {
		value = cleanText(value)
	}
	result := textSlice(string(value))
	if node.HardLineBreak() || node.SoftLineBreak() {
		result = append(result, lineBreak())
	}
	return result
}

// cleanText removes backslash escapes and resolves character references.
func cleanText(text []byte) []byte {
	text = gmUtil.UnescapePunctuations(text)
	text = gmUtil.ResolveNumericReferences(text)
	return gmUtil.ResolveEntityNames(text)
}

// acceptImage maps an image onto the alt and src attributes. As in the
// markup dialect, both must be present.
func (p *mdP) acceptImage(node *gmAst.Image) ast.NodeSlice {
	en := &ast.ElementNode{Kind: ast.KindImage}
	alt, err := encoder.EncodeString(textenc.Create(), p.acceptChildren(node))
	src := string(cleanText(node.Destination))
	if err == nil && alt != "" && src != "" {
		en.Attrs = en.Attrs.Set("alt", alt).Set("src", src)
	}
	return ast.NodeSlice{en}
}

func textSlice(text string) ast.NodeSlice {
	if tn := ast.CreateTextNode(text); tn != nil {
		return ast.NodeSlice{tn}
	}
	return nil
}

func lineBreak() ast.Node { return ast.CreateElementNode(ast.KindLineBreak) }
