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

// Package ast provides the abstract syntax tree for parsed markup text.
//
// A parsed document is a forest of nodes (NodeSlice). A node is either a
// TextNode holding literal text or an ElementNode of some Kind with optional
// attributes and child nodes.
package ast

// Kind is the closed set of markup elements.
type Kind uint8

// Constants for Kind.
const (
	_             Kind = iota
	KindBold           // Strong emphasis, rendered as <strong>
	KindItalic         // Emphasis, rendered as <em>
	KindHeader         // Level one heading, rendered as <h1>
	KindImage          // Image with alt text and source
	KindLineBreak      // Hard line break
)

type kindInfo struct {
	name        string
	element     string
	selfClosing bool
}

var kindTable = [...]kindInfo{
	KindBold:      {"BOLD", "strong", false},
	KindItalic:    {"ITALIC", "em", false},
	KindHeader:    {"HEADER", "h1", false},
	KindImage:     {"IMAGE", "img", true},
	KindLineBreak: {"BREAK", "br", true},
}

// Kinds lists all valid kinds in catalog order.
var Kinds = []Kind{KindBold, KindItalic, KindHeader, KindImage, KindLineBreak}

// IsValid returns true, if the kind is one of the defined constants.
func (k Kind) IsValid() bool { return KindBold <= k && k <= KindLineBreak }

func (k Kind) String() string {
	if k.IsValid() {
		return kindTable[k].name
	}
	return "UNKNOWN"
}

// Element returns the name of the HTML element for this kind.
func (k Kind) Element() string {
	if k.IsValid() {
		return kindTable[k].element
	}
	return ""
}

// IsSelfClosing returns true, if an element of this kind never has children.
func (k Kind) IsSelfClosing() bool { return k.IsValid() && kindTable[k].selfClosing }

// Node is the interface, all nodes must implement.
type Node interface {
	WalkChildren(v Visitor)
}

// NodeSlice is an ordered list of nodes, e.g. the result of parsing.
type NodeSlice []Node

// WalkChildren walks down all nodes of the slice.
func (ns *NodeSlice) WalkChildren(v Visitor) {
	if ns != nil {
		for _, n := range *ns {
			Walk(v, n)
		}
	}
}

// Text returns the concatenated literal text of all text nodes in the slice,
// in document order.
func (ns NodeSlice) Text() string {
	var buf []byte
	for _, n := range ns {
		buf = appendText(buf, n)
	}
	return string(buf)
}

func appendText(buf []byte, n Node) []byte {
	switch n := n.(type) {
	case *TextNode:
		return append(buf, n.Text...)
	case *ElementNode:
		for _, c := range n.Children {
			buf = appendText(buf, c)
		}
	}
	return buf
}

// TextNode is literal text.
type TextNode struct {
	Text string
}

// WalkChildren does nothing.
func (*TextNode) WalkChildren(Visitor) { /* No children*/ }

// ElementNode is a markup element with its children.
type ElementNode struct {
	Kind     Kind
	Attrs    *Attributes
	Children NodeSlice
}

// WalkChildren walks to the child nodes.
func (en *ElementNode) WalkChildren(v Visitor) { WalkNodeSlice(v, en.Children) }

// CreateTextNode returns a text node, or nil if the text is empty.
func CreateTextNode(text string) *TextNode {
	if text == "" {
		return nil
	}
	return &TextNode{Text: text}
}

// CreateElementNode creates an element node with the given children.
func CreateElementNode(kind Kind, children ...Node) *ElementNode {
	return &ElementNode{Kind: kind, Children: children}
}
