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

// Package markupenc encodes the abstract syntax tree back into the markup
// dialect.
package markupenc

import (
	"io"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
)

func init() {
	encoder.Register("markup", encoder.Info{
		Create: func(*encoder.Environment) encoder.Encoder { return &markupEncoder{} },
	})
}

type markupEncoder struct{}

// WriteDocument writes the nodes in markup form.
func (me *markupEncoder) WriteDocument(w io.Writer, ns ast.NodeSlice) (int, error) {
	return me.WriteNodes(w, ns)
}

// WriteNodes writes the nodes in markup form. Every character of a text node
// that could start a delimiter is escaped.
func (*markupEncoder) WriteNodes(w io.Writer, ns ast.NodeSlice) (int, error) {
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

var delimiters = map[ast.Kind][2]string{
	ast.KindBold:   {"__", "__"},
	ast.KindItalic: {"_", "_"},
	ast.KindHeader: {"#", "\n"},
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.TextNode:
		v.writeEscaped(n.Text)
	case *ast.ElementNode:
		v.visitElement(n)
	default:
		return v
	}
	return nil
}

func (v *visitor) visitElement(en *ast.ElementNode) {
	switch en.Kind {
	case ast.KindLineBreak:
		v.b.WriteByte('\n')
	case ast.KindImage:
		alt, _ := en.Attrs.Get("alt")
		src, _ := en.Attrs.Get("src")
		v.b.WriteString("![")
		v.writeEscaped(alt)
		v.b.WriteString("](")
		v.writeEscaped(src)
		v.b.WriteByte(')')
	default:
		delims, ok := delimiters[en.Kind]
		if !ok {
			ast.WalkNodeSlice(v, en.Children)
			return
		}
		v.b.WriteString(delims[0])
		ast.WalkNodeSlice(v, en.Children)
		v.b.WriteString(delims[1])
	}
}

// writeEscaped escapes every character of s that could start a delimiter.
// An escape makes the whole delimiter text after it literal, so runs of
// underscores are escaped in pairs. An odd run starts with a single escaped
// underscore, which is then followed by an escape character.
func (v *visitor) writeEscaped(s string) {
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '_':
			j := i + 1
			for j < len(s) && s[j] == '_' {
				j++
			}
			v.b.WriteString(s[last:i])
			v.writeUnderscores(j - i)
			last = j
			i = j - 1
			continue
		case '\\', '#', ')', '\n':
		case '!':
			if i+1 >= len(s) || s[i+1] != '[' {
				continue
			}
		default:
			continue
		}
		v.b.WriteString(s[last:i])
		v.b.WriteByte('\\')
		last = i
	}
	v.b.WriteString(s[last:])
}

func (v *visitor) writeUnderscores(n int) {
	if n%2 == 1 {
		v.b.WriteString(`\_`)
		n--
	}
	for ; n > 0; n -= 2 {
		v.b.WriteString(`\__`)
	}
}
