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

import (
	"strings"

	"github.com/Kexogg/clean-code/ast"
)

// Delimiter texts of the dialect.
const (
	delimBold      = "__"
	delimItalic    = "_"
	delimHeader    = "#"
	delimEOL       = "\n"
	delimImageOpen = "!["
	delimImageMid  = "]("
	delimImageEnd  = ")"
	escapeChar     = '\\'
)

// descriptor is the static description of one markup kind.
type descriptor struct {
	kind       ast.Kind
	opening    string
	closing    string // equal to opening for symmetric kinds
	single     bool   // a lone delimiter without content span
	disallowed []ast.Kind
	rules      []rule
}

func (d *descriptor) isSymmetric() bool { return d.opening == d.closing }

// disallows returns true, if a span of this kind must not contain a span of
// the given kind.
func (d *descriptor) disallows(child ast.Kind) bool {
	for _, k := range d.disallowed {
		if k == child {
			return true
		}
	}
	return false
}

// catalog lists all kinds in scan priority order. Longer delimiters must come
// before their prefixes.
var catalog = []*descriptor{
	{
		kind:    ast.KindBold,
		opening: delimBold,
		closing: delimBold,
		rules:   inlineRules,
	},
	{
		kind:       ast.KindItalic,
		opening:    delimItalic,
		closing:    delimItalic,
		disallowed: []ast.Kind{ast.KindBold},
		rules:      inlineRules,
	},
	{
		kind:    ast.KindHeader,
		opening: delimHeader,
		closing: delimEOL,
		rules:   []rule{ruleHeaderAtLineStart},
	},
	{
		kind:       ast.KindImage,
		opening:    delimImageOpen,
		closing:    delimImageEnd,
		disallowed: []ast.Kind{ast.KindBold, ast.KindItalic, ast.KindHeader, ast.KindImage},
	},
	{
		kind:    ast.KindLineBreak,
		opening: delimEOL,
		closing: delimEOL,
		single:  true,
	},
}

var descriptorOf = func() map[ast.Kind]*descriptor {
	result := make(map[ast.Kind]*descriptor, len(catalog))
	for _, d := range catalog {
		result[d.kind] = d
	}
	return result
}()

func hasPrefixAt(src []byte, pos int, s string) bool {
	return pos >= 0 && len(s) <= len(src)-pos && s == string(src[pos:pos+len(s)])
}

// matchesOpening returns the first kind in priority order, whose opening
// delimiter starts at the given position.
func matchesOpening(src []byte, pos int) (*descriptor, bool) {
	for _, d := range catalog {
		if hasPrefixAt(src, pos, d.opening) {
			return d, true
		}
	}
	return nil, false
}

// matchesClosing returns the first kind in priority order, whose closing
// delimiter starts at the given position.
func matchesClosing(src []byte, pos int) (*descriptor, bool) {
	for _, d := range catalog {
		if hasPrefixAt(src, pos, d.closing) {
			return d, true
		}
	}
	return nil, false
}

// delimiterWidth returns the byte length of the longest delimiter text that
// starts at pos, or 0.
func delimiterWidth(src []byte, pos int) int {
	width := 0
	for _, d := range catalog {
		if hasPrefixAt(src, pos, d.opening) && len(d.opening) > width {
			width = len(d.opening)
		}
		if hasPrefixAt(src, pos, d.closing) && len(d.closing) > width {
			width = len(d.closing)
		}
	}
	return width
}

// attributesFromSpan extracts the alt and src attributes of an image from the
// full image span "![alt](src)". A malformed span results in empty
// attributes.
func attributesFromSpan(span string) *ast.Attributes {
	if !strings.HasPrefix(span, delimImageOpen) || !strings.HasSuffix(span, delimImageEnd) {
		return nil
	}
	inner := span[len(delimImageOpen) : len(span)-len(delimImageEnd)]
	alt, src, found := strings.Cut(inner, delimImageMid)
	if !found || alt == "" || src == "" {
		return nil
	}
	return (&ast.Attributes{}).Set("alt", alt).Set("src", src)
}
