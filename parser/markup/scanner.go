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
	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/input"
)

// candidate is a delimiter occurrence, not yet validated.
type candidate struct {
	Kind  ast.Kind
	Pos   int  // byte offset in the source
	Width int  // byte length of the delimiter text, 0 for an implicit closer
	Close bool // candidate acts as closer, always true for closing-only texts like ")"
}

// End returns the byte offset just after the delimiter text.
func (c candidate) End() int { return c.Pos + c.Width }

func (c candidate) desc() *descriptor { return descriptorOf[c.Kind] }

// line is the unit of validation: the byte range [start, end) of one line
// without its terminating newline, and all candidates found there. A newline
// candidate, if any, is the last candidate of the line.
type line struct {
	start, end int
	cands      []candidate
}

// isHeaderLine returns true, if the first candidate of the line is a header
// opener at the very start of the line.
func (l *line) isHeaderLine() bool {
	return len(l.cands) > 0 && l.cands[0].Kind == ast.KindHeader && l.cands[0].Pos == l.start
}

// scanLines walks the source once and collects the candidates of every line.
// Escaped delimiters are skipped together with their full delimiter text.
func scanLines(inp *input.Input, esc escapes) []line {
	var result []line
	cur := line{start: inp.Pos}
	pendingImages := 0
	for inp.Ch != input.EOS {
		pos := inp.Pos
		if esc.isEscaped(pos) {
			if w := delimiterWidth(inp.Src, pos); w > 0 {
				inp.SetPos(pos + w)
			} else {
				inp.Next()
			}
			continue
		}

		if inp.Ch == '\n' {
			cand := candidate{Kind: ast.KindLineBreak, Pos: pos, Width: len(delimEOL)}
			if cur.isHeaderLine() {
				cand.Kind, cand.Close = ast.KindHeader, true
			}
			cur.end = pos
			cur.cands = append(cur.cands, cand)
			result = append(result, cur)
			inp.Next()
			cur = line{start: inp.Pos}
			pendingImages = 0
			continue
		}

		if pendingImages > 0 && inp.HasPrefix(delimImageEnd) {
			cur.cands = append(cur.cands, candidate{Kind: ast.KindImage, Pos: pos, Width: len(delimImageEnd), Close: true})
			pendingImages--
			inp.Next()
			continue
		}

		if d, ok := matchesOpening(inp.Src, pos); ok {
			cur.cands = append(cur.cands, candidate{Kind: d.kind, Pos: pos, Width: len(d.opening)})
			if d.kind == ast.KindImage {
				pendingImages++
			}
			inp.Accept(d.opening)
			continue
		}
		inp.Next()
	}
	cur.end = inp.Pos
	if cur.isHeaderLine() {
		cur.cands = append(cur.cands, candidate{Kind: ast.KindHeader, Pos: cur.end, Close: true})
	}
	return append(result, cur)
}
