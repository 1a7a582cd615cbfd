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

// rejectFunc is called once for every candidate that becomes invalid.
type rejectFunc func(c candidate, reason string)

// openFrame is an opener on the validation stack.
type openFrame struct {
	idx       int // index into the candidates of the line
	kind      ast.Kind
	forbidden bool // the enclosing span does not allow this kind
}

// openStack is the validation stack. It keeps the stack positions of every
// kind, so the topmost open span of a kind is found in constant time.
type openStack struct {
	frames []openFrame
	byKind map[ast.Kind][]int
}

func (s *openStack) push(f openFrame) {
	if s.byKind == nil {
		s.byKind = make(map[ast.Kind][]int, len(catalog))
	}
	s.byKind[f.kind] = append(s.byKind[f.kind], len(s.frames))
	s.frames = append(s.frames, f)
}

// open returns the stack position of the topmost open span of the kind, or -1.
func (s *openStack) open(kind ast.Kind) int {
	if ks := s.byKind[kind]; len(ks) > 0 {
		return ks[len(ks)-1]
	}
	return -1
}

func (s *openStack) top() int { return len(s.frames) - 1 }

// truncate removes all frames from stack position n on.
func (s *openStack) truncate(n int) {
	for k := len(s.frames) - 1; k >= n; k-- {
		kind := s.frames[k].kind
		ks := s.byKind[kind]
		s.byKind[kind] = ks[:len(ks)-1]
	}
	s.frames = s.frames[:n]
}

// resolveLine validates the candidates of one line and returns the valid
// ones in document order.
//
// A closer that matches the top of the stack closes it. A closer of a deeper
// open span crosses all spans above it: everything from that deeper opener up
// to the closer becomes invalid. Spans still open at the end of the line are
// invalid, too.
func resolveLine(src []byte, ln *line, esc escapes, reject rejectFunc) []candidate {
	cands := ln.cands
	invalid := make([]bool, len(cands))
	closer := make([]bool, len(cands))
	invalidate := func(i int, reason string) {
		if !invalid[i] {
			invalid[i] = true
			reject(cands[i], reason)
		}
	}
	// Crossed ranges end at the current candidate and are either nested or
	// disjoint, so every candidate is walked at most once.
	crossLo, crossHi := -1, -1
	invalidateCrossing := func(lo, hi int) {
		from := lo
		if lo < crossLo {
			for j := lo; j < crossLo; j++ {
				invalidate(j, reasonCrossing)
			}
			from = crossHi + 1
		} else if lo <= crossHi {
			from = crossHi + 1
		}
		for j := from; j <= hi; j++ {
			invalidate(j, reasonCrossing)
		}
		if lo < crossLo || crossLo < 0 || lo > crossHi {
			crossLo = lo
		}
		crossHi = hi
	}

	var words *lineWords
	var stack openStack
	for i, c := range cands {
		d := c.desc()
		if d.single {
			continue
		}
		k := stack.open(c.Kind)
		if c.Close && k < 0 {
			invalidate(i, reasonNoOpener)
			continue
		}
		if words == nil && len(d.rules) > 0 {
			words = newLineWords(src, ln)
		}
		rc := ruleContext{
			src:     src,
			ln:      ln,
			words:   words,
			idx:     i,
			desc:    d,
			closing: k >= 0 && (d.isSymmetric() || c.Close),
			esc:     esc,
		}
		if reason := rc.check(); reason != "" {
			// A rejected closer of a buried span may still open a nested one.
			if !rc.closing || c.Close || k == stack.top() {
				invalidate(i, reason)
				continue
			}
			rc.closing = false
			if rc.check() != "" {
				invalidate(i, reason)
				continue
			}
		}

		switch {
		case rc.closing:
			if c.Kind == ast.KindHeader {
				// The header closer ends the line, spans inside are unclosed.
				for _, f := range stack.frames[k+1:] {
					invalidate(f.idx, reasonUnclosed)
				}
				stack.truncate(k + 1)
			}
			if top := stack.top(); k == top {
				f := stack.frames[top]
				stack.truncate(top)
				if f.forbidden {
					invalidate(f.idx, reasonForbidden)
					invalidate(i, reasonForbidden)
				} else if c.Pos <= cands[f.idx].End() {
					invalidate(f.idx, reasonEmpty)
					invalidate(i, reasonEmpty)
				}
				closer[i] = true
			} else {
				invalidateCrossing(stack.frames[k].idx, i)
				stack.truncate(k)
			}
		default:
			forbidden := false
			if top := stack.top(); top >= 0 {
				forbidden = descriptorOf[stack.frames[top].kind].disallows(c.Kind)
			}
			stack.push(openFrame{idx: i, kind: c.Kind, forbidden: forbidden})
		}
	}
	for _, f := range stack.frames {
		invalidate(f.idx, reasonUnclosed)
	}

	result := make([]candidate, 0, len(cands))
	for i, c := range cands {
		if !invalid[i] {
			c.Close = closer[i]
			result = append(result, c)
			continue
		}
		// The newline of a failed header is a plain line break again.
		if c.Kind == ast.KindHeader && c.Close && c.Width > 0 {
			result = append(result, candidate{Kind: ast.KindLineBreak, Pos: c.Pos, Width: c.Width})
		}
	}
	return result
}
