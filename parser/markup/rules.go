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
	"unicode"
	"unicode/utf8"

	"github.com/Kexogg/clean-code/input"
)

// ruleContext is everything a rule needs to judge one candidate.
type ruleContext struct {
	src     []byte
	ln      *line
	words   *lineWords
	idx     int // index of the candidate in ln.cands
	desc    *descriptor
	closing bool // candidate is interpreted as a closer
	esc     escapes
}

// rule checks one candidate and returns a reason for rejection, or "".
type rule func(*ruleContext) string

// Reasons for rejecting a candidate.
const (
	reasonDigits        = "adjacent to digits"
	reasonSpaceBoundary = "whitespace at content boundary"
	reasonEmpty         = "empty content"
	reasonCrossWord     = "crossing word boundary"
	reasonNotLineStart  = "not at start of line"
	reasonCrossing      = "crossing another span"
	reasonForbidden     = "disallowed in parent"
	reasonUnclosed      = "not closed"
	reasonNoOpener      = "no opener"
)

var inlineRules = []rule{ruleDigits, ruleSpaceBoundary, ruleEmptyContent, ruleCrossWord}

func (rc *ruleContext) cand() candidate { return rc.ln.cands[rc.idx] }

// before returns the rune before the candidate, or EOS at the line start.
func (rc *ruleContext) before() rune {
	return input.RuneBefore(rc.src, rc.ln.start, rc.cand().Pos)
}

// after returns the rune after the candidate, or EOS at the line end.
func (rc *ruleContext) after() rune {
	return input.RuneAt(rc.src, rc.cand().End(), rc.ln.end)
}

// check applies all rules of the candidate kind.
func (rc *ruleContext) check() string {
	for _, r := range rc.desc.rules {
		if reason := r(rc); reason != "" {
			return reason
		}
	}
	return ""
}

// lineWords indexes the words of one line, where a word is a run of non-space
// runes. All queries take constant time, so the rules stay linear in the
// length of the line.
type lineWords struct {
	src       []byte
	start     int
	wordStart []int // per line offset: offset of the word it belongs to
	wordEnd   []int // per line offset: offset after the word it belongs to
	digits    []int // digits[o]: number of digits starting before offset o
	occ       map[string][]int
}

func newLineWords(src []byte, ln *line) *lineWords {
	n := ln.end - ln.start
	lw := &lineWords{
		src:       src,
		start:     ln.start,
		wordStart: make([]int, n+1),
		wordEnd:   make([]int, n+1),
		digits:    make([]int, n+1),
	}
	space := make([]bool, n+1)
	space[n] = true
	for o := 0; o < n; {
		r, size := utf8.DecodeRune(src[ln.start+o : ln.end])
		isSpace, digit := unicode.IsSpace(r), 0
		if unicode.IsDigit(r) {
			digit = 1
		}
		for i := 0; i < size; i++ {
			space[o+i] = isSpace
			lw.digits[o+i+1] = lw.digits[o] + digit
		}
		o += size
	}
	ws := 0
	for o := 0; o <= n; o++ {
		if space[o] {
			ws = o + 1
			lw.wordStart[o] = o
			continue
		}
		lw.wordStart[o] = ws
	}
	we := n
	for o := n; o >= 0; o-- {
		if space[o] {
			we = o
		}
		lw.wordEnd[o] = we
	}
	return lw
}

// word returns the byte range of the word around pos.
func (lw *lineWords) word(pos int) (int, int) {
	o := pos - lw.start
	return lw.start + lw.wordStart[o], lw.start + lw.wordEnd[o]
}

// hasDigit returns true, if a digit starts in the byte range [from, to).
func (lw *lineWords) hasDigit(from, to int) bool {
	return from < to && lw.digits[to-lw.start] > lw.digits[from-lw.start]
}

// contains returns true, if the text s starts anywhere in [from, to).
func (lw *lineWords) contains(s string, from, to int) bool {
	if from >= to {
		return false
	}
	occ, ok := lw.occ[s]
	if !ok {
		n := len(lw.digits) - 1
		occ = make([]int, n+1)
		for o := 0; o < n; o++ {
			occ[o+1] = occ[o]
			if hasPrefixAt(lw.src, lw.start+o, s) {
				occ[o+1]++
			}
		}
		if lw.occ == nil {
			lw.occ = make(map[string][]int, 2)
		}
		lw.occ[s] = occ
	}
	return occ[to-lw.start] > occ[from-lw.start]
}

// ruleDigits rejects a delimiter inside a word that contains a digit.
func ruleDigits(rc *ruleContext) string {
	if input.IsBlank(rc.before()) || input.IsBlank(rc.after()) {
		return ""
	}
	if rc.words.hasDigit(rc.words.word(rc.cand().Pos)) {
		return reasonDigits
	}
	return ""
}

// ruleSpaceBoundary rejects an opener followed by whitespace and a closer
// preceded by whitespace.
func ruleSpaceBoundary(rc *ruleContext) string {
	if rc.closing {
		if input.IsBlank(rc.before()) {
			return reasonSpaceBoundary
		}
	} else if input.IsBlank(rc.after()) {
		return reasonSpaceBoundary
	}
	return ""
}

// ruleEmptyContent rejects an opener that is immediately followed by a
// delimiter of the same kind.
func ruleEmptyContent(rc *ruleContext) string {
	if rc.closing || rc.idx+1 >= len(rc.ln.cands) {
		return ""
	}
	c, next := rc.cand(), rc.ln.cands[rc.idx+1]
	if next.Kind == c.Kind && next.Pos <= c.End() {
		return reasonEmpty
	}
	return ""
}

// ruleCrossWord rejects a delimiter inside a word, if its partner cannot be
// found within the same word. Delimiters at the word boundary, next to
// another delimiter or next to an escape are always acceptable.
func ruleCrossWord(rc *ruleContext) string {
	if input.IsBlank(rc.before()) || input.IsBlank(rc.after()) {
		return ""
	}
	c := rc.cand()
	if rc.idx > 0 {
		if prev := rc.ln.cands[rc.idx-1]; prev.Width > 0 && prev.End() == c.Pos {
			return ""
		}
	}
	if rc.esc.isEscaped(c.Pos-1) || rc.esc.isEscape(c.End()) {
		return ""
	}
	from, to := rc.words.word(c.Pos)
	if rc.words.contains(rc.desc.closing, c.End(), to) || rc.words.contains(rc.desc.opening, from, c.Pos) {
		return ""
	}
	return reasonCrossWord
}

// ruleHeaderAtLineStart rejects a header opener that does not start its line.
func ruleHeaderAtLineStart(rc *ruleContext) string {
	if !rc.closing && rc.cand().Pos != rc.ln.start {
		return reasonNotLineStart
	}
	return ""
}
