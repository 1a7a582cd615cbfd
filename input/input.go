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

// Package input provides an abstraction for data to be read.
package input

import "unicode/utf8"

// Input is an abstract input source
type Input struct {
	// Read-only, will never change
	Src []byte // The source string

	// Read-only, will change
	Ch      rune // current character
	Pos     int  // byte position of Ch in src
	readPos int  // reading position (position after current character)
}

// NewInput creates a new input source.
func NewInput(src []byte) *Input {
	inp := &Input{Src: src}
	inp.Next()
	return inp
}

// EOS = End of source
const EOS = rune(-1)

// Next reads the next rune into inp.Ch and returns it too.
func (inp *Input) Next() rune {
	if inp.readPos >= len(inp.Src) {
		inp.Pos = len(inp.Src)
		inp.Ch = EOS
		return EOS
	}
	inp.Pos = inp.readPos
	r, w := rune(inp.Src[inp.readPos]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(inp.Src[inp.readPos:])
	}
	inp.readPos += w
	inp.Ch = r
	return r
}

// Peek returns the rune following the most recently read rune without
// advancing. If end-of-source was already found peek returns EOS.
func (inp *Input) Peek() rune {
	if pos := inp.readPos; pos < len(inp.Src) {
		r := rune(inp.Src[pos])
		if r >= utf8.RuneSelf {
			r, _ = utf8.DecodeRune(inp.Src[pos:])
		}
		return r
	}
	return EOS
}

// HasPrefix checks if the given string starts at the current position,
// without advancing.
func (inp *Input) HasPrefix(s string) bool {
	return inp.HasPrefixAt(inp.Pos, s)
}

// HasPrefixAt checks if the given string starts at the given byte position.
func (inp *Input) HasPrefixAt(pos int, s string) bool {
	if s == "" || pos < 0 || len(s) > len(inp.Src)-pos {
		return false
	}
	// According to internal documentation of bytes.Equal, the string() will not allocate any memory.
	return s == string(inp.Src[pos:pos+len(s)])
}

// Accept checks if the given string is a prefix of the text to be parsed.
// If successful, advance position and current character.
// If not successful, everything remains as it is.
func (inp *Input) Accept(s string) bool {
	if inp.HasPrefix(s) {
		inp.readPos = inp.Pos + len(s)
		inp.Next()
		return true
	}
	return false
}

// SetPos allows to reset the read position.
func (inp *Input) SetPos(pos int) {
	if inp.Pos != pos {
		inp.readPos = pos
		inp.Next()
	}
}

// IsEOLEOS returns true if char is either EOS or EOL.
func IsEOLEOS(ch rune) bool {
	switch ch {
	case EOS, '\n', '\r':
		return true
	}
	return false
}

// EatEOL transforms both "\r" and "\r\n" into "\n".
func (inp *Input) EatEOL() {
	switch inp.Ch {
	case '\r':
		if inp.Peek() == '\n' {
			inp.Next()
		}
		inp.Ch = '\n'
		inp.Next()
	case '\n':
		inp.Next()
	}
}

// SkipToEOL reads until the next end-of-line.
func (inp *Input) SkipToEOL() {
	for !IsEOLEOS(inp.Ch) {
		inp.Next()
	}
}

// NormalizeEOL reads the remaining input and returns it with every line
// ending ("\r\n", "\r", "\n") replaced by a single "\n". Empty lines and a
// trailing line ending are kept.
func (inp *Input) NormalizeEOL() []byte {
	result := make([]byte, 0, len(inp.Src)-inp.Pos+1)
	for {
		posL := inp.Pos
		inp.SkipToEOL()
		result = append(result, inp.Src[posL:inp.Pos]...)
		if inp.Ch == EOS {
			return result
		}
		inp.EatEOL()
		result = append(result, '\n')
	}
}
