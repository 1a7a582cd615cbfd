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

package input

import (
	"unicode"
	"unicode/utf8"
)

// IsSpace returns true if rune is a whitespace. EOS is not a whitespace.
func IsSpace(ch rune) bool { return ch != EOS && unicode.IsSpace(ch) }

// IsBlank returns true if rune is a whitespace or EOS, i.e. there is no
// visible character.
func IsBlank(ch rune) bool { return ch == EOS || unicode.IsSpace(ch) }

// RuneBefore returns the rune that ends immediately before the byte position,
// or EOS if pos is at or before lower.
func RuneBefore(src []byte, lower, pos int) rune {
	if pos <= lower || pos > len(src) {
		return EOS
	}
	r, _ := utf8.DecodeLastRune(src[lower:pos])
	return r
}

// RuneAt returns the rune that starts at the byte position, or EOS if pos is
// at or after upper.
func RuneAt(src []byte, pos, upper int) rune {
	if pos < 0 || pos >= upper || pos >= len(src) {
		return EOS
	}
	r, _ := utf8.DecodeRune(src[pos:upper])
	return r
}
