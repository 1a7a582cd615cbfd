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

import "sort"

// escapes holds the sorted byte offsets of all effective escape characters.
type escapes []int

// scanEscapes finds all effective escape characters. An escape character is
// effective if it is followed by another escape character or by the start of
// a delimiter. Two escape characters in a row are both consumed.
func scanEscapes(src []byte) escapes {
	var result escapes
	for pos := 0; pos < len(src); pos++ {
		if src[pos] != escapeChar || pos+1 >= len(src) {
			continue
		}
		if src[pos+1] == escapeChar {
			result = append(result, pos)
			pos++
			continue
		}
		if delimiterWidth(src, pos+1) > 0 {
			result = append(result, pos)
		}
	}
	return result
}

// isEscape returns true, if there is an effective escape character at pos.
func (esc escapes) isEscape(pos int) bool {
	i := sort.SearchInts(esc, pos)
	return i < len(esc) && esc[i] == pos
}

// isEscaped returns true, if the character at pos is escaped.
func (esc escapes) isEscaped(pos int) bool { return esc.isEscape(pos - 1) }

// countBefore returns the number of escape characters before pos.
func (esc escapes) countBefore(pos int) int { return sort.SearchInts(esc, pos) }

// strip removes all escape characters from src.
func (esc escapes) strip(src []byte) string {
	if len(esc) == 0 {
		return string(src)
	}
	buf := make([]byte, 0, len(src)-len(esc))
	last := 0
	for _, pos := range esc {
		buf = append(buf, src[last:pos]...)
		last = pos + 1
	}
	buf = append(buf, src[last:]...)
	return string(buf)
}
