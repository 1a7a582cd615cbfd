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

package strfun

import (
	"io"
	"strings"
)

var (
	escQuot = []byte("&quot;")
	escAmp  = []byte("&amp;")
	escApos = []byte("&#39;")
	escLt   = []byte("&lt;")
	escGt   = []byte("&gt;")
	escNull = []byte("\uFFFD")
)

// HTMLEscape writes the string to the given writer, where every rune that has
// a special meaning in HTML text or in a quoted attribute value is escaped.
func HTMLEscape(w io.Writer, s string) (int, error) {
	var esc []byte
	last, length := 0, 0
	for i, ch := range s {
		switch ch {
		case '\000':
			esc = escNull
		case '"':
			esc = escQuot
		case '\'':
			esc = escApos
		case '&':
			esc = escAmp
		case '<':
			esc = escLt
		case '>':
			esc = escGt
		default:
			continue
		}
		l, err := io.WriteString(w, s[last:i])
		length += l
		if err != nil {
			return length, err
		}
		l, err = w.Write(esc)
		length += l
		if err != nil {
			return length, err
		}
		last = i + 1
	}
	l, err := io.WriteString(w, s[last:])
	return length + l, err
}

// HTMLEscapeString returns the escaped form of s.
func HTMLEscapeString(s string) string {
	var sb strings.Builder
	HTMLEscape(&sb, s)
	return sb.String()
}
