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

// Package strfun provides some string functions.
package strfun

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeNFC returns src in Unicode normalization form C. Decomposed
// sequences like "é" become one rune, so that word and digit checks see
// the same characters a reader sees.
func NormalizeNFC(src []byte) []byte {
	if norm.NFC.IsNormal(src) {
		return src
	}
	return norm.NFC.Bytes(src)
}

// Length returns the number of runes in the given string.
func Length(s string) int { return utf8.RuneCountInString(s) }

// JustifyLeft ensures that the string has a defined length.
func JustifyLeft(s string, maxLen int, pad rune) string {
	if maxLen < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
		runes[maxLen-1] = '‥'
	}

	var sb strings.Builder
	sb.WriteString(string(runes))
	for i := len(runes); i < maxLen; i++ {
		sb.WriteRune(pad)
	}
	return sb.String()
}
