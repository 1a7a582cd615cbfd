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

package encoder

// Environment specifies all data and functions that affects encoding.
type Environment struct {
	Lang  string // default language of a document
	Title string // document title, overrides the title derived from the first header
}

// GetLang returns the document language, or the given default.
func (env *Environment) GetLang(def string) string {
	if env != nil && env.Lang != "" {
		return env.Lang
	}
	return def
}

// GetTitle returns the explicit document title, if any.
func (env *Environment) GetTitle() (string, bool) {
	if env != nil && env.Title != "" {
		return env.Title, true
	}
	return "", false
}
