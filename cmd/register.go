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

package cmd

import (
	_ "github.com/Kexogg/clean-code/encoder/htmlenc"   // Allow to use HTML encoder.
	_ "github.com/Kexogg/clean-code/encoder/markupenc" // Allow to use markup encoder.
	_ "github.com/Kexogg/clean-code/encoder/mdenc"     // Allow to use Markdown encoder.
	_ "github.com/Kexogg/clean-code/encoder/nativeenc" // Allow to use native encoder.
	_ "github.com/Kexogg/clean-code/encoder/sexprenc"  // Allow to use s-expression encoder.
	_ "github.com/Kexogg/clean-code/encoder/textenc"   // Allow to use text encoder.
	_ "github.com/Kexogg/clean-code/parser/markdown"   // Allow to use markdown parser.
	_ "github.com/Kexogg/clean-code/parser/markup"     // Allow to use markup parser.
	_ "github.com/Kexogg/clean-code/parser/plain"      // Allow to use plain parser.
)
