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

// Package plain provides a parser for plain text data.
package plain

import (
	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/input"
	"github.com/Kexogg/clean-code/logger"
	"github.com/Kexogg/clean-code/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:     parser.DefaultSyntax,
		AltNames: []string{"text", "txt"},
		Parse:    parse,
	})
}

// parse returns every line as a text node. Lines are separated by line
// break elements; any line ending is accepted.
func parse(inp *input.Input, _ *logger.Logger) (ast.NodeSlice, error) {
	var result ast.NodeSlice
	for inp.Ch != input.EOS {
		posL := inp.Pos
		inp.SkipToEOL()
		if inp.Pos > posL {
			result = append(result, &ast.TextNode{Text: string(inp.Src[posL:inp.Pos])})
		}
		if inp.Ch == input.EOS {
			break
		}
		inp.EatEOL()
		result = append(result, &ast.ElementNode{Kind: ast.KindLineBreak})
	}
	return result, nil
}
