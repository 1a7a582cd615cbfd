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

package parser

import (
	"strings"

	"github.com/Kexogg/clean-code/ast"
)

// Clean merges adjacent text nodes and removes empty text nodes, at every
// level of the forest. Elements of self-closing kinds lose their children.
func Clean(ns ast.NodeSlice) ast.NodeSlice {
	cv := cleanupVisitor{}
	return cv.cleanSlice(ns)
}

type cleanupVisitor struct {
	sb strings.Builder
}

func (cv *cleanupVisitor) cleanSlice(ns ast.NodeSlice) ast.NodeSlice {
	if len(ns) == 0 {
		return ns
	}
	result := ns[:0]
	var pending *ast.TextNode
	flush := func() {
		if pending != nil {
			if cv.sb.Len() > 0 {
				pending.Text = cv.sb.String()
				cv.sb.Reset()
			}
			result = append(result, pending)
			pending = nil
		}
	}
	for _, n := range ns {
		switch n := n.(type) {
		case *ast.TextNode:
			if n == nil || n.Text == "" {
				continue
			}
			if pending == nil {
				pending = n
				continue
			}
			if cv.sb.Len() == 0 {
				cv.sb.WriteString(pending.Text)
			}
			cv.sb.WriteString(n.Text)
		case *ast.ElementNode:
			flush()
			if n.Kind.IsSelfClosing() {
				n.Children = nil
			} else {
				n.Children = cv.cleanSlice(n.Children)
			}
			result = append(result, n)
		case nil:
		default:
			flush()
			result = append(result, n)
		}
	}
	flush()
	return result
}
