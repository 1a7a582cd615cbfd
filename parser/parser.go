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

// Package parser provides a generic interface to a range of different parsers.
package parser

import (
	"fmt"
	"sort"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/input"
	"github.com/Kexogg/clean-code/logger"
)

// DefaultSyntax is used, if a requested syntax is not registered.
const DefaultSyntax = "plain"

// Info describes a single parser.
//
// Parse reads the input from its current position up to its end.
type Info struct {
	Name     string
	AltNames []string
	Parse    func(*input.Input, *logger.Logger) (ast.NodeSlice, error)
}

var registry = map[string]*Info{}

// Register the parser (info) for later retrieval.
func Register(pi *Info) {
	if _, ok := registry[pi.Name]; ok {
		panic(fmt.Sprintf("Parser %q already registered", pi.Name))
	}
	registry[pi.Name] = pi
	for _, alt := range pi.AltNames {
		if _, ok := registry[alt]; ok {
			panic(fmt.Sprintf("Parser %q already registered", alt))
		}
		registry[alt] = pi
	}
}

// GetSyntaxes returns a sorted list of syntaxes implemented by all registered
// parsers, including alternative names.
func GetSyntaxes() []string {
	result := make([]string, 0, len(registry))
	for syntax := range registry {
		result = append(result, syntax)
	}
	sort.Strings(result)
	return result
}

// Get the parser (info) by name. If name not found, use a default parser.
func Get(name string) *Info {
	if pi := registry[name]; pi != nil {
		return pi
	}
	if pi := registry[DefaultSyntax]; pi != nil {
		return pi
	}
	panic(fmt.Sprintf("No parser for %q found", name))
}

// Has returns true, if a parser for the given syntax is registered.
func Has(name string) bool {
	_, found := registry[name]
	return found
}

// Parse parses the input with the parser of the given syntax. Adjacent text
// nodes of the result are merged.
func Parse(inp *input.Input, syntax string, log *logger.Logger) (ast.NodeSlice, error) {
	ns, err := Get(syntax).Parse(inp, log)
	if err != nil {
		return nil, err
	}
	return Clean(ns), nil
}
