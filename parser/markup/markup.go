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

// Package markup provides a parser for the lightweight markup dialect.
//
// The dialect knows bold text (__bold__), italic text (_italic_), a header
// line (#header), images (![alt](src)), line breaks and backslash escapes.
// Invalid markup is never an error: delimiters that do not form a valid span
// stay as literal text.
//
// Parsing has two passes. The first one scans the whole source for escape
// characters and delimiter candidates, line by line. The second one validates
// the candidates of each line, resolves crossing spans and removes the
// escape characters. Finally, the valid delimiters are assembled into a forest
// of nodes.
package markup

import (
	"fmt"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/input"
	"github.com/Kexogg/clean-code/logger"
	"github.com/Kexogg/clean-code/parser"
)

func init() {
	parser.Register(&parser.Info{
		Name:     "markup",
		AltNames: []string{"mdl", "md-lite"},
		Parse: func(inp *input.Input, log *logger.Logger) (ast.NodeSlice, error) {
			return New(log).Parse(inp.Src[inp.Pos:])
		},
	})
}

// InvariantError signals an internal inconsistency between validation and
// tree building. It is a defect, not a problem of the parsed text.
type InvariantError struct {
	Pos int // byte position in the escape-stripped text
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("markup invariant violated at %d: %s", e.Pos, e.Msg)
}

// Parser parses markup text. The zero value is a parser without logging.
type Parser struct {
	log *logger.Logger
}

// New creates a new parser. Every candidate and every rejection is logged at
// trace level.
func New(log *logger.Logger) *Parser { return &Parser{log: log} }

// Parse parses the source into a node forest.
func (p *Parser) Parse(src []byte) (ast.NodeSlice, error) {
	esc := scanEscapes(src)
	lines := scanLines(input.NewInput(src), esc)
	p.traceCandidates(lines)

	var valid []candidate
	for i := range lines {
		valid = append(valid, resolveLine(src, &lines[i], esc, p.traceReject)...)
	}
	for i := range valid {
		valid[i].Pos -= esc.countBefore(valid[i].Pos)
	}
	return build(esc.strip(src), valid)
}

// Parse parses the source text with a parser without logging.
func Parse(src string) (ast.NodeSlice, error) {
	var p Parser
	return p.Parse([]byte(src))
}

func (p *Parser) traceCandidates(lines []line) {
	if !p.log.Enabled(logger.TraceLevel) {
		return
	}
	for i, ln := range lines {
		for _, c := range ln.cands {
			p.log.Trace().Int("line", i+1).Delim(c.Kind.String(), c.Pos, c.Width).Msg("candidate")
		}
	}
}

func (p *Parser) traceReject(c candidate, reason string) {
	p.log.Trace().Delim(c.Kind.String(), c.Pos, c.Width).Str("reason", reason).Msg("rejected")
}
