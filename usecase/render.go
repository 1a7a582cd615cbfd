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

// Package usecase provides (business) use cases for the markup renderer.
package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Kexogg/clean-code/ast"
	"github.com/Kexogg/clean-code/encoder"
	"github.com/Kexogg/clean-code/input"
	"github.com/Kexogg/clean-code/logger"
	"github.com/Kexogg/clean-code/parser"
	"github.com/Kexogg/clean-code/strfun"
)

// Render is the data for this use case.
type Render struct {
	log       *logger.Logger
	syntax    string
	encoding  string
	env       *encoder.Environment
	normalize bool
}

// NewRender creates a new use case. It fails if the encoding is unknown.
func NewRender(log *logger.Logger, syntax, encoding string, env *encoder.Environment, normalize bool) (Render, error) {
	if encoder.Create(encoding, env) == nil {
		return Render{}, fmt.Errorf("unknown encoding %q", encoding)
	}
	if !parser.Has(syntax) {
		log.Warn().Str("syntax", syntax).Str("fallback", parser.DefaultSyntax).Msg("Unknown syntax")
	}
	return Render{
		log:       log,
		syntax:    syntax,
		encoding:  encoding,
		env:       env,
		normalize: normalize,
	}, nil
}

// Run executes the use case: the source is parsed and the result is written
// to w. If document is true, the encoder writes a standalone document.
func (uc Render) Run(ctx context.Context, w io.Writer, src []byte, document bool) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	start := time.Now()
	ns, err := uc.Parse(src)
	if err != nil {
		uc.log.Error().Err(err).Str("syntax", uc.syntax).Msg("Unable to parse")
		return 0, err
	}
	parsed := time.Now()

	enc := encoder.Create(uc.encoding, uc.env)
	var length int
	if document {
		length, err = enc.WriteDocument(w, ns)
	} else {
		length, err = enc.WriteNodes(w, ns)
	}
	if err != nil {
		return length, fmt.Errorf("encode %s: %w", uc.encoding, err)
	}
	uc.log.Debug().
		Str("syntax", uc.syntax).Str("encoding", uc.encoding).
		Int("nodes", len(ns)).Int("bytes", length).
		Dur("parse", parsed.Sub(start)).Dur("encode", time.Since(parsed)).
		Msg("Rendered")
	return length, nil
}

// Parse normalizes the source and parses it into a node forest.
func (uc Render) Parse(src []byte) (ast.NodeSlice, error) {
	src = input.NewInput(src).NormalizeEOL()
	if uc.normalize {
		src = strfun.NormalizeNFC(src)
	}
	return parser.Parse(input.NewInput(src), uc.syntax, uc.log)
}
