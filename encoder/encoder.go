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

// Package encoder provides a generic interface to encode the abstract syntax
// tree into some text form.
package encoder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Kexogg/clean-code/ast"
)

// Encoder is an interface that allows to encode a node forest.
type Encoder interface {
	// WriteDocument writes the nodes as a complete, standalone document.
	WriteDocument(io.Writer, ast.NodeSlice) (int, error)

	// WriteNodes writes the nodes as a fragment.
	WriteNodes(io.Writer, ast.NodeSlice) (int, error)
}

// ErrNoWriteDocument signals that an encoder has no document form.
var ErrNoWriteDocument = errors.New("method WriteDocument is not implemented")

// Create builds a new encoder with the given environment. It returns nil if
// the encoding is not registered.
func Create(enc string, env *Environment) Encoder {
	if info, ok := registry[enc]; ok {
		return info.Create(env)
	}
	return nil
}

// Info stores some data about an encoder.
type Info struct {
	Create  func(*Environment) Encoder
	Default bool
}

var registry = map[string]Info{}
var defEncoding string

// Register the encoder for later retrieval.
func Register(enc string, info Info) {
	if _, ok := registry[enc]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", enc))
	}
	if info.Default {
		if defEncoding != "" && defEncoding != enc {
			panic(fmt.Sprintf("Default encoder already set: %q, new encoding: %q", defEncoding, enc))
		}
		defEncoding = enc
	}
	registry[enc] = info
}

// GetEncodings returns all registered encodings, ordered by name.
func GetEncodings() []string {
	result := make([]string, 0, len(registry))
	for enc := range registry {
		result = append(result, enc)
	}
	sort.Strings(result)
	return result
}

// GetDefaultEncoding returns the encoding that should be used as default.
func GetDefaultEncoding() string {
	if defEncoding != "" {
		return defEncoding
	}
	panic("No default encoding given")
}

// EncodeString returns the encoded fragment of the nodes as a string.
func EncodeString(enc Encoder, ns ast.NodeSlice) (string, error) {
	var buf bytes.Buffer
	if _, err := enc.WriteNodes(&buf, ns); err != nil {
		return "", err
	}
	return buf.String(), nil
}
