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

package ast

// Attribute is a single key/value pair of an element.
type Attribute struct {
	Key   string
	Value string
}

// Attributes store additional information about some element kinds.
//
// Keys are unique, iteration follows insertion order.
type Attributes struct {
	pairs []Attribute
}

// IsEmpty returns true if there are no attributes.
func (a *Attributes) IsEmpty() bool { return a == nil || len(a.pairs) == 0 }

// Len returns the number of attributes.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.pairs)
}

// Get returns the attribute value of the given key and a succes value.
func (a *Attributes) Get(key string) (string, bool) {
	if a != nil {
		for _, p := range a.pairs {
			if p.Key == key {
				return p.Value, true
			}
		}
	}
	return "", false
}

// Set changes the attribute that a given key has now a given value. A new
// key is appended after all existing keys.
func (a *Attributes) Set(key, value string) *Attributes {
	if a == nil {
		return &Attributes{pairs: []Attribute{{key, value}}}
	}
	for i, p := range a.pairs {
		if p.Key == key {
			a.pairs[i].Value = value
			return a
		}
	}
	a.pairs = append(a.pairs, Attribute{key, value})
	return a
}

// Remove the key from the attributes.
func (a *Attributes) Remove(key string) {
	if a != nil {
		for i, p := range a.pairs {
			if p.Key == key {
				a.pairs = append(a.pairs[:i], a.pairs[i+1:]...)
				return
			}
		}
	}
}

// Pairs returns the attributes in insertion order. The result must not be
// modified.
func (a *Attributes) Pairs() []Attribute {
	if a == nil {
		return nil
	}
	return a.pairs
}

// Clone returns a duplicate of the attribute.
func (a *Attributes) Clone() *Attributes {
	if a == nil {
		return nil
	}
	pairs := make([]Attribute, len(a.pairs))
	copy(pairs, a.pairs)
	return &Attributes{pairs: pairs}
}

// Equal returns true, if both attributes contain the same pairs in the same
// order. A nil value equals an empty one.
func (a *Attributes) Equal(o *Attributes) bool {
	ap, op := a.Pairs(), o.Pairs()
	if len(ap) != len(op) {
		return false
	}
	for i, p := range ap {
		if p != op[i] {
			return false
		}
	}
	return true
}
