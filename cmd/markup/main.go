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

// Package main is the starting point for the markup command.
package main

import (
	"github.com/Kexogg/clean-code/cmd"
)

// Version variable. Will be filled by build process.
var buildVersion = ""

func main() {
	cmd.Main("markup", buildVersion)
}
