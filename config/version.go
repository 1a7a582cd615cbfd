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

package config

import (
	"fmt"
	"runtime"
)

// Version describes all elements of a software version.
type Version struct {
	Prog      string // Name of the software
	Build     string // Representation of build process
	GoVersion string // Version of go
	Os        string // GOOS
	Arch      string // GOARCH
}

// NewVersion collects the version data of the running program.
func NewVersion(progName, buildVersion string) Version {
	if buildVersion == "" {
		buildVersion = "unknown"
	}
	return Version{
		Prog:      progName,
		Build:     buildVersion,
		GoVersion: runtime.Version(),
		Os:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

func (v Version) String() string {
	return fmt.Sprintf("%v (%v/%v) running on %v/%v", v.Prog, v.Build, v.GoVersion, v.Os, v.Arch)
}
