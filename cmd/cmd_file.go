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
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ---------- Subcommand: file -----------------------------------------------

func cmdFile(fs *flag.FlagSet, env *Env) (int, error) {
	src, err := getInput(env, fs.Args())
	if err != nil {
		return 2, err
	}
	uc, err := newRender(env)
	if err != nil {
		return 2, err
	}
	if _, err = uc.Run(env.Ctx, env.Stdout, src, env.Config.Document); err != nil {
		return 2, err
	}
	if !env.Config.Document {
		fmt.Fprintln(env.Stdout)
	}
	return 0, nil
}

var errTerminal = errors.New("no input file given and stdin is a terminal")

// getInput reads the file named by the first argument, or stdin. An
// interactive terminal is not read.
func getInput(env *Env, args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	if f, ok := env.Stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, errTerminal
	}
	return io.ReadAll(env.Stdin)
}
