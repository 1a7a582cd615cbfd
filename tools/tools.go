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

// Package tools provides functions to check the repository before a commit
// or a release.
package tools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// EnvDirectProxy bypasses the module proxy.
var EnvDirectProxy = []string{"GOPROXY=direct"}

// Verbose logs every executed command to stderr.
var Verbose bool

// ExecuteCommand runs the command and returns its standard output.
func ExecuteCommand(env []string, name string, arg ...string) (string, error) {
	LogCommand("EXEC", env, name, arg)
	var out strings.Builder
	cmd := PrepareCommand(env, name, arg, nil, &out, os.Stderr)
	err := cmd.Run()
	return out.String(), err
}

// PrepareCommand creates the command. A non-empty env is added to the
// environment of the current process.
func PrepareCommand(env []string, name string, arg []string, in io.Reader, stdout, stderr io.Writer) *exec.Cmd {
	if len(env) > 0 {
		env = append(env, os.Environ()...)
	}
	cmd := exec.Command(name, arg...)
	cmd.Env = env
	cmd.Stdin = in
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd
}

func LogCommand(exec string, env []string, name string, arg []string) {
	if Verbose {
		for i, e := range env {
			fmt.Fprintf(os.Stderr, "ENV%d %v\n", i+1, e)
		}
		fmt.Fprintln(os.Stderr, exec, name, arg)
	}
}

// Check runs the tests and all linters. A release check fails if an
// optional linter is missing.
func Check(forRelease bool) error {
	if err := CheckGoTest("./..."); err != nil {
		return err
	}
	if err := checkGoVet(); err != nil {
		return err
	}
	if err := checkLinter("shadow", forRelease, "-strict", "./..."); err != nil {
		return err
	}
	if err := checkLinter("staticcheck", forRelease, "./..."); err != nil {
		return err
	}
	if err := checkLinter("unparam", forRelease, "./..."); err != nil {
		return err
	}
	if forRelease {
		if err := checkLinter("govulncheck", true, "./..."); err != nil {
			return err
		}
	}
	return checkUntracked()
}

// CheckGoTest runs the unit tests of the package pattern. Only lines of
// failing packages are reported.
func CheckGoTest(pkg string, testParams ...string) error {
	args := append([]string{"test", pkg}, testParams...)
	out, err := ExecuteCommand(EnvDirectProxy, "go", args...)
	if err != nil {
		for _, line := range splitLines(out) {
			if strings.HasPrefix(line, "ok") || strings.HasPrefix(line, "?") {
				continue
			}
			fmt.Fprintln(os.Stderr, line)
		}
	}
	return err
}

func checkGoVet() error {
	out, err := ExecuteCommand(nil, "go", "vet", "./...")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Some checks failed")
		if len(out) > 0 {
			fmt.Fprintln(os.Stderr, out)
		}
	}
	return err
}

func checkLinter(name string, forRelease bool, args ...string) error {
	path, err := findExecStrict(name, forRelease)
	if path == "" {
		return err
	}
	out, err := ExecuteCommand(nil, path, args...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Some %s problems found\n", name)
		if len(out) > 0 {
			fmt.Fprintln(os.Stderr, out)
		}
	}
	return err
}

func findExec(cmd string) string {
	if path, err := exec.LookPath(cmd); err == nil {
		return path
	}
	return ""
}

func findExecStrict(cmd string, forRelease bool) (string, error) {
	path := findExec(cmd)
	if path != "" || !forRelease {
		return path, nil
	}
	return "", errors.New("Command '" + cmd + "' not installed, but required for release")
}

// checkUntracked warns about files not under version control.
func checkUntracked() error {
	out, err := ExecuteCommand(nil, "git", "ls-files", "--others", "--exclude-standard")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Unable to execute 'git ls-files'")
		return err
	}
	if extra := splitLines(out); len(extra) > 0 {
		fmt.Fprint(os.Stderr, "Warning: untracked file(s):")
		for i, name := range extra {
			if i > 0 {
				fmt.Fprint(os.Stderr, ",")
			}
			fmt.Fprintf(os.Stderr, " %q", name)
		}
		fmt.Fprintln(os.Stderr)
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
