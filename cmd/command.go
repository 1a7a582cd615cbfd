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
	"context"
	"flag"
	"io"
	"sort"

	"github.com/Kexogg/clean-code/config"
	"github.com/Kexogg/clean-code/logger"
)

// Command stores information about commands / sub-commands.
type Command struct {
	Name  string              // command name as it appears on the command line
	Usage string              // one line description, shown by the help command
	Func  CommandFunc         // function that executes a command
	Flags func(*flag.FlagSet) // function to set up flag.FlagSet
}

// CommandFunc is the function that executes the command.
// It accepts the parsed command line parameters.
// It returns the exit code and an error.
type CommandFunc func(*flag.FlagSet, *Env) (int, error)

// Env is everything a command may use while it runs.
type Env struct {
	Ctx     context.Context
	Config  *config.Config
	Log     *logger.Logger
	Version config.Version
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// GetFlags returns a new flag set for the command. Every command knows the
// flag "c" to name the configuration file.
func (c *Command) GetFlags(output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.String("c", config.DefaultFile, "configuration file")
	if c.Flags != nil {
		c.Flags(fs)
	}
	return fs
}

var commands = make(map[string]Command)

// RegisterCommand registers the given command.
func RegisterCommand(cmd Command) {
	if cmd.Name == "" || cmd.Func == nil {
		panic("Required command values missing")
	}
	if _, ok := commands[cmd.Name]; ok {
		panic("Command already registered: " + cmd.Name)
	}
	commands[cmd.Name] = cmd
}

// Get returns the command with the given name.
func Get(name string) (Command, bool) {
	cmd, ok := commands[name]
	return cmd, ok
}

// List returns a sorted list of all registered command names.
func List() []string {
	result := make([]string, 0, len(commands))
	for name := range commands {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
