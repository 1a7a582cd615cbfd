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

// Package cmd provides the sub-commands of the markup renderer.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/Kexogg/clean-code/config"
	"github.com/Kexogg/clean-code/encoder"
	"github.com/Kexogg/clean-code/logger"
	"github.com/Kexogg/clean-code/parser"
	"github.com/Kexogg/clean-code/strfun"
	"github.com/Kexogg/clean-code/usecase"
)

func init() {
	RegisterCommand(Command{
		Name:  "help",
		Usage: "list all commands",
		Func:  cmdHelp,
	})
	RegisterCommand(Command{
		Name:  "version",
		Usage: "print the version",
		Func: func(_ *flag.FlagSet, env *Env) (int, error) {
			fmt.Fprintln(env.Stdout, env.Version)
			return 0, nil
		},
	})
	RegisterCommand(Command{
		Name:  "file",
		Usage: "render a file or stdin to stdout",
		Func:  cmdFile,
		Flags: flgRender,
	})
	RegisterCommand(Command{
		Name:  "watch",
		Usage: "render a file again whenever it changes",
		Func:  cmdWatch,
		Flags: func(fs *flag.FlagSet) {
			flgRender(fs)
			fs.String("o", "", "output file, default stdout")
		},
	})
}

// flgRender defines the flags that override configuration values.
func flgRender(fs *flag.FlagSet) {
	fs.String("s", "", "input syntax: "+strings.Join(parser.GetSyntaxes(), ", "))
	fs.String("t", "", "output encoding: "+strings.Join(encoder.GetEncodings(), ", "))
	fs.Bool("d", false, "write a standalone document")
	fs.String("l", "", "log level")
	fs.Bool("n", true, "normalize input to NFC")
	fs.String("lang", "", "document language")
	fs.String("title", "", "document title")
}

var flagKeys = map[string]string{
	"s":     config.KeySyntax,
	"t":     config.KeyEncoding,
	"d":     config.KeyDocument,
	"l":     config.KeyLogLevel,
	"n":     config.KeyNormalize,
	"lang":  config.KeyLang,
	"title": config.KeyTitle,
}

func cmdHelp(_ *flag.FlagSet, env *Env) (int, error) {
	fmt.Fprintln(env.Stdout, "Available commands:")
	maxLen := 0
	for _, name := range List() {
		if l := strfun.Length(name); l > maxLen {
			maxLen = l
		}
	}
	for _, name := range List() {
		cmd, _ := Get(name)
		fmt.Fprintf(env.Stdout, "  %s  %s\n", strfun.JustifyLeft(name, maxLen, ' '), cmd.Usage)
	}
	return 0, nil
}

// getConfig reads the configuration file and applies all flags that were set
// on the command line.
func getConfig(fs *flag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(fs.Lookup("c").Value.String())
	if err != nil {
		return nil, err
	}
	fs.Visit(func(flg *flag.Flag) {
		if err != nil {
			return
		}
		if key, ok := flagKeys[flg.Name]; ok {
			err = cfg.Set(key, flg.Value.String())
		}
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRender creates the render use case according to the configuration.
func newRender(env *Env) (usecase.Render, error) {
	cfg := env.Config
	return usecase.NewRender(
		env.Log.Clone().Str("syntax", cfg.Syntax).Child(),
		cfg.Syntax,
		cfg.Encoding,
		&encoder.Environment{Lang: cfg.Lang, Title: cfg.Title},
		cfg.Normalize,
	)
}

func executeCommand(env *Env, name string, args ...string) int {
	command, ok := Get(name)
	if !ok {
		fmt.Fprintf(env.Stderr, "Unknown command %q\n", name)
		return 1
	}
	fs := command.GetFlags(env.Stderr)
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(env.Stderr, "%s: unable to parse flags: %v %v\n", name, args, err)
		return 1
	}
	cfg, err := getConfig(fs)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
		return 2
	}
	env.Config = cfg
	env.Log = logger.New(logger.NewLogWriterAdapter(env.Stderr), "MARKUP").SetLevel(cfg.Level())
	env.Log.Debug().Str("command", name).Quote("config", cfg.String()).Msg("Start")

	exitCode, err := command.Func(fs, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "%s: %v\n", name, err)
	}
	return exitCode
}

// Main is the real entrypoint of the markup command.
func Main(progName, buildVersion string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	env := &Env{
		Ctx:     ctx,
		Version: config.NewVersion(progName, buildVersion),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
	exitCode := run(env, os.Args[1:])
	stop()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

func run(env *Env, args []string) int {
	if len(args) == 0 {
		return executeCommand(env, "help")
	}
	return executeCommand(env, args[0], args[1:]...)
}

// outputFile opens the named file for writing, or returns stdout.
func outputFile(env *Env, name string) (io.Writer, func() error, error) {
	if name == "" {
		return env.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
