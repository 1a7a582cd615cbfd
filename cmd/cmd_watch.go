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
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/Kexogg/clean-code/logger"
)

// ---------- Subcommand: watch ----------------------------------------------

func cmdWatch(fs *flag.FlagSet, env *Env) (int, error) {
	if fs.NArg() != 1 {
		fmt.Fprintln(env.Stderr, "Exactly one input file expected")
		return 1, nil
	}
	path, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		return 2, err
	}
	uc, err := newRender(env)
	if err != nil {
		return 2, err
	}
	outName := fs.Lookup("o").Value.String()
	render := func(ctx context.Context) error {
		src, err2 := os.ReadFile(path)
		if err2 != nil {
			return err2
		}
		w, closeFn, err2 := outputFile(env, outName)
		if err2 != nil {
			return err2
		}
		_, err2 = uc.Run(ctx, w, src, env.Config.Document)
		if errClose := closeFn(); err2 == nil {
			err2 = errClose
		}
		return err2
	}
	if err = render(env.Ctx); err != nil {
		return 2, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return 2, err
	}
	defer watcher.Close()

	// Editors often replace a file instead of writing it, so the directory
	// is watched.
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return 2, err
	}
	env.Log.Info().Str("path", path).Msg("Watching")
	if err = watchLoop(env.Ctx, env.Log, path, watcher.Events, watcher.Errors, render); err != nil {
		return 2, err
	}
	return 0, nil
}

// watchLoop calls render for every event that changes the file at path. It
// stops when the context is done or one of the channels is closed.
func watchLoop(
	ctx context.Context, log *logger.Logger, path string,
	events <-chan fsnotify.Event, errs <-chan error,
	render func(context.Context) error,
) error {
	const changeOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("Watch stopped")
			return nil
		case err, ok := <-errs:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("Watch error")
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			log.Trace().Str("name", ev.Name).Str("op", ev.Op.String()).Msg("File event")
			if ev.Name != path || ev.Op&changeOps == 0 {
				continue
			}
			if err := render(ctx); err != nil {
				log.Error().Err(err).Str("path", path).Msg("Unable to render")
				continue
			}
			log.Info().Str("path", path).Msg("Rendered")
		}
	}
}
