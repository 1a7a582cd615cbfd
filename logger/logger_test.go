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

package logger_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Kexogg/clean-code/logger"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	testcases := []struct {
		text string
		exp  logger.Level
	}{
		{"tra", logger.TraceLevel},
		{"deb", logger.DebugLevel},
		{"info", logger.InfoLevel},
		{"warn", logger.WarnLevel},
		{"err", logger.ErrorLevel},
		{"manda", logger.MandatoryLevel},
		{"dis", logger.NeverLevel},
		{"d", logger.Level(0)},
		{"fatal", logger.Level(0)},
	}
	for i, tc := range testcases {
		got := logger.ParseLevel(tc.text)
		if got != tc.exp {
			t.Errorf("%d: ParseLevel(%q) == %q, but got %q", i, tc.text, tc.exp, got)
		}
	}
}

type recordWriter struct {
	levels []logger.Level
	lines  []string
}

func (rw *recordWriter) WriteMessage(level logger.Level, _ time.Time, prefix, msg string, details []byte) error {
	rw.levels = append(rw.levels, level)
	rw.lines = append(rw.lines, prefix+msg+string(details))
	return nil
}

func TestLevelFilter(t *testing.T) {
	t.Parallel()
	rw := &recordWriter{}
	log := logger.New(rw, "").SetLevel(logger.WarnLevel)
	log.Debug().Msg("invisible")
	log.Info().Msg("invisible")
	log.Warn().Int("n", 3).Msg("visible")
	log.Error().Err(errors.New("boom")).Msg("failed")
	if len(rw.lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %v", len(rw.lines), rw.lines)
	}
	if got, exp := rw.lines[0], "visible, n=3"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
	if got, exp := rw.lines[1], "failed, error=boom"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestChildLogger(t *testing.T) {
	t.Parallel()
	rw := &recordWriter{}
	log := logger.New(rw, "MU")
	child := log.Clone().Str("file", "a.md").Child()
	child.Info().Bool("doc", true).Msg("render")
	if len(rw.lines) != 1 {
		t.Fatalf("expected 1 line, got %v", rw.lines)
	}
	if got, exp := rw.lines[0], "MU    render, file=a.md, doc=true"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}

	log.SetLevel(logger.ErrorLevel)
	child.Info().Msg("filtered by parent level")
	if len(rw.lines) != 1 {
		t.Errorf("child ignored parent level: %v", rw.lines)
	}
}

func TestDelimField(t *testing.T) {
	t.Parallel()
	rw := &recordWriter{}
	log := logger.New(rw, "").SetLevel(logger.TraceLevel)
	log.Trace().Int("line", 2).Delim("BOLD", 14, 2).Str("reason", "not closed").Msg("rejected")
	if len(rw.lines) != 1 {
		t.Fatalf("expected 1 line, got %v", rw.lines)
	}
	if got, exp := rw.lines[0], "rejected, line=2, delim=BOLD@14+2, reason=not closed"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestEnabled(t *testing.T) {
	t.Parallel()
	log := logger.New(&recordWriter{}, "").SetLevel(logger.DebugLevel)
	testcases := []struct {
		level logger.Level
		exp   bool
	}{
		{logger.TraceLevel, false},
		{logger.DebugLevel, true},
		{logger.ErrorLevel, true},
		{logger.NeverLevel, false},
	}
	for _, tc := range testcases {
		if got := log.Enabled(tc.level); got != tc.exp {
			t.Errorf("Enabled(%v) == %v, but got %v", tc.level, tc.exp, got)
		}
	}
	child := log.Clone().Str("file", "a.md").Child()
	if !child.Enabled(logger.DebugLevel) {
		t.Error("child must follow the level of its root")
	}
	var nilLog *logger.Logger
	if nilLog.Enabled(logger.ErrorLevel) {
		t.Error("nil logger must not be enabled")
	}
}

func TestNilLogger(t *testing.T) {
	t.Parallel()
	var log *logger.Logger
	if got := log.Level(); got != logger.NeverLevel {
		t.Errorf("nil logger must have level %v, got %v", logger.NeverLevel, got)
	}
	log.Error().Str("key", "val").Quote("q", "x y").Msg("nothing happens")
	if child := log.Clone().Child(); child != nil {
		t.Errorf("child of nil logger must be nil, got %v", child)
	}
}

func TestLogWriterAdapter(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	lwa := logger.NewLogWriterAdapter(&buf)
	ts := time.Date(2022, time.August, 7, 9, 5, 3, 0, time.Local)
	if err := lwa.WriteMessage(logger.WarnLevel, ts, "MARKUP", "hello", []byte(", k=v")); err != nil {
		t.Fatal(err)
	}
	exp := "2022-08-07 09:05:03 WARN  MARKUP hello, k=v\n"
	if got := buf.String(); got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
	lwa.WriteMessage(logger.InfoLevel, ts, "", "second", nil)
	if got := strings.Count(buf.String(), "\n"); got != 2 {
		t.Errorf("expected two lines, got %d", got)
	}
}

type testLogWriter struct{}

func (*testLogWriter) WriteMessage(logger.Level, time.Time, string, string, []byte) error {
	return nil
}

func BenchmarkDisabled(b *testing.B) {
	log := logger.New(&testLogWriter{}, "").SetLevel(logger.NeverLevel)
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "")
	for n := 0; n < b.N; n++ {
		log.Info().Str("key", "val").Msg("Benchmark")
	}
}

func BenchmarkCloneStrMessage(b *testing.B) {
	log := logger.New(&testLogWriter{}, "").Clone().Str("sss", "ttt").Child()
	for n := 0; n < b.N; n++ {
		log.Info().Msg("123456789")
	}
}
