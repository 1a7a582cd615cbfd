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

// Package logger implements a levelled logger for the markup tools.
//
// A message is built with typed fields and written by a LogWriter. Child
// loggers carry fixed fields, e.g. the syntax or the file being rendered,
// and share the level of their root logger.
package logger

import (
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// Level defines the possible log levels
type Level uint8

// Constants for Level
const (
	NoLevel        Level = iota // the absent log level
	TraceLevel                  // Every scanned delimiter and every rejection
	DebugLevel                  // Parse and encode statistics
	InfoLevel                   // Rendered files, watcher state
	WarnLevel                   // Recoverable problems, e.g. watcher errors
	ErrorLevel                  // Failed renders
	MandatoryLevel              // Only mandatory events
	NeverLevel                  // Logging is disabled
)

var levelNames = [...]struct{ name, label string }{
	NoLevel:        {"", "     "},
	TraceLevel:     {"trace", "TRACE"},
	DebugLevel:     {"debug", "DEBUG"},
	InfoLevel:      {"info", "INFO "},
	WarnLevel:      {"warn", "WARN "},
	ErrorLevel:     {"error", "ERROR"},
	MandatoryLevel: {"mandatory", ">>>>>"},
	NeverLevel:     {"disabled", "NEVER"},
}

// IsValid returns true, if the level is a valid level
func (l Level) IsValid() bool { return TraceLevel <= l && l <= NeverLevel }

func (l Level) String() string {
	if l.IsValid() {
		return levelNames[l].name
	}
	return strconv.Itoa(int(l))
}

// Format returns the fixed width label written in front of a message.
func (l Level) Format() string {
	if l.IsValid() {
		return levelNames[l].label
	}
	return strconv.Itoa(int(l))
}

// ParseLevel returns the level whose name starts with text. At least three
// characters are needed, so "d" is neither "debug" nor "disabled".
func ParseLevel(text string) Level {
	if len(text) < 3 {
		return NoLevel
	}
	for lv := TraceLevel; lv <= NeverLevel; lv++ {
		if strings.HasPrefix(levelNames[lv].name, text) {
			return lv
		}
	}
	return NoLevel
}

// Logger emits messages at or above its level.
type Logger struct {
	lw      LogWriter
	level   uint32
	prefix  string
	context []byte // fields written after every message of a child logger
	root    *Logger
}

// New creates a new root logger with the given prefix, at level info.
func New(lw LogWriter, prefix string) *Logger {
	if prefix != "" && len(prefix) < 6 {
		prefix = (prefix + "     ")[:6]
	}
	l := &Logger{lw: lw, level: uint32(InfoLevel), prefix: prefix}
	l.root = l
	return l
}

// SetLevel sets the level of a root logger. Child loggers follow their root.
func (l *Logger) SetLevel(newLevel Level) *Logger {
	if l == nil {
		return nil
	}
	if l.root != l {
		panic("try to set level for child logger")
	}
	atomic.StoreUint32(&l.level, uint32(newLevel))
	return l
}

// Level returns the current level of the given logger
func (l *Logger) Level() Level {
	if l == nil {
		return NeverLevel
	}
	return Level(atomic.LoadUint32(&l.root.level))
}

// Enabled returns true, if a message of the given level would be written.
// Callers use it to skip building expensive messages.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && l.Level() <= level && level != NeverLevel
}

// Trace creates a tracing message.
func (l *Logger) Trace() *Message { return newMessage(l, TraceLevel) }

// Debug creates a debug message.
func (l *Logger) Debug() *Message { return newMessage(l, DebugLevel) }

// Info creates a message suitable for information data.
func (l *Logger) Info() *Message { return newMessage(l, InfoLevel) }

// Warn creates a message suitable for warning the user.
func (l *Logger) Warn() *Message { return newMessage(l, WarnLevel) }

// Error creates a message suitable for errors.
func (l *Logger) Error() *Message { return newMessage(l, ErrorLevel) }

// Clone starts a message whose fields become the context of a child logger,
// see Message.Child.
func (l *Logger) Clone() *Message {
	if l == nil {
		return nil
	}
	m := newMessage(l, NeverLevel)
	if m != nil {
		m.level = NoLevel
	}
	return m
}

func (l *Logger) child(context []byte) *Logger {
	return &Logger{
		prefix:  l.prefix,
		context: append([]byte(nil), context...),
		root:    l.root,
	}
}

func (l *Logger) writeMessage(level Level, msg string, details []byte) error {
	return l.root.lw.WriteMessage(level, time.Now().Local(), l.prefix, msg, details)
}
