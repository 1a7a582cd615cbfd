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

package logger

import (
	"io"
	"sync"
	"time"
)

// LogWriter writes log messages to their specified destinations.
type LogWriter interface {
	WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error
}

// LogWriterAdapter adapts an io.Writer to a LogWriter.
//
// Each message is assembled completely and written with one call to the
// underlying writer.
type LogWriterAdapter struct {
	w   io.Writer
	mx  sync.Mutex // protects buf and serializes w.Write
	buf []byte
}

// NewLogWriterAdapter creates a new LogWriter from an io.Writer.
func NewLogWriterAdapter(w io.Writer) *LogWriterAdapter {
	return &LogWriterAdapter{
		w:   w,
		buf: make([]byte, 0, 500),
	}
}

// WriteMessage formats the message as "date time LEVEL prefix msg, details".
func (lwa *LogWriterAdapter) WriteMessage(level Level, ts time.Time, prefix string, msg string, details []byte) error {
	lwa.mx.Lock()
	defer lwa.mx.Unlock()

	buf := appendTimestamp(lwa.buf[:0], ts)
	buf = append(buf, ' ')
	buf = append(buf, level.Format()...)
	buf = append(buf, ' ')
	if prefix != "" {
		buf = append(buf, prefix...)
		buf = append(buf, ' ')
	}
	buf = append(buf, msg...)
	buf = append(buf, details...)
	buf = append(buf, '\n')
	lwa.buf = buf
	_, err := lwa.w.Write(buf)
	return err
}

func appendTimestamp(buf []byte, ts time.Time) []byte {
	year, month, day := ts.Date()
	hour, minute, second := ts.Clock()
	buf = itoa(buf, year, 4)
	buf = append(buf, '-')
	buf = itoa(buf, int(month), 2)
	buf = append(buf, '-')
	buf = itoa(buf, day, 2)
	buf = append(buf, ' ')
	buf = itoa(buf, hour, 2)
	buf = append(buf, ':')
	buf = itoa(buf, minute, 2)
	buf = append(buf, ':')
	return itoa(buf, second, 2)
}

func itoa(buf []byte, i, wid int) []byte {
	var b [20]byte
	for bp := wid - 1; bp >= 0; bp-- {
		q := i / 10
		b[bp] = byte('0' + i - q*10)
		i = q
	}
	return append(buf, b[:wid]...)
}
