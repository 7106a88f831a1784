// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"os"
)

const (
	csi     = "\x1B["
	yellow  = "33m"
	bred    = "31;1m"
	bmagenta = "35;1m"
	green   = "32m"
	white   = "37m"
)

var colorMap = map[int]string{
	DEBUG: white,
	INFO:  green,
	WARN:  yellow,
	ERROR: bred,
	FATAL: bmagenta,
}

// Console writes log events to stdout, optionally colored by level —
// a render running in a terminal wants its warnings to stand out from
// its progress output.
type Console struct {
	writer *os.File
	color  bool
}

// NewConsole creates a Console writer. If color is true, ANSI escapes
// tint each message by level.
func NewConsole(color bool) *Console {
	return &Console{os.Stdout, color}
}

func (w *Console) Write(event *Event) {

	if w.color {
		w.writer.Write([]byte(csi))
		w.writer.Write([]byte(colorMap[event.level]))
	}
	w.writer.Write([]byte(event.fmsg))
	if w.color {
		w.writer.Write([]byte(csi))
		w.writer.Write([]byte(white))
	}
}

func (w *Console) Close() {}

func (w *Console) Sync() {}
