// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import "testing"

// recordingWriter captures every event it receives, for assertions.
type recordingWriter struct {
	events []*Event
	closed bool
}

func (w *recordingWriter) Write(e *Event) { w.events = append(w.events, e) }
func (w *recordingWriter) Close()         { w.closed = true }
func (w *recordingWriter) Sync()          {}

func TestLoggerLevelGating(t *testing.T) {

	l := New("test-gate", nil)
	l.SetLevel(WARN)
	w := &recordingWriter{}
	l.AddWriter(w)

	l.Debug("should not appear")
	l.Info("should not appear")
	l.Warn("should appear")
	l.Error("should appear too")

	if len(w.events) != 2 {
		t.Fatalf("got %d events, want 2 (WARN and ERROR only)", len(w.events))
	}
	if w.events[0].level != WARN || w.events[1].level != ERROR {
		t.Fatalf("unexpected event levels: %d, %d", w.events[0].level, w.events[1].level)
	}
}

func TestLoggerChildInheritsParentLevelAndPropagates(t *testing.T) {

	parent := New("test-parent", nil)
	parent.SetLevel(ERROR)
	parentWriter := &recordingWriter{}
	parent.AddWriter(parentWriter)

	child := New("test-child", parent)
	childWriter := &recordingWriter{}
	child.AddWriter(childWriter)

	if child.level != ERROR {
		t.Fatalf("child did not inherit parent's level: got %d, want %d", child.level, ERROR)
	}

	child.Warn("filtered at child's inherited level")
	if len(childWriter.events) != 0 {
		t.Fatalf("child emitted a WARN despite inheriting an ERROR threshold")
	}

	child.Error("propagates to parent")
	if len(childWriter.events) != 1 {
		t.Fatalf("child writer got %d events, want 1", len(childWriter.events))
	}
	if len(parentWriter.events) != 1 {
		t.Fatalf("parent writer got %d events from child, want 1 (propagation)", len(parentWriter.events))
	}
}

func TestLoggerSetLevelByName(t *testing.T) {

	l := New("test-byname", nil)

	if err := l.SetLevelByName("info"); err != nil {
		t.Fatalf("SetLevelByName(info) returned error: %v", err)
	}
	if l.level != INFO {
		t.Fatalf("level = %d, want INFO", l.level)
	}

	if err := l.SetLevelByName("nonsense"); err == nil {
		t.Fatal("SetLevelByName with an invalid name did not return an error")
	}
}

func TestLoggerSetLevelIgnoresOutOfRange(t *testing.T) {

	l := New("test-range", nil)
	l.SetLevel(WARN)

	l.SetLevel(-1)
	if l.level != WARN {
		t.Fatalf("SetLevel(-1) changed the level to %d, want it left at WARN", l.level)
	}
	l.SetLevel(FATAL + 1)
	if l.level != WARN {
		t.Fatalf("SetLevel(FATAL+1) changed the level to %d, want it left at WARN", l.level)
	}
}

func TestDefaultLoggerConvenienceFunctions(t *testing.T) {

	prevLevel := Default.level
	prevOutputs := Default.outputs
	defer func() {
		Default.level = prevLevel
		Default.outputs = prevOutputs
	}()

	Default.outputs = nil
	w := &recordingWriter{}
	AddWriter(w)
	SetLevel(WARN)

	Info("dropped below threshold")
	Warn("package-level warn reaches the default logger")

	if len(w.events) != 1 {
		t.Fatalf("got %d events via package-level functions, want 1", len(w.events))
	}
}
