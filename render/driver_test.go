// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/dacunni/fluxrt/math32"
)

func TestIsFinite(t *testing.T) {

	cases := []struct {
		name string
		c    math32.Color
		want bool
	}{
		{"zero", math32.Color{}, true},
		{"finite", math32.Color{R: 1, G: 2, B: 3}, true},
		{"nan R", math32.Color{R: math32.NaN()}, false},
		{"inf G", math32.Color{G: math32.Infinity}, false},
		{"neg inf B", math32.Color{B: -math32.Infinity}, false},
	}

	for _, tc := range cases {
		if got := isFinite(tc.c); got != tc.want {
			t.Errorf("%s: isFinite(%v) = %v, want %v", tc.name, tc.c, got, tc.want)
		}
	}
}

func TestDriverFlushFlagRunsExactlyOnce(t *testing.T) {

	d := &Driver{}
	var calls int
	d.OnFlush = func(d *Driver) { calls++ }

	d.RequestFlush()
	d.pollFlush()
	d.pollFlush()
	d.pollFlush()

	if calls != 1 {
		t.Fatalf("OnFlush called %d times after one RequestFlush, want exactly 1", calls)
	}
}

func TestDriverFlushFlagIdleWithoutRequest(t *testing.T) {

	d := &Driver{}
	var calls int
	d.OnFlush = func(d *Driver) { calls++ }

	d.pollFlush()
	d.pollFlush()

	if calls != 0 {
		t.Fatalf("OnFlush called %d times with no RequestFlush, want 0", calls)
	}
}

func TestDriverFlushFlagRearms(t *testing.T) {

	d := &Driver{}
	var calls int
	d.OnFlush = func(d *Driver) { calls++ }

	d.RequestFlush()
	d.pollFlush()
	d.RequestFlush()
	d.pollFlush()

	if calls != 2 {
		t.Fatalf("OnFlush called %d times across two requests, want 2", calls)
	}
}

func TestDriverFlushNoCallbackDoesNotPanic(t *testing.T) {

	d := &Driver{}
	d.RequestFlush()
	d.pollFlush() // OnFlush is nil; must be a no-op, not a panic
}
