// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package main

import (
	"os"
	"syscall"
)

// flushSignals lists the signals that trigger a cooperative artifact
// flush, including SIGINFO (ctrl-T), available on BSD-derived platforms.
func flushSignals() []os.Signal {
	return []os.Signal{syscall.SIGUSR1, syscall.SIGALRM, syscall.SIGINFO}
}
