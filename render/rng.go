// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math/rand"
	"time"
)

// newThreadRNG returns a *rand.Rand private to one worker goroutine. Each
// worker owns its RNG exclusively (no sharing, no locking): per-thread RNG
// state is how the renderer gets reproducible, race-free randomness out of
// a parallel pixel loop without a mutex on every sample.
func newThreadRNG(seed int64, workerIndex int) *rand.Rand {

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	// Perturb the shared seed per worker so identical base seeds don't
	// produce identical sample sequences across workers.
	return rand.New(rand.NewSource(seed + int64(workerIndex)*0x9E3779B97F4A7C15))
}
