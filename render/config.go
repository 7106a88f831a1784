// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render implements the renderer's parallel frame driver: it
// fans pixel work out across a worker pool, accumulates samples into an
// artifacts.Buffer, and supports raster, tiled, and progressive pixel
// orderings.
package render

import "runtime"

// Order names the order in which pixels are scheduled for work.
type Order int

const (
	// OrderRaster visits pixels row by row, left to right.
	OrderRaster Order = iota
	// OrderTiled visits fixed-size square tiles, each tile's pixels
	// together, improving cache locality over scene data per tile.
	OrderTiled
	// OrderProgressive renders the whole image at a low sample count,
	// then repeats at increasing sample counts, so a partial render
	// already shows the full frame at lower quality.
	OrderProgressive
)

// Config holds the parameters of one render invocation.
type Config struct {
	Width, Height int

	// SamplesPerPixel is the target sample count per pixel. Ignored under
	// OrderProgressive in favor of Passes.
	SamplesPerPixel int

	// Passes lists the per-pass sample counts used by OrderProgressive;
	// each pass's samples are added to the running buffer before the next
	// pass begins, so the image converges from coarse to fine.
	Passes []int

	TileSize int
	Order    Order

	// NumWorkers is the worker pool size; 0 means runtime.NumCPU().
	NumWorkers int

	// AdaptiveStdError, when > 0, ends an OrderProgressive render after the
	// first pass at which the buffer-wide artifacts.Buffer.StandardError is
	// at or below this value; the remaining passes are skipped. The raster
	// and tiled orders ignore it.
	AdaptiveStdError float32

	// RandomSeed seeds the per-thread RNGs deterministically; 0 means seed
	// from the current time.
	RandomSeed int64
}

// DefaultConfig returns reasonable defaults for an interactive preview.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:           width,
		Height:          height,
		SamplesPerPixel: 64,
		TileSize:        32,
		Order:           OrderTiled,
	}
}

func (c Config) numWorkers() int {
	if c.NumWorkers > 0 {
		return c.NumWorkers
	}
	return runtime.NumCPU()
}
