// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/dacunni/fluxrt/artifacts"
	"github.com/dacunni/fluxrt/camera"
	"github.com/dacunni/fluxrt/core"
	"github.com/dacunni/fluxrt/integrator"
	"github.com/dacunni/fluxrt/logging"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/scene"
)

// Driver runs a full-frame render: it owns the output Buffer and AOVSet,
// schedules per-pixel work across a worker pool sized by Config, and logs
// the render's lifecycle (start, each progressive pass, the adaptive stop,
// finish) via zap —
// deliberately kept separate from the renderer's own warning log, which
// uses the logging package instead.
type Driver struct {
	Config Config
	Scene  *scene.Scene
	Camera camera.Camera
	Path   integrator.Config
	AO     integrator.AOConfig

	Buffer *artifacts.Buffer
	AOVs   *artifacts.AOVSet

	Logger *zap.Logger

	// OnFlush, if set, is called with the current Buffer/AOVs state when
	// RequestFlush is triggered externally (a POSIX signal, typically).
	// Exactly one worker runs it per request; others keep sampling.
	OnFlush func(d *Driver)

	flushRequested int32
}

// RequestFlush raises the cooperative flush flag: the next worker to poll
// it performs one OnFlush call and clears the flag. Safe to call from a
// signal handler goroutine.
func (d *Driver) RequestFlush() {
	atomic.StoreInt32(&d.flushRequested, 1)
}

// pollFlush is called between pixels by every worker; at most one of them
// observes the flag raised and wins the compare-and-swap that clears it,
// so a flush never runs twice for the same request.
func (d *Driver) pollFlush() {
	if atomic.CompareAndSwapInt32(&d.flushRequested, 1, 0) && d.OnFlush != nil {
		d.OnFlush(d)
	}
}

// NewDriver builds a Driver with a freshly allocated output buffer.
func NewDriver(cfg Config, scn *scene.Scene, cam camera.Camera, path integrator.Config, logger *zap.Logger) *Driver {

	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{
		Config: cfg,
		Scene:  scn,
		Camera: cam,
		Path:   path,
		AO:     integrator.DefaultAOConfig(),
		Buffer: artifacts.NewBuffer(cfg.Width, cfg.Height),
		AOVs:   artifacts.NewAOVSet(cfg.Width, cfg.Height),
		Logger: logger,
	}
}

// pixelTask is one unit of worker-pool submitted work: the rectangle of
// pixels [x0,x1) x [y0,y1) to sample. The per-pixel sample count is passed
// to renderTask alongside it.
type pixelTask struct {
	x0, y0, x1, y1 int
}

// Run renders the full frame according to Config.Order, blocking until
// every worker has finished (or the adaptive stop condition is hit between
// passes, for OrderProgressive).
func (d *Driver) Run() {

	start := time.Now()
	d.Logger.Info("render starting",
		zap.Int("width", d.Config.Width),
		zap.Int("height", d.Config.Height),
		zap.Int("workers", d.Config.numWorkers()),
	)

	switch d.Config.Order {
	case OrderProgressive:
		d.runProgressive()
	default:
		d.runOnePass(d.tasksFor(d.Config.Order), d.Config.SamplesPerPixel)
	}

	d.Logger.Info("render finished", zap.Duration("elapsed", time.Since(start)))
}

func (d *Driver) runProgressive() {

	passes := d.Config.Passes
	if len(passes) == 0 {
		passes = []int{1, 3, 12, 48}
	}
	for i, samples := range passes {
		d.runOnePass(d.tasksFor(OrderTiled), samples)
		d.Logger.Info("progressive pass complete", zap.Int("pass", i), zap.Int("samples", samples))
		if d.Config.AdaptiveStdError > 0 && d.Buffer.StandardError() <= d.Config.AdaptiveStdError {
			d.Logger.Info("adaptive stop reached", zap.Int("pass", i))
			return
		}
	}
}

// tasksFor splits the image into the unit-of-work shape implied by order.
func (d *Driver) tasksFor(order Order) []pixelTask {

	w, h := d.Config.Width, d.Config.Height
	if order == OrderRaster {
		var tasks []pixelTask
		for y := 0; y < h; y++ {
			tasks = append(tasks, pixelTask{x0: 0, y0: y, x1: w, y1: y + 1})
		}
		return tasks
	}

	tile := d.Config.TileSize
	if tile <= 0 {
		tile = 32
	}
	var tasks []pixelTask
	for y0 := 0; y0 < h; y0 += tile {
		y1 := min(y0+tile, h)
		for x0 := 0; x0 < w; x0 += tile {
			x1 := min(x0+tile, w)
			tasks = append(tasks, pixelTask{x0: x0, y0: y0, x1: x1, y1: y1})
		}
	}
	return tasks
}

// isFinite reports whether every channel of c is neither NaN nor infinite.
// renderTask logs a warning for a sample that fails it; the sample is still
// accumulated into the buffer.
func isFinite(c math32.Color) bool {
	return !math32.IsNaN(c.R) && !math32.IsNaN(c.G) && !math32.IsNaN(c.B) &&
		math32.Abs(c.R) != math32.Infinity && math32.Abs(c.G) != math32.Infinity && math32.Abs(c.B) != math32.Infinity
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (d *Driver) runOnePass(tasks []pixelTask, samples int) {

	pool := pond.NewPool(d.Config.numWorkers())
	defer pool.StopAndWait()

	var wg sync.WaitGroup
	var workerCounter int64

	for _, task := range tasks {
		wg.Add(1)
		t := task
		pool.Submit(func() {
			defer wg.Done()
			workerID := int(atomic.AddInt64(&workerCounter, 1))
			rng := newThreadRNG(d.Config.RandomSeed, workerID)
			d.renderTask(t, samples, rng)
		})
	}
	wg.Wait()
}

func (d *Driver) renderTask(t pixelTask, samples int, rng *rand.Rand) {

	w, h := d.Config.Width, d.Config.Height
	for y := t.y0; y < t.y1; y++ {
		for x := t.x0; x < t.x1; x++ {
			pixelStart := time.Now()
			for s := 0; s < samples; s++ {
				jx := rng.Float32()
				jy := rng.Float32()
				ndcX := (2*(float32(x)+jx)/float32(w) - 1)
				ndcY := 1 - 2*(float32(y)+jy)/float32(h)

				ray := d.Camera.GenerateRay(ndcX, ndcY, rng.Float32(), rng.Float32())
				radiance := integrator.TraceRay(d.Path, d.Scene, ray, rng)
				if !isFinite(radiance) {
					logging.Warn("non-finite radiance at pixel (%d,%d), sample %d: %v", x, y, s, radiance)
				}
				d.Buffer.AddSample(x, y, radiance)

				if s == 0 {
					d.sampleAOVs(x, y, ray, rng)
				}
			}
			d.AOVs.SetWallClock(x, y, float32(time.Since(pixelStart).Seconds()))
			d.pollFlush()
		}
	}
}

// sampleAOVs fills in whichever AOVs the driver's AOVSet has enabled, using
// the pixel's first primary ray only — AOVs describe a single surface hit,
// not an average over the pixel's samples.
func (d *Driver) sampleAOVs(x, y int, ray core.Ray, rng *rand.Rand) {

	if d.AOVs.AO != nil {
		ao, ok := integrator.AmbientOcclusion(d.AO, d.Scene, ray, rng)
		if ok {
			d.AOVs.SetAO(x, y, ao)
		}
	}

	if d.AOVs.Hit == nil && d.AOVs.Distance == nil && d.AOVs.Normal == nil &&
		d.AOVs.Tangent == nil && d.AOVs.Bitangent == nil && d.AOVs.TexCoord == nil &&
		d.AOVs.Diffuse == nil && d.AOVs.Specular == nil {
		return
	}

	ri, hit := d.Scene.FindIntersection(ray, 1e-4)
	d.AOVs.SetHit(x, y, hit)
	if !hit {
		return
	}
	ri.FaceForward()
	d.AOVs.SetDistance(x, y, ri.Distance)
	d.AOVs.SetNormal(x, y, ri.Normal)
	d.AOVs.SetTangent(x, y, ri.Tangent)
	d.AOVs.SetBitangent(x, y, ri.Bitangent)
	d.AOVs.SetTexCoord(x, y, ri.TexCoord)

	mat := d.Scene.MaterialAt(ri.MaterialID)
	d.AOVs.SetDiffuse(x, y, d.Scene.Evaluate(mat.Diffuse, ri))
	d.AOVs.SetSpecular(x, y, d.Scene.Evaluate(mat.Specular, ri))
}
