// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tracescene is the renderer's CLI entry point. It parses the
// trace_scene flag set, builds a render.Config, hands off to render.Driver,
// and writes the beauty image (PNG and HDR). The AOVs it enables are
// computed by the driver but not written to disk. Scene-file (TOML)
// parsing is an external collaborator this command does not implement
// (see SPEC_FULL.md); in its absence this builds a small programmatic demo
// scene so the rest of the pipeline (driver, integrator, artifacts) has
// something to render end to end.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/dacunni/fluxrt/artifacts"
	"github.com/dacunni/fluxrt/camera"
	"github.com/dacunni/fluxrt/integrator"
	"github.com/dacunni/fluxrt/light"
	"github.com/dacunni/fluxrt/logging"
	"github.com/dacunni/fluxrt/material"
	"github.com/dacunni/fluxrt/math32"
	"github.com/dacunni/fluxrt/render"
	"github.com/dacunni/fluxrt/scene"
	"github.com/dacunni/fluxrt/shape"
)

// cliFlags mirrors spec.md §6's trace_scene flag set, in the teacher's
// flat options-struct style (RenderInfo/app.App).
type cliFlags struct {
	threads             int
	spp                 int
	epsilon             float64
	maxDepth            int
	sensorScale         float64
	russianRoulette     float64
	noMonteCarloRefract bool
	noSampleCosine      bool
	noSampleSpecular    bool
	renderOrder         string
	flushTimeout        int
	ao                  bool
	aoCosine            bool
	aoSamples           int
	envMapPath          string
	envMapScale         float64
	verbose             bool
}

func main() {

	var f cliFlags
	flag.IntVar(&f.threads, "threads", 1, "worker thread count")
	flag.IntVar(&f.spp, "spp", 1, "samples per pixel")
	flag.Float64Var(&f.epsilon, "epsilon", 1e-4, "ray offset epsilon")
	flag.IntVar(&f.maxDepth, "maxdepth", 10, "maximum path depth")
	flag.Float64Var(&f.sensorScale, "sensorscale", 1.0, "sensor width/height multiplier")
	flag.Float64Var(&f.russianRoulette, "rr", 0.1, "russian roulette termination probability")
	flag.BoolVar(&f.noMonteCarloRefract, "nomontecarlorefraction", false, "trace both reflection and refraction instead of stochastic branch selection")
	flag.BoolVar(&f.noSampleCosine, "nosamplecosine", false, "disable cosine-weighted importance sampling")
	flag.BoolVar(&f.noSampleSpecular, "nosamplespecular", false, "disable Phong-lobe importance sampling")
	flag.StringVar(&f.renderOrder, "renderorder", "default", "pixel schedule: default|raster|tiled|progressive")
	flag.IntVar(&f.flushTimeout, "flushtimeout", 0, "periodic intermediate flush interval in seconds (0 disables)")
	flag.BoolVar(&f.ao, "ao", false, "compute the ambient occlusion AOV")
	flag.BoolVar(&f.aoCosine, "aocosine", true, "use cosine-weighted (vs. uniform) hemisphere sampling for AO")
	flag.IntVar(&f.aoSamples, "aosamples", 16, "ambient occlusion sample count")
	flag.StringVar(&f.envMapPath, "envmap", "", "environment map override path")
	flag.Float64Var(&f.envMapScale, "envmapscale", 1.0, "environment map radiance scale")
	flag.BoolVar(&f.verbose, "v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: tracescene [flags] <scene.toml>")
		os.Exit(1)
	}
	scenePath := flag.Arg(0)

	if f.verbose {
		logging.SetLevel(logging.INFO)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	defer zapLogger.Sync()

	// Scene-file parsing is out of core scope (spec.md §1); a missing or
	// unreadable scene path is still the documented load failure.
	if _, err := os.Stat(scenePath); err != nil {
		logging.Error("scene load failed: %v", err)
		os.Exit(1)
	}

	width, height := 960, 540
	scn := buildDemoScene()
	cam := buildDemoCamera(width, height)

	// -epsilon and -sensorscale are scene-loader-facing (they tune the
	// ray-offset and sensor dimensions a TOML-loaded scene would carry);
	// -envmap/-envmapscale likewise override what the loader would have
	// built. Without that loader in this binary there is nothing to scale
	// or override yet, so they are accepted and logged, not silently
	// dropped, for a scene loader to consume later.
	if f.epsilon != 1e-4 || f.sensorScale != 1.0 || f.envMapPath != "" {
		logging.Info("scene-loader-facing flags (epsilon=%g sensorscale=%g envmap=%q envmapscale=%g) have no effect without a scene loader",
			f.epsilon, f.sensorScale, f.envMapPath, f.envMapScale)
	}

	cfg := render.DefaultConfig(width, height)
	cfg.SamplesPerPixel = f.spp
	cfg.NumWorkers = f.threads
	cfg.Order = parseRenderOrder(f.renderOrder)

	pathCfg := integrator.DefaultConfig()
	pathCfg.MaxDepth = f.maxDepth
	pathCfg.RussianRouletteChance = float32(f.russianRoulette)
	pathCfg.ForceBothBranches = f.noMonteCarloRefract
	pathCfg.DisableCosineSampling = f.noSampleCosine
	pathCfg.DisableSpecularSampling = f.noSampleSpecular

	driver := render.NewDriver(cfg, scn, cam, pathCfg, zapLogger)
	driver.AO = integrator.AOConfig{Samples: f.aoSamples, MaxDist: 1e4, Cosine: f.aoCosine}
	if f.ao {
		driver.AOVs.WithAO()
	}
	driver.AOVs.WithHit().WithDistance().WithNormal().WithTangent().WithBitangent().
		WithTexCoord().WithDiffuse().WithSpecular().WithWallClock()

	driver.OnFlush = func(d *render.Driver) {
		logging.Info("flush requested, writing intermediate artifacts")
		if err := writeOutputs(d); err != nil {
			logging.Warn("intermediate flush failed: %v", err)
		}
	}

	installSignalHandlers(driver)
	if f.flushTimeout > 0 {
		go periodicFlush(driver, time.Duration(f.flushTimeout)*time.Second)
	}

	driver.Run()

	if err := writeOutputs(driver); err != nil {
		logging.Error("final artifact write failed: %v", err)
		os.Exit(1)
	}
}

func parseRenderOrder(name string) render.Order {
	switch name {
	case "raster":
		return render.OrderRaster
	case "progressive":
		return render.OrderProgressive
	case "tiled", "default":
		return render.OrderTiled
	default:
		logging.Warn("unknown -renderorder %q, falling back to tiled", name)
		return render.OrderTiled
	}
}

// installSignalHandlers wires SIGUSR1 and SIGALRM (and SIGINFO where the
// platform defines it, see signals_bsd.go) to the driver's cooperative
// flush-flag contract (spec.md §5/§9, restored from the original
// app/trace_scene.cpp's signal handling).
func installSignalHandlers(d *render.Driver) {

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, flushSignals()...)
	go func() {
		for range sigCh {
			d.RequestFlush()
		}
	}()
}

func periodicFlush(d *render.Driver, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		d.RequestFlush()
	}
}

// writeOutputs writes the beauty image of the fixed trace_ output family
// (spec.md §6): the tone-mapped PNG and the linear HDR. No AOV image is
// written.
func writeOutputs(d *render.Driver) error {

	if err := writeFile("trace_color.png", func(f *os.File) error { return artifacts.WritePNG(f, d.Buffer) }); err != nil {
		return err
	}
	if err := writeFile("trace_color.hdr", func(f *os.File) error { return artifacts.WriteRadianceHDR(f, d.Buffer) }); err != nil {
		return err
	}
	return nil
}

func writeFile(name string, write func(*os.File) error) error {

	f, err := os.Create(filepath.Clean(name))
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}

// buildDemoCamera returns a pinhole camera framing buildDemoScene's
// objects, standing in for the TOML-loaded camera spec.md §6 names.
func buildDemoCamera(width, height int) camera.Camera {

	aspect := float32(width) / float32(height)
	return camera.NewPinhole(
		math32.Vector3{X: 0, Y: 1.2, Z: 4},
		math32.Vector3{X: 0, Y: 0.5, Z: 0},
		math32.Vector3{X: 0, Y: 1, Z: 0},
		50, aspect,
	)
}

// buildDemoScene assembles a small scene (ground slab, two spheres, a
// point light and a disk light) so the render pipeline has something
// concrete to trace without a TOML scene loader.
func buildDemoScene() *scene.Scene {

	scn := scene.NewScene()

	scn.Materials = []material.Material{
		{ // 0: ground, matte grey
			Diffuse: material.ConstParam(math32.Color{R: 0.6, G: 0.6, B: 0.6}),
			Alpha:   material.ConstAlpha(1),
		},
		{ // 1: red diffuse sphere
			Diffuse: material.ConstParam(math32.Color{R: 0.8, G: 0.2, B: 0.2}),
			Alpha:   material.ConstAlpha(1),
		},
		{ // 2: mirror sphere
			Diffuse:          material.ConstParam(math32.Color{}),
			Specular:         material.ConstParam(math32.Color{R: 0.9, G: 0.9, B: 0.9}),
			SpecularExponent: 0,
			Alpha:            material.ConstAlpha(1),
		},
	}

	ground := shape.NewSlab(
		math32.Vector3{X: -50, Y: -0.5, Z: -50},
		math32.Vector3{X: 50, Y: 0, Z: 50},
		0,
	)
	scn.Traceables = append(scn.Traceables, scene.NewTraceable(ground, math32.IdentityTransform()))

	sphereTransform := func(center math32.Vector3) math32.Transform {
		var m math32.Matrix4
		m.MakeTranslation(center.X, center.Y, center.Z)
		return math32.NewTransform(&m)
	}

	redSphere := shape.NewSphere(math32.Vector3{}, 0.8, 1)
	scn.Traceables = append(scn.Traceables, scene.NewTraceable(redSphere, sphereTransform(math32.Vector3{X: -1, Y: 0.3, Z: 0})))

	mirrorSphere := shape.NewSphere(math32.Vector3{}, 0.8, 2)
	scn.Traceables = append(scn.Traceables, scene.NewTraceable(mirrorSphere, sphereTransform(math32.Vector3{X: 1, Y: 0.3, Z: 0})))

	scn.PointLights = []light.Point{
		*light.NewPoint(math32.Vector3{X: 2, Y: 4, Z: 3}, math32.Color{R: 20, G: 20, B: 18}),
	}
	scn.DiskLights = []light.Disk{
		*light.NewDisk(math32.Vector3{X: -2, Y: 3, Z: 1}, math32.Vector3{X: 0, Y: -1, Z: 0}, 0.5, math32.Color{R: 8, G: 8, B: 8}),
	}

	scn.BuildAccelerator()
	return scn
}
