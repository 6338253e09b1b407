// Package main is the caveview command: generate a cave and fly around it.
package main

import (
	"fmt"
	"os"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/cavekit/cavemesh/internal/config"
	"github.com/cavekit/cavemesh/internal/logger"
	"github.com/cavekit/cavemesh/internal/meshgen"
	"github.com/cavekit/cavemesh/internal/pipeline"
	"github.com/cavekit/cavemesh/internal/render"
	"github.com/cavekit/cavemesh/pkg/math"
)

// Mesh colors: top surface, walls, floor.
var (
	topColor   = [3]float32{0.55, 0.52, 0.48}
	wallColor  = [3]float32{0.35, 0.30, 0.28}
	floorColor = [3]float32{0.20, 0.16, 0.12}
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	res, err := pipeline.BuildMeshes(cfg)
	if err != nil {
		logger.Error("mesh generation failed", zap.Error(err))
		os.Exit(1)
	}

	if err := run(cfg, res); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, res *meshgen.Result) error {
	win, err := render.NewWindow(render.WindowConfig{
		Title:  "caveview",
		Width:  cfg.Viewer.Width,
		Height: cfg.Viewer.Height,
		VSync:  cfg.Viewer.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	r, err := render.NewRenderer()
	if err != nil {
		return err
	}
	defer r.Close()

	top := render.Upload(&res.Top)
	defer top.Delete()
	walls := render.Upload(&res.Walls)
	defer walls.Delete()
	floor := render.Upload(&res.Floor)
	defer floor.Delete()

	cam := render.NewOrbitCamera()
	// The floor always spans the whole map, so it frames the scene.
	cam.FitToBounds(res.Floor.Bounds.Min, res.Floor.Bounds.Max)

	width, height := win.Size()
	r.Resize(width, height)

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					return nil
				}
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					width, height = int(e.Data1), int(e.Data2)
					r.Resize(width, height)
				}
			case *sdl.MouseMotionEvent:
				if e.State&sdl.ButtonLMask() != 0 {
					cam.HandleDrag(float32(e.XRel), float32(e.YRel))
				}
			case *sdl.MouseWheelEvent:
				cam.HandleZoom(float32(e.Y))
			}
		}

		aspect := float32(width) / float32(height)
		proj := math.Perspective(0.9, aspect, 0.1, 5000)

		r.Begin(cam.ViewMatrix(), proj)
		r.Draw(top, topColor)
		r.Draw(walls, wallColor)
		r.Draw(floor, floorColor)
		win.SwapBuffers()
	}
}
