// Package main is the cavemesh command: grid in, OBJ out.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cavekit/cavemesh/internal/config"
	"github.com/cavekit/cavemesh/internal/logger"
	"github.com/cavekit/cavemesh/internal/pipeline"
	"github.com/cavekit/cavemesh/pkg/obj"
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

	err = obj.WriteFile(cfg.Output.OBJPath,
		obj.NamedMesh{Name: "cave_top", Vertices: res.Top.Vertices, Indices: res.Top.Indices},
		obj.NamedMesh{Name: "cave_walls", Vertices: res.Walls.Vertices, Indices: res.Walls.Indices},
		obj.NamedMesh{Name: "cave_floor", Vertices: res.Floor.Vertices, Indices: res.Floor.Indices},
	)
	if err != nil {
		logger.Error("export failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("exported", zap.String("path", cfg.Output.OBJPath))
}
