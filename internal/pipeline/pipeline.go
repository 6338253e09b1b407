// Package pipeline wires the grid source to the mesh generator for the
// command-line tools.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cavekit/cavemesh/internal/cavegen"
	"github.com/cavekit/cavemesh/internal/config"
	"github.com/cavekit/cavemesh/internal/logger"
	"github.com/cavekit/cavemesh/internal/meshgen"
	"github.com/cavekit/cavemesh/pkg/mapfile"
)

// BuildGrid returns the occupancy grid selected by the config: a map file
// when a path is set, otherwise a freshly generated cave.
func BuildGrid(cfg *config.Config) (meshgen.Grid, error) {
	if cfg.Map.Path != "" {
		m, err := mapfile.ParseFile(cfg.Map.Path)
		if err != nil {
			return nil, err
		}
		w, h := m.Size()
		logger.Info("map loaded",
			zap.String("path", cfg.Map.Path),
			zap.Int("width", w),
			zap.Int("height", h),
			zap.Int("walls", m.CountWalls()),
		)
		return m, nil
	}

	cells, err := cavegen.Generate(cavegen.Config{
		Width:         cfg.Map.Width,
		Height:        cfg.Map.Height,
		FillPercent:   cfg.Map.FillPercent,
		SmoothSteps:   cfg.Map.SmoothSteps,
		BorderWalls:   cfg.Map.BorderWalls,
		MinRegionSize: cfg.Map.MinRegionSize,
		Seed:          cfg.Map.Seed,
	})
	if err != nil {
		return nil, fmt.Errorf("generating cave: %w", err)
	}
	grid, err := meshgen.NewBoolGrid(cells)
	if err != nil {
		return nil, fmt.Errorf("validating generated cave: %w", err)
	}
	logger.Info("cave generated",
		zap.Int("width", cfg.Map.Width),
		zap.Int("height", cfg.Map.Height),
		zap.Int64("seed", cfg.Map.Seed),
	)
	return grid, nil
}

// BuildMeshes runs the full grid-to-mesh pipeline and logs the result sizes.
func BuildMeshes(cfg *config.Config) (*meshgen.Result, error) {
	grid, err := BuildGrid(cfg)
	if err != nil {
		return nil, err
	}

	res, err := meshgen.Generate(grid, cfg.Mesh.CellSize, cfg.Mesh.WallHeight)
	if err != nil {
		return nil, fmt.Errorf("generating meshes: %w", err)
	}

	logger.Info("meshes generated",
		zap.Int("top_vertices", len(res.Top.Vertices)),
		zap.Int("top_triangles", res.Top.TriangleCount()),
		zap.Int("outlines", len(res.Outlines)),
		zap.Int("wall_triangles", res.Walls.TriangleCount()),
	)
	return res, nil
}
