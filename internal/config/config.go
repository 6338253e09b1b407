// Package config handles tool configuration loading and management.
package config

// Config holds all settings for the cavemesh tools.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// MapConfig selects the grid source: a map file, or the cave generator when
// Path is empty.
type MapConfig struct {
	Path          string `yaml:"path"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	FillPercent   int    `yaml:"fill_percent"`
	SmoothSteps   int    `yaml:"smooth_steps"`
	BorderWalls   bool   `yaml:"border_walls"`
	MinRegionSize int    `yaml:"min_region_size"`
	Seed          int64  `yaml:"seed"`
}

// MeshConfig holds mesh generation parameters.
type MeshConfig struct {
	CellSize   float32 `yaml:"cell_size"`
	WallHeight float32 `yaml:"wall_height"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	OBJPath string `yaml:"obj_path"`
}

// ViewerConfig holds display settings for caveview.
type ViewerConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	VSync  bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Width:         64,
			Height:        64,
			FillPercent:   45,
			SmoothSteps:   5,
			BorderWalls:   true,
			MinRegionSize: 10,
			Seed:          0,
		},
		Mesh: MeshConfig{
			CellSize:   1.0,
			WallHeight: 5.0,
		},
		Output: OutputConfig{
			OBJPath: "cave.obj",
		},
		Viewer: ViewerConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
