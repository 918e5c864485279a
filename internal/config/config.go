package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	TexturePath string `json:"texture"`
	OutputDir   string `json:"output_dir"`

	// Render settings
	RenderSize  int  `json:"render_size"`
	Supersample int  `json:"supersample"`
	Frames      int  `json:"frames"`
	Workers     int  `json:"workers"`
	Wireframe   bool `json:"wireframe"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	TexturePath string
	OutputDir   string
	Size        int
	Supersample int
	Frames      int
	Workers     int
	Wireframe   bool
}

// Resolve applies CLI overrides and fills remaining empty fields with
// defaults. CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.TexturePath != "" {
		c.TexturePath = flags.TexturePath
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Wireframe {
		c.Wireframe = true
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
