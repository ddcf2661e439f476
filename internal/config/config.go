package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	InputDir   string `json:"input_dir"`
	TextureDir string `json:"texture_dir"`
	OutputDir  string `json:"output_dir"`

	// Parse settings
	Strict bool `json:"strict"`

	// Render settings
	RenderSize  int      `json:"render_size"`
	Supersample int      `json:"supersample"`
	Workers     int      `json:"workers"`
	Yaw         *float64 `json:"yaw,omitempty"`
	Pitch       *float64 `json:"pitch,omitempty"`

	// Key light relative to the camera, degrees
	LightAzimuth   *float64 `json:"light_azimuth,omitempty"`
	LightElevation *float64 `json:"light_elevation,omitempty"`

	// Design output
	WriteDesign bool `json:"write_design"`
	FitBounds   bool `json:"fit_bounds"`
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
	InputDir   string
	TextureDir string
	OutputDir  string
	Size       int
	Workers    int
	Strict     bool
	Design     bool
}

// Default view and light angles, degrees.
const (
	DefaultYaw            = 30.0
	DefaultPitch          = 20.0
	DefaultLightAzimuth   = 45.0
	DefaultLightElevation = 45.0
)

// Resolve applies flag overrides and fills in defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.InputDir != "" {
		c.InputDir = flags.InputDir
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.RenderSize = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Strict {
		c.Strict = true
	}
	if flags.Design {
		c.WriteDesign = true
	}

	if c.InputDir == "" {
		c.InputDir = "."
	}
	// Textures usually sit next to their models
	if c.TextureDir == "" {
		c.TextureDir = c.InputDir
	}
	if c.OutputDir == "" {
		c.OutputDir = filepath.Join(c.InputDir, "renders")
	}

	if c.RenderSize <= 0 {
		c.RenderSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Yaw == nil {
		yaw := DefaultYaw
		c.Yaw = &yaw
	}
	if c.Pitch == nil {
		pitch := DefaultPitch
		c.Pitch = &pitch
	}
	if c.LightAzimuth == nil {
		az := DefaultLightAzimuth
		c.LightAzimuth = &az
	}
	if c.LightElevation == nil {
		el := DefaultLightElevation
		c.LightElevation = &el
	}
}
