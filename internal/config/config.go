package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds output and render settings.
type Config struct {
	// Single render
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Output string `json:"output"`

	// Batch
	OutputDir string `json:"output_dir"`
	Workers   int    `json:"workers"`

	// Encoding
	Format string `json:"format"` // "bmp", "webp" or "tga"
	Scale  int    `json:"scale"`
}

// Defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultOutput = "out.bmp"
	DefaultFormat = "bmp"
)

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
	Width     int
	Height    int
	Output    string
	OutputDir string
	Workers   int
	Format    string
	Scale     int
}

// Resolve applies non-zero flags over the file values, then fills any
// remaining empty fields with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}

	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}
