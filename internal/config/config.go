package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Output settings
	OutputDir string
	ReportExt string

	// Writer settings
	Workers int

	// Command flags
	Flags Flags
}

// Flags holds command-line flags. Zero values mean "not set".
type Flags struct {
	OutputDir string
	Workers   int
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		OutputDir: DefaultOutputDir,
		ReportExt: DefaultReportExt,
		Workers:   DefaultWorkers,
	}
}

// Load creates a config and applies environment overrides. A .env file in the
// working directory is honored if present.
func Load() *Config {
	cfg := New()

	_ = godotenv.Load()

	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workers = n
		}
	}

	return cfg
}

// Apply overlays parsed command-line flags. Flags win over environment
// overrides, which win over defaults.
func (c *Config) Apply(flags Flags) {
	c.Flags = flags
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
}

// IndexPath returns the full path of the index document.
func (c *Config) IndexPath() string {
	return filepath.Join(c.OutputDir, IndexFileName)
}
