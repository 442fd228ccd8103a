package cli

import "tfa/internal/config"

// Flags holds command-line flags
type Flags struct {
	OutputDir string
	Workers   int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		OutputDir: f.OutputDir,
		Workers:   f.Workers,
	}
}
