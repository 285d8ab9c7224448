// Package config handles tool configuration loading and management.
package config

// Config holds all blendmirror settings.
type Config struct {
	Mirror  MirrorConfig  `yaml:"mirror"`
	Naming  NamingConfig  `yaml:"naming"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MirrorConfig holds the geometric mirroring settings.
type MirrorConfig struct {
	// Axis is the mirror axis: "x", "y" or "z". X is the conventional
	// left-right axis.
	Axis string `yaml:"axis"`
	// SeamPolicy is "copy" (seam sculpt applied directly) or "reflect"
	// (seam delta mirrored back toward the plane).
	SeamPolicy string `yaml:"seam_policy"`
	// LeftPositive flips side orientation: when true, the Left name tag
	// names the positive half of the mirror axis instead of the
	// negative (viewer-left) half.
	LeftPositive bool `yaml:"left_positive"`
	// SeamEpsilon is the on-plane distance below which a vertex counts
	// as a seam vertex. Zero uses the engine default.
	SeamEpsilon float64 `yaml:"seam_epsilon"`
	// TieTolerance is the distance difference under which two
	// nearest-neighbor candidates count as tied. Zero uses the engine
	// default.
	TieTolerance float64 `yaml:"tie_tolerance"`
}

// NamingConfig holds the side-marker naming convention.
type NamingConfig struct {
	LeftMarker  string `yaml:"left_marker"`
	RightMarker string `yaml:"right_marker"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	// Directory receives mirrored meshes. Empty means alongside the
	// source blendshape.
	Directory string `yaml:"directory"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Mirror: MirrorConfig{
			Axis:       "x",
			SeamPolicy: "copy",
		},
		Naming: NamingConfig{
			LeftMarker:  "_l_",
			RightMarker: "_r_",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
