// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load(ctx) layers defaults, an optional YAML file, and environment vars.
// - External errors must be wrapped via this package's error helpers.
package config

// Default report parameters.
const (
	defaultSheetName    = "title.basics"
	defaultTopN         = 10
	defaultLikeBarWidth = 80
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// FilePath is the dataset to load. Usually set via MOVIES_FILE_PATH.
	FilePath string `koanf:"file_path"`

	// SheetName selects the worksheet when the dataset is an XLSX file.
	SheetName string `koanf:"sheet_name"`

	// TopN bounds the length of the votes report list.
	TopN int `koanf:"top_n"`

	// LikeBarWidth caps the like marks printed per entry in the votes report.
	LikeBarWidth int `koanf:"like_bar_width"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		FilePath:     "",
		SheetName:    defaultSheetName,
		TopN:         defaultTopN,
		LikeBarWidth: defaultLikeBarWidth,
	}
}
