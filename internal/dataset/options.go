package dataset

import "github.com/okian/marquee/pkg/logger"

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithSheet sets the worksheet read from XLSX files.
func WithSheet(name string) Option {
	return func(l *Loader) {
		if name != "" {
			l.sheet = name
		}
	}
}

// WithLogger sets a custom logger for the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}
