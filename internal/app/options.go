package app

import (
	"io"

	"github.com/okian/marquee/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithOutput redirects report output; defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Service) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithTopN bounds the votes report list length.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithLikeBarWidth caps the like marks per ranked entry.
func WithLikeBarWidth(width int) Option {
	return func(s *Service) {
		if width > 0 {
			s.likeBarWidth = width
		}
	}
}
