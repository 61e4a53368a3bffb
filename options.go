package xmlparser

import (
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
)

type config struct {
	limit int
	log   hclog.Logger
	fs    afero.Fs
}

func newConfig(opts []Option) config {
	cfg := config{
		limit: DefaultBufferLength,
		log:   hclog.NewNullLogger(),
		fs:    afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option adjusts a parser, document or client.
type Option func(*config)

// WithBufferLength replaces the default cap on name, value and path
// segment accumulation. Lengths below one are ignored.
func WithBufferLength(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.limit = n
		}
	}
}

// WithLogger installs a logger. Parsing is silent without one.
func WithLogger(log hclog.Logger) Option {
	return func(cfg *config) {
		if log != nil {
			cfg.log = log
		}
	}
}

// WithFs replaces the filesystem documents are loaded from.
func WithFs(fs afero.Fs) Option {
	return func(cfg *config) {
		if fs != nil {
			cfg.fs = fs
		}
	}
}
