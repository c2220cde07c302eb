package packedindex

import (
	"log/slog"

	"github.com/arloliu/bitpack/internal/logging"
	"github.com/arloliu/bitpack/internal/options"
)

// Config holds the optional settings of an Index.
type Config struct {
	logger *slog.Logger
}

// Option configures an Index.
type Option = options.Option[*Config]

func newConfig(opts []Option) *Config {
	cfg := &Config{}
	options.MustApply(cfg, opts...)
	cfg.logger = logging.Component(cfg.logger, "packedindex")

	return cfg
}

// WithLogger traces structural changes, such as value widening, at debug
// level. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		cfg.logger = l
	})
}
