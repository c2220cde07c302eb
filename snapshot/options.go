package snapshot

import (
	"fmt"
	"log/slog"

	"github.com/arloliu/bitpack/endian"
	"github.com/arloliu/bitpack/format"
	"github.com/arloliu/bitpack/internal/logging"
	"github.com/arloliu/bitpack/internal/options"
)

// Config holds the settings of a snapshot encoding.
type Config struct {
	compression format.CompressionType
	engine      endian.EndianEngine
	logger      *slog.Logger
}

// Option configures snapshot encoding.
type Option = options.Option[*Config]

func newConfig(opts []Option) (*Config, error) {
	cfg := &Config{
		compression: format.CompressionNone,
		engine:      endian.GetLittleEndianEngine(),
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	cfg.logger = logging.Component(cfg.logger, "snapshot")

	return cfg, nil
}

// WithCompression compresses the payload with the given codec. The default is
// format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *Config) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = compression
			return nil
		default:
			return fmt.Errorf("invalid snapshot compression: %s", compression)
		}
	})
}

// WithLittleEndian writes words and header fields little endian. This is the
// default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes words and header fields big endian.
func WithBigEndian() Option {
	return options.NoError(func(cfg *Config) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}

// WithLogger traces encoded and decoded snapshots at debug level.
func WithLogger(l *slog.Logger) Option {
	return options.NoError(func(cfg *Config) {
		cfg.logger = l
	})
}
