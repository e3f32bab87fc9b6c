package decoder

import (
	"errors"

	"github.com/arloliu/telelog/endian"
	"github.com/arloliu/telelog/internal/options"
)

// Config holds decoder settings.
type Config struct {
	engine endian.EndianEngine
}

// Option configures a SessionDecoder.
type Option = options.Option[*Config]

func defaultConfig() *Config {
	return &Config{engine: endian.GetLittleEndianEngine()}
}

// WithByteOrder sets the byte order of multi-byte fields.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(c *Config) error {
		if engine == nil {
			return errors.New("byte order engine must not be nil")
		}
		c.engine = engine

		return nil
	})
}

// WithLittleEndian reads fields least-significant byte first. This is the default.
func WithLittleEndian() Option {
	return WithByteOrder(endian.GetLittleEndianEngine())
}

// WithBigEndian reads fields most-significant byte first.
func WithBigEndian() Option {
	return WithByteOrder(endian.GetBigEndianEngine())
}
