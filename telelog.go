// Package telelog decodes binary telemetry logs into queryable time series.
//
// A telemetry log is a flat stream of self-describing records written by a
// recording device: a header naming the session, then series definitions
// interleaved with the numeric or text values of those series. Decoding
// produces a read-only series.Session.
//
// # Basic Usage
//
//	sess, err := telelog.LoadFile("telemetry.rrd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, s := range sess.DisplayableSeries() {
//	    fmt.Printf("%s [%s]\n", s.Name, s.Unit)
//	    for _, p := range s.SortedValues() {
//	        fmt.Printf("  %d: %s\n", p.Ts, p.Val)
//	    }
//	}
//
// Loading is all-or-nothing: on error no Session is returned, so callers
// holding a previously loaded Session should only replace it on success.
//
// # Package Structure
//
// This package wraps the decoder and compress packages for the common cases.
// Use the decoder package directly for record-level access.
package telelog

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/telelog/compress"
	"github.com/arloliu/telelog/decoder"
	"github.com/arloliu/telelog/endian"
	"github.com/arloliu/telelog/errs"
	"github.com/arloliu/telelog/format"
	"github.com/arloliu/telelog/internal/options"
	"github.com/arloliu/telelog/internal/pool"
	"github.com/arloliu/telelog/series"
)

type loadConfig struct {
	decoderOpts []decoder.Option
	compression format.CompressionType // 0 means not set
}

// LoadOption configures Load, LoadReader and LoadFile.
type LoadOption = options.Option[*loadConfig]

// WithCompression declares the compression of the input, disabling detection.
func WithCompression(ct format.CompressionType) LoadOption {
	return options.New(func(c *loadConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		c.compression = ct

		return nil
	})
}

// WithByteOrder sets the byte order of multi-byte fields (little-endian by default).
func WithByteOrder(engine endian.EndianEngine) LoadOption {
	return options.NoError(func(c *loadConfig) {
		c.decoderOpts = append(c.decoderOpts, decoder.WithByteOrder(engine))
	})
}

// WithBigEndian reads multi-byte fields most-significant byte first.
func WithBigEndian() LoadOption {
	return WithByteOrder(endian.GetBigEndianEngine())
}

func newLoadConfig(opts []LoadOption) (*loadConfig, error) {
	cfg := &loadConfig{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load decodes a complete log held in memory.
//
// data is treated as an uncompressed log unless WithCompression is given.
func Load(data []byte, opts ...LoadOption) (*series.Session, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}

	return load(data, cfg, format.CompressionNone)
}

// LoadReader reads r to EOF and decodes the log. Compressed input is
// recognized by its magic bytes unless WithCompression is given.
func LoadReader(r io.Reader, opts ...LoadOption) (*series.Session, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}

	buf := pool.GetLogBuffer()
	defer pool.PutLogBuffer(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	return load(buf.Bytes(), cfg, compress.Detect(buf.Bytes()))
}

// LoadFile reads and decodes the log at path. Compression is taken from
// WithCompression, else from the file extension, else from the magic bytes.
func LoadFile(path string, opts ...LoadOption) (*series.Session, error) {
	cfg, err := newLoadConfig(opts)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	fallback := format.CompressionTypeFromExt(path)
	if fallback == format.CompressionNone {
		fallback = compress.Detect(data)
	}

	return load(data, cfg, fallback)
}

func load(data []byte, cfg *loadConfig, fallback format.CompressionType) (*series.Session, error) {
	ct := cfg.compression
	if ct == 0 {
		ct = fallback
	}

	if ct != format.CompressionNone {
		raw, err := compress.Decompress(ct, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errs.ErrIO, err)
		}
		data = raw
	}

	return decoder.Decode(data, cfg.decoderOpts...)
}
