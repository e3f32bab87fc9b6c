package decoder

import (
	"fmt"

	"github.com/arloliu/telelog/encoding"
	"github.com/arloliu/telelog/internal/options"
	"github.com/arloliu/telelog/series"
)

// Stats summarizes a finished decode.
type Stats struct {
	Records       int // records decoded
	Definitions   int // definition records, including redefinitions
	NumericValues int // numeric value records
	TextValues    int // text value records
	TrailingBytes int // bytes left undecoded at the end (0 or 1)
}

// SessionDecoder decodes a complete telemetry log held in memory.
//
// Note: The SessionDecoder is NOT thread-safe and NOT reusable. After calling
// Decode, a new decoder must be created for further decoding.
type SessionDecoder struct {
	data  []byte
	cfg   *Config
	stats Stats
}

// NewSessionDecoder creates a decoder for data.
//
// Parameters:
//   - data: the whole log, starting with the header
//   - opts: optional configuration (see WithByteOrder)
//
// Returns:
//   - *SessionDecoder: decoder ready to Decode
//   - error: an invalid option
func NewSessionDecoder(data []byte, opts ...Option) (*SessionDecoder, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return &SessionDecoder{data: data, cfg: cfg}, nil
}

// Decode decodes the header and every record.
//
// On failure the returned session is nil: a partially decoded session is
// never exposed. Every error wraps one of the errs sentinels.
func (d *SessionDecoder) Decode() (*series.Session, error) {
	cur := encoding.NewCursor(d.data, d.cfg.engine)

	name, err := cur.ReadLengthPrefixedString()
	if err != nil {
		return nil, fmt.Errorf("header name: %w", err)
	}
	startTime, err := cur.ReadUint64()
	if err != nil {
		return nil, fmt.Errorf("header start time: %w", err)
	}

	reg := series.NewRegistry()
	rd := NewRecordDecoder(cur, reg)

	var stats Stats
	// a single trailing byte is padding, not a truncated record
	for cur.Remaining() > 1 {
		offset := cur.Pos()

		rec, err := rd.Next()
		if err == nil {
			err = rec.Apply(reg)
		}
		if err != nil {
			return nil, fmt.Errorf("record %d at offset %d: %w", stats.Records, offset, err)
		}

		stats.Records++
		switch rec.(type) {
		case *DefinitionRecord:
			stats.Definitions++
		case *NumericRecord:
			stats.NumericValues++
		case *TextRecord:
			stats.TextValues++
		}
	}
	stats.TrailingBytes = cur.Remaining()
	d.stats = stats

	return series.NewSession(name, startTime, reg), nil
}

// Stats returns the statistics of the last successful Decode.
func (d *SessionDecoder) Stats() Stats {
	return d.stats
}

// Decode decodes data into a session in one call.
func Decode(data []byte, opts ...Option) (*series.Session, error) {
	d, err := NewSessionDecoder(data, opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}
