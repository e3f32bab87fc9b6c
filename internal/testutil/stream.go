// Package testutil builds telemetry log streams for tests.
package testutil

import (
	"math"

	"github.com/arloliu/telelog/endian"
	"github.com/arloliu/telelog/section"
)

// StreamBuilder appends header and record bytes in wire layout.
type StreamBuilder struct {
	engine endian.EndianEngine
	buf    []byte
}

// NewStreamBuilder creates a little-endian builder.
func NewStreamBuilder() *StreamBuilder {
	return NewStreamBuilderWithEngine(endian.GetLittleEndianEngine())
}

// NewStreamBuilderWithEngine creates a builder using engine for multi-byte fields.
func NewStreamBuilderWithEngine(engine endian.EndianEngine) *StreamBuilder {
	return &StreamBuilder{engine: engine}
}

// Header appends a header. pad extra NUL bytes are counted in the name length.
func (b *StreamBuilder) Header(name string, startTime uint64, pad int) *StreamBuilder {
	b.buf = append(b.buf, byte(len(name)+pad))
	b.buf = append(b.buf, name...)
	b.buf = append(b.buf, make([]byte, pad)...)
	b.buf = b.engine.AppendUint64(b.buf, startTime)

	return b
}

// Definition appends a series definition record.
func (b *StreamBuilder) Definition(id uint16, name string, ts uint64, typeTag uint8, unit string) *StreamBuilder {
	b.buf = b.engine.AppendUint16(b.buf, section.DefinitionSeriesID)
	b.buf = append(b.buf, byte(len(name)))
	b.buf = append(b.buf, name...)
	b.buf = b.engine.AppendUint16(b.buf, id)
	b.buf = b.engine.AppendUint64(b.buf, ts)
	b.buf = append(b.buf, typeTag)

	var u [section.UnitSize]byte
	copy(u[:], unit)
	b.buf = append(b.buf, u[:]...)

	return b
}

// Numeric appends a numeric value record.
func (b *StreamBuilder) Numeric(id uint16, ts uint64, v float64) *StreamBuilder {
	b.buf = b.engine.AppendUint16(b.buf, id)
	b.buf = b.engine.AppendUint64(b.buf, ts)
	b.buf = b.engine.AppendUint64(b.buf, math.Float64bits(v))

	return b
}

// Text appends a text value record. pad extra NUL bytes are counted in the length.
func (b *StreamBuilder) Text(id uint16, ts uint64, s string, pad int) *StreamBuilder {
	b.buf = b.engine.AppendUint16(b.buf, id)
	b.buf = b.engine.AppendUint64(b.buf, ts)
	b.buf = b.engine.AppendUint32(b.buf, uint32(len(s)+pad)) //nolint:gosec
	b.buf = append(b.buf, s...)
	b.buf = append(b.buf, make([]byte, pad)...)

	return b
}

// Raw appends arbitrary bytes.
func (b *StreamBuilder) Raw(p ...byte) *StreamBuilder {
	b.buf = append(b.buf, p...)
	return b
}

// Len returns the number of bytes written so far.
func (b *StreamBuilder) Len() int {
	return len(b.buf)
}

// Bytes returns a copy of the stream.
func (b *StreamBuilder) Bytes() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)

	return out
}

// ExampleStream returns the session "rig1" started at 1000 with numeric
// series 7 "speed" (m/s) holding (1005, 3.5) and (1010, 4.25).
func ExampleStream() []byte {
	return NewStreamBuilder().
		Header("rig1", 1000, 0).
		Definition(7, "speed", 1000, 0, "m/s").
		Numeric(7, 1005, 3.5).
		Numeric(7, 1010, 4.25).
		Bytes()
}
