package encoding

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/arloliu/telelog/endian"
	"github.com/arloliu/telelog/errs"
)

// Cursor reads primitive fields from a byte buffer.
//
// Note: Cursor is NOT thread-safe.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewCursor creates a cursor positioned at the start of data.
// A nil engine selects little-endian.
func NewCursor(data []byte, engine endian.EndianEngine) *Cursor {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return &Cursor{data: data, engine: engine}
}

// Pos returns the number of bytes consumed so far.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Engine returns the byte order used for multi-byte fields.
func (c *Cursor) Engine() endian.EndianEngine {
	return c.engine
}

// require verifies that n bytes remain without consuming them.
func (c *Cursor) require(context string, n int) error {
	if rem := c.Remaining(); rem < n {
		return errs.NewInsufficientData(context, n, rem)
	}

	return nil
}

// next consumes n bytes. The caller must have checked the bounds.
func (c *Cursor) next(n int) []byte {
	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b
}

// PeekUint8 returns the next byte without consuming it.
func (c *Cursor) PeekUint8() (uint8, error) {
	if err := c.require("uint8", 1); err != nil {
		return 0, err
	}

	return c.data[c.pos], nil
}

// ReadUint8 reads a single byte.
func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.require("uint8", 1); err != nil {
		return 0, err
	}

	return c.next(1)[0], nil
}

// ReadUint16 reads a 2-byte unsigned integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.require("uint16", 2); err != nil {
		return 0, err
	}

	return c.engine.Uint16(c.next(2)), nil
}

// ReadInt32 reads a 4-byte signed integer.
func (c *Cursor) ReadInt32() (int32, error) {
	if err := c.require("int32", 4); err != nil {
		return 0, err
	}

	return int32(c.engine.Uint32(c.next(4))), nil //nolint:gosec
}

// ReadUint64 reads an 8-byte unsigned integer.
func (c *Cursor) ReadUint64() (uint64, error) {
	if err := c.require("uint64", 8); err != nil {
		return 0, err
	}

	return c.engine.Uint64(c.next(8)), nil
}

// ReadFloat64 reads an 8-byte IEEE-754 double.
func (c *Cursor) ReadFloat64() (float64, error) {
	if err := c.require("float64", 8); err != nil {
		return 0, err
	}

	return math.Float64frombits(c.engine.Uint64(c.next(8))), nil
}

// ReadLengthPrefixedString reads a 1-byte length n followed by n bytes of
// NUL-padded UTF-8. Nothing is consumed unless all 1+n bytes are present.
func (c *Cursor) ReadLengthPrefixedString() (string, error) {
	n, err := c.PeekUint8()
	if err != nil {
		return "", err
	}

	total := 1 + int(n)
	if err := c.require("length-prefixed string", total); err != nil {
		return "", err
	}

	s, err := decodeString(c.data[c.pos+1 : c.pos+total])
	if err != nil {
		return "", err
	}
	c.pos += total

	return s, nil
}

// ReadFixedString reads exactly width bytes of NUL-padded UTF-8.
func (c *Cursor) ReadFixedString(width int) (string, error) {
	if width < 0 {
		return "", errs.NewInsufficientData("fixed string", width, c.Remaining())
	}
	if err := c.require("fixed string", width); err != nil {
		return "", err
	}

	s, err := decodeString(c.data[c.pos : c.pos+width])
	if err != nil {
		return "", err
	}
	c.pos += width

	return s, nil
}

// decodeString validates b as UTF-8 and strips trailing NUL padding.
func decodeString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", errs.ErrInvalidUTF8
	}

	return strings.TrimRight(string(b), "\x00"), nil
}
