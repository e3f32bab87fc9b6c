// Package format defines the small enumerations shared across the telemetry
// log decoder: the declared value type of a series and the compression
// applied to a log file as a whole.
package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

type (
	ValueType       uint8
	CompressionType uint8
)

const (
	TypeNumeric ValueType = 0x0 // TypeNumeric represents float64 series values.
	TypeText    ValueType = 0x1 // TypeText represents UTF-8 string series values.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ValueTypeFromTag maps the definition record's type tag to a ValueType.
// Zero is numeric; every other tag is text.
func ValueTypeFromTag(tag uint8) ValueType {
	if tag == 0 {
		return TypeNumeric
	}

	return TypeText
}

// Tag returns the wire tag for the value type.
func (v ValueType) Tag() uint8 {
	return uint8(v)
}

func (v ValueType) String() string {
	switch v {
	case TypeNumeric:
		return "Numeric"
	case TypeText:
		return "Text"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a compression name as accepted on the command line.
func ParseCompressionType(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (supported: none, zstd, s2, lz4)", name)
	}
}

// CompressionTypeFromExt guesses the compression of a log file from its extension.
func CompressionTypeFromExt(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
