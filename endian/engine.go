// Package endian provides the byte order used to read fixed-width fields of a
// telemetry log.
//
// The recording device writes every integer least-significant byte first, so
// GetLittleEndianEngine is the default everywhere. A log produced on a
// big-endian host can be read by passing GetBigEndianEngine (or the host's own
// order from GetNativeEngine) to the decoder.
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine values are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian, so readers can
// decode fields in place and test helpers can append them without scratch buffers.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256: the first byte in memory is 0x01 only on big-endian hosts.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetNativeEngine returns the engine matching the host byte order.
func GetNativeEngine() EndianEngine {
	if IsNativeLittleEndian() {
		return binary.LittleEndian
	}

	return binary.BigEndian
}

// ParseEngine resolves a byte order name ("little", "big" or "native").
// An empty name selects little-endian.
func ParseEngine(name string) (EndianEngine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "little", "le":
		return GetLittleEndianEngine(), nil
	case "big", "be":
		return GetBigEndianEngine(), nil
	case "native", "host":
		return GetNativeEngine(), nil
	default:
		return nil, fmt.Errorf("unknown byte order %q (supported: little, big, native)", name)
	}
}
