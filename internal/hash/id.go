// Package hash wraps xxHash64 for series-name lookups and session fingerprints.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Fingerprint accumulates an xxHash64 over a sequence of typed fields.
//
// Strings are length-prefixed so adjacent fields cannot alias each other.
type Fingerprint struct {
	d   *xxhash.Digest
	buf [8]byte
}

// NewFingerprint creates an empty fingerprint.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{d: xxhash.New()}
}

func (f *Fingerprint) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(f.buf[:], v)
	_, _ = f.d.Write(f.buf[:])
}

func (f *Fingerprint) Uint16(v uint16) {
	f.Uint64(uint64(v))
}

func (f *Fingerprint) Float64(v float64) {
	f.Uint64(math.Float64bits(v))
}

func (f *Fingerprint) String(s string) {
	f.Uint64(uint64(len(s)))
	_, _ = f.d.WriteString(s)
}

// Sum64 returns the current hash value.
func (f *Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}
