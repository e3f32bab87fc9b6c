// Package compress provides whole-file codecs for compressed telemetry logs.
//
// A telemetry log may be stored compressed by a general-purpose tool. The
// loader decompresses the entire file in memory before decoding, so the
// codecs here operate on complete buffers:
//   - None: the data is returned as-is
//   - Zstd: Zstandard frames (the format written by the zstd CLI)
//   - S2: S2/Snappy framed streams (the format written by s2c)
//   - LZ4: LZ4 frames (the format written by the lz4 CLI)
//
// Detect recognizes the three compressed formats by their magic bytes.
//
// The zstd codec is pure Go (klauspost/compress) by default. Building with
// the gozstd tag switches it to the cgo binding of the reference library.
package compress
