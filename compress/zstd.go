package compress

// ZstdCompressor reads and writes Zstandard frames.
//
// The implementation is selected at build time: zstd_pure.go (default) or
// zstd_cgo.go (gozstd build tag).
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
