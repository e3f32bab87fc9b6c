package compress

import (
	"bytes"
	"fmt"

	"github.com/arloliu/telelog/errs"
	"github.com/arloliu/telelog/format"
)

// Compressor compresses a complete buffer.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data.
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a complete buffer.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress returns the original data. Corrupted input or input produced
	// by another algorithm is reported as an error.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, compressionType)
}

var (
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
	s2Magic   = []byte{0xFF, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	snappy    = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// Detect returns the compression type announced by the leading magic bytes
// of data, or format.CompressionNone if none matches.
func Detect(data []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(data, lz4Magic):
		return format.CompressionLZ4
	case bytes.HasPrefix(data, s2Magic), bytes.HasPrefix(data, snappy):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// Decompress decompresses data with the codec for compressionType.
func Decompress(compressionType format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%s decompression failed: %w", compressionType, err)
	}

	return out, nil
}
