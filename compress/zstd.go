package compress

// ZstdCompressor provides Zstandard compression. It gives the best ratio of
// the built-in codecs and is the default for stored snapshots.
//
// The pure Go implementation from klauspost/compress is used unless the
// module is built with the gozstd tag, which switches to the cgo binding.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
