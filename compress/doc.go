// Package compress provides the codecs used to store decoded save buffers
// as snapshots.
//
// A decoded save is 359984 bytes, most of it zero-filled inventory and
// mission slots, so general-purpose compression shrinks it by an order of
// magnitude. The snapshot container records which codec produced its
// payload, so every codec here must be selectable by format.CompressionType:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(decoded)
//
// # Algorithms
//
//   - None: the payload is stored unchanged
//   - Zstd: best ratio, the default for stored snapshots
//   - S2: faster than Zstd with a slightly worse ratio
//   - LZ4: fastest to decompress
//
// # Build Tags
//
// Zstd uses github.com/klauspost/compress/zstd by default. Building with
// -tags gozstd (and cgo enabled) switches to github.com/valyala/gozstd.
//
// # Thread Safety
//
// All codecs are safe for concurrent use. The Zstd and LZ4 codecs pool their
// internal encoders and decoders with sync.Pool.
package compress
