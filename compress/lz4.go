package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

const (
	// lz4InitialOutput covers a full gamedata buffer, so a snapshot payload
	// normally decodes without retrying.
	lz4InitialOutput = 384 * 1024
	// lz4MaxOutput bounds the retry loop for corrupt blocks.
	lz4MaxOutput = 16 * 1024 * 1024
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor stores payloads as a single LZ4 block. It is the fastest codec
// to decompress when listing or diffing many snapshots.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as one LZ4 block.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes one LZ4 block. The block does not carry its decoded size,
// so the output starts at the larger of 4x the input and one save buffer and
// doubles on a short buffer until lz4MaxOutput.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for size := max(len(data)*4, lz4InitialOutput); size <= lz4MaxOutput; size *= 2 {
		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			continue
		}
		if err != nil {
			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
