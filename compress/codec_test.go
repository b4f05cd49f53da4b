package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/xcxsave/format"
)

func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

// saveLikeData mimics a decoded save: sparse records separated by long zero runs.
func saveLikeData(size int) []byte {
	data := make([]byte, size)
	for off := 0; off < size; off += 4096 {
		end := min(off+96, size)
		for i := off; i < end; i++ {
			data[i] = byte((i*7 + i*i) % 251)
		}
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		name    string
		ctype   format.CompressionType
		want    Codec
		wantErr bool
	}{
		{"none", format.CompressionNone, NoOpCompressor{}, false},
		{"zstd", format.CompressionZstd, ZstdCompressor{}, false},
		{"s2", format.CompressionS2, S2Compressor{}, false},
		{"lz4", format.CompressionLZ4, LZ4Compressor{}, false},
		{"invalid", format.CompressionType(0x7F), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateCodec(tt.ctype, "snapshot")
			if tt.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid snapshot compression")
				require.Nil(t, codec)

				return
			}
			require.NoError(t, err)
			require.IsType(t, tt.want, codec)
		})
	}
}

func TestGetCodec(t *testing.T) {
	for _, ctype := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(ctype)
		require.NoError(t, err, ctype.String())
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported compression type")
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name    string
		stats   CompressionStats
		ratio   float64
		savings float64
	}{
		{"half", CompressionStats{OriginalSize: 1000, CompressedSize: 500}, 0.5, 50.0},
		{"none", CompressionStats{OriginalSize: 1000, CompressedSize: 1000}, 1.0, 0.0},
		{"expansion", CompressionStats{OriginalSize: 100, CompressedSize: 125}, 1.25, -25.0},
		{"empty", CompressionStats{}, 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.ratio, tt.stats.CompressionRatio(), 1e-9)
			require.InDelta(t, tt.savings, tt.stats.SpaceSavings(), 1e-9)
		})
	}
}

func TestCompressWithStats(t *testing.T) {
	data := saveLikeData(359984)

	out, stats, err := CompressWithStats(NewZstdCompressor(), format.CompressionZstd, data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Equal(t, int64(len(data)), stats.OriginalSize)
	require.Equal(t, int64(len(out)), stats.CompressedSize)
	require.Less(t, stats.CompressionRatio(), 0.5)

	_, _, err = CompressWithStats(NewLZ4Compressor(), format.CompressionLZ4, nil)
	require.NoError(t, err)
}

func TestNoOpCompressor_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte{1, 2, 3}

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed)

			compressed, err = codec.Compress([]byte{})
			require.NoError(t, err)

			decompressed, err = codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{"single_byte", []byte{0x42}},
		{"header_only", []byte{0x00, 0x00, 0x01, 0x2C, 0x00, 0x00, 0x00, 0x01, 0x00, 0x05, 0x7E, 0x30, 0xDE, 0xAD, 0xBE, 0xEF}},
		{"repeated_pattern", bytes.Repeat([]byte("ABCD"), 100)},
		{"zero_save", make([]byte, 359984)},
		{"sparse_save", saveLikeData(359984)},
		{"encrypted_like", func() []byte {
			data := make([]byte, 8192)
			for i := range data {
				data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
			}

			return data
		}()},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed)
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{"random_bytes", []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{"text_as_compressed", []byte("this is not compressed data")},
		{"corrupted_header", []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err)
				})
			}
		})
	}
}

func TestAllCodecs_ConcurrentUsage(t *testing.T) {
	const numGoroutines = 16
	data := saveLikeData(64 * 1024)

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			done := make(chan error, numGoroutines)
			for range numGoroutines {
				go func() {
					c, err := codec.Compress(data)
					if err != nil {
						done <- err
						return
					}
					d, err := codec.Decompress(compressed)
					if err != nil {
						done <- err
						return
					}
					if !bytes.Equal(d, data) || len(c) == 0 {
						done <- fmt.Errorf("%s: round trip mismatch", codecName)
						return
					}
					done <- nil
				}()
			}

			for range numGoroutines {
				require.NoError(t, <-done)
			}
		})
	}
}

func TestLZ4Compressor_LargeExpansionRatio(t *testing.T) {
	// A zeroed buffer compresses far beyond the initial 4x decode buffer.
	data := make([]byte, 4*1024*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(data))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}
