package compress

import (
	"testing"
)

const benchSaveSize = 359984

func BenchmarkAllCodecs_Compress(b *testing.B) {
	data := saveLikeData(benchSaveSize)

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for b.Loop() {
				if _, err := codec.Compress(data); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	data := saveLikeData(benchSaveSize)

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for b.Loop() {
				if _, err := codec.Decompress(compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkAllCodecs_CompressionRatio(b *testing.B) {
	data := saveLikeData(benchSaveSize)

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			var compressed []byte
			for b.Loop() {
				compressed, _ = codec.Compress(data)
			}
			b.ReportMetric(float64(len(compressed))/float64(len(data))*100, "ratio%")
		})
	}
}

func BenchmarkZstdDecompress_Parallel(b *testing.B) {
	codec := NewZstdCompressor()
	compressed, err := codec.Compress(saveLikeData(benchSaveSize))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := codec.Decompress(compressed); err != nil {
				b.Fatal(err)
			}
		}
	})
}
