package compress

import (
	"fmt"
	"testing"
)

func benchmarkPayloads() map[string][]byte {
	return map[string][]byte{
		"sparse_64KB":   sparsePayload(1<<19, 131),
		"dense_64KB":    sparsePayload(1<<19, 2),
		"sentinel_64KB": indexPayload(1 << 14),
	}
}

func BenchmarkAllCodecs_Compress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		for payloadName, data := range benchmarkPayloads() {
			b.Run(fmt.Sprintf("%s/%s", codecName, payloadName), func(b *testing.B) {
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
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	for codecName, codec := range getAllCodecs() {
		for payloadName, data := range benchmarkPayloads() {
			b.Run(fmt.Sprintf("%s/%s", codecName, payloadName), func(b *testing.B) {
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
}

func BenchmarkAllCodecs_Parallel(b *testing.B) {
	data := indexPayload(1 << 12)
	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Error(err)
						return
					}
				}
			})
		})
	}
}
