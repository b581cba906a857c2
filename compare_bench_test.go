package samecontent_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/dustin/go-humanize"

	"github.com/kalbasit/samecontent"
)

var benchSizes = []int{
	64 * 1024,        // 64 KiB
	1 * 1024 * 1024,  // 1 MiB
	10 * 1024 * 1024, // 10 MiB
}

func benchData(b *testing.B, size int) []byte {
	b.Helper()

	data := make([]byte, size)
	if _, err := rand.Read(data); err != nil {
		b.Fatal(err)
	}

	return data
}

// BenchmarkReadersEqual benchmarks a full pass over two equal streams.
func BenchmarkReadersEqual(b *testing.B) {
	for _, size := range benchSizes {
		data := benchData(b, size)
		other := bytes.Clone(data)

		b.Run(humanize.IBytes(uint64(size)), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				same, err := samecontent.Readers(bytes.NewReader(data), bytes.NewReader(other))
				if err != nil || !same {
					b.Fatalf("same=%v err=%v", same, err)
				}
			}
		})
	}
}

// BenchmarkBufferSizes benchmarks the effect of the buffer size on a 10 MiB pass.
func BenchmarkBufferSizes(b *testing.B) {
	const size = 10 * 1024 * 1024

	data := benchData(b, size)
	other := bytes.Clone(data)

	for _, bufferSize := range []int{64, samecontent.DefaultBufferSize, 4 * 1024, 64 * 1024} {
		c, err := samecontent.New(samecontent.WithBufferSize(bufferSize))
		if err != nil {
			b.Fatal(err)
		}

		b.Run(humanize.IBytes(uint64(bufferSize)), func(b *testing.B) {
			b.SetBytes(size)
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := c.Readers(bytes.NewReader(data), bytes.NewReader(other)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkFilesSizeMismatch benchmarks the precheck path, which reads nothing.
func BenchmarkFilesSizeMismatch(b *testing.B) {
	data := benchData(b, 1024*1024)
	shorter := data[:len(data)-1]

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		same, err := samecontent.Files(bytes.NewReader(data), bytes.NewReader(shorter))
		if err != nil || same {
			b.Fatalf("same=%v err=%v", same, err)
		}
	}
}

// BenchmarkEarlyExit benchmarks streams that differ in their first byte.
func BenchmarkEarlyExit(b *testing.B) {
	data := benchData(b, 10*1024*1024)
	other := bytes.Clone(data)
	other[0] ^= 0xff

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		same, err := samecontent.Readers(bytes.NewReader(data), bytes.NewReader(other))
		if err != nil || same {
			b.Fatalf("same=%v err=%v", same, err)
		}
	}
}
