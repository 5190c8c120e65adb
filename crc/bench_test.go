package crc

import (
	"hash/crc32"
	"testing"

	crand "crypto/rand"
)

const (
	BlockSize = 16384
)

// bytewise folds one byte per iteration using only the first slice.
func bytewise(crc uint32, table *Table, data []byte) uint32 {
	crc = ^crc
	for _, v := range data {
		crc = table[0][byte(crc)^v] ^ crc>>8
	}
	return ^crc
}

func TestBytewise(t *testing.T) {
	buf := make([]byte, 1027)
	crand.Read(buf)

	table := MakeTable(IEEE)
	if Checksum(buf, table) != bytewise(0, table, buf) {
		t.Fatal("sliced and bytewise disagree")
	}
}

func BenchmarkNewTable(b *testing.B) {
	b.ReportAllocs()
	for n := 0; n < b.N; n++ {
		NewTable(IEEE)
	}
}

func BenchmarkBytewise(b *testing.B) {
	in := make([]byte, BlockSize)
	crand.Read(in)
	table := MakeTable(IEEE)

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		bytewise(0, table, in)
	}
}

func BenchmarkSliced(b *testing.B) {
	in := make([]byte, BlockSize)
	crand.Read(in)
	table := MakeTable(IEEE)

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		Update(0, table, in)
	}
}

func BenchmarkStdlib(b *testing.B) {
	in := make([]byte, BlockSize)
	crand.Read(in)

	b.SetBytes(BlockSize)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		crc32.ChecksumIEEE(in)
	}
}

func BenchmarkReference(b *testing.B) {
	in := make([]byte, 64)
	crand.Read(in)

	b.SetBytes(int64(len(in)))
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		ReferenceUpdate(0, IEEE, in)
	}
}
