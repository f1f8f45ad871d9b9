// Package csprng implements samplers for random reduction inputs.
package csprng

import (
	"math"
)

type source interface {
	Sample() uint64
}

func le64(b []byte) uint64 {
	var res uint64
	res |= uint64(b[0])
	res |= uint64(b[1]) << 8
	res |= uint64(b[2]) << 16
	res |= uint64(b[3]) << 24
	res |= uint64(b[4]) << 32
	res |= uint64(b[5]) << 40
	res |= uint64(b[6]) << 48
	res |= uint64(b[7]) << 56
	return res
}

func sampleN(s source, N uint64) uint64 {
	bound := math.MaxUint64 - (math.MaxUint64 % N)
	for {
		res := s.Sample()
		if res < bound {
			return res % N
		}
	}
}

func sampleRange(s source, lo, hi int32) int32 {
	if lo > hi {
		panic("empty range")
	}
	return lo + int32(sampleN(s, uint64(int64(hi)-int64(lo)+1)))
}
