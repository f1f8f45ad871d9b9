package csprng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
)

// StreamSampler sample values from uniform distribution.
// This uses AES-256 as a underlying prng.
// It is faster than UniformSampler but cannot be seeded.
type StreamSampler struct {
	prng cipher.Stream

	buf [bufSize]byte
	ptr int
}

// NewStreamSampler creates a new StreamSampler.
//
// Panics when read from crypto/rand or AES initialization fails.
func NewStreamSampler() *StreamSampler {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic(err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		panic(err)
	}

	iv := make([]byte, block.BlockSize())
	if _, err := rand.Read(iv); err != nil {
		panic(err)
	}

	return &StreamSampler{
		prng: cipher.NewCTR(block, iv),
		ptr:  bufSize,
	}
}

// Read implements the [io.Reader] interface.
func (s *StreamSampler) Read(p []byte) (n int, err error) {
	s.prng.XORKeyStream(p, p)
	return len(p), nil
}

// Sample uniformly samples a random uint64.
func (s *StreamSampler) Sample() uint64 {
	if s.ptr == bufSize {
		s.prng.XORKeyStream(s.buf[:], s.buf[:])
		s.ptr = 0
	}

	res := le64(s.buf[s.ptr:])
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
func (s *StreamSampler) SampleN(N uint64) uint64 {
	return sampleN(s, N)
}

// SampleRange uniformly samples a random integer in [lo, hi].
func (s *StreamSampler) SampleRange(lo, hi int32) int32 {
	return sampleRange(s, lo, hi)
}

// FillRange fills v with random integers in [lo, hi].
func (s *StreamSampler) FillRange(v []int16, lo, hi int16) {
	for i := range v {
		v[i] = int16(sampleRange(s, int32(lo), int32(hi)))
	}
}
