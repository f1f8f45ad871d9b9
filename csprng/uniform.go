package csprng

import (
	"crypto/rand"

	"golang.org/x/crypto/blake2b"
)

// bufSize is the default buffer size of UniformSampler.
const bufSize = 8192

// UniformSampler samples values from uniform distribution.
// This uses blake2b as a underlying prng.
// Two samplers with the same seed produce the same values,
// which makes failing inputs reproducible.
type UniformSampler struct {
	prngWriter blake2b.XOF
	prngReader blake2b.XOF

	buf [bufSize]byte
	ptr int
}

// NewUniformSampler creates a new UniformSampler.
//
// Panics when read from crypto/rand or blake2b initialization fails.
func NewUniformSampler() *UniformSampler {
	seed := make([]byte, 16)
	if _, err := rand.Read(seed); err != nil {
		panic(err)
	}
	return NewUniformSamplerWithSeed(seed)
}

// NewUniformSamplerWithSeed creates a new UniformSampler, with user supplied seed.
//
// Panics when blake2b initialization fails.
func NewUniformSamplerWithSeed(seed []byte) *UniformSampler {
	prng, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		panic(err)
	}

	if _, err = prng.Write(seed); err != nil {
		panic(err)
	}

	return &UniformSampler{
		prngWriter: prng,
		prngReader: prng.Clone(),

		buf: [bufSize]byte{},
		ptr: bufSize,
	}
}

// Read implements the [io.Reader] interface.
func (s *UniformSampler) Read(p []byte) (n int, err error) {
	return s.prngReader.Read(p)
}

// Sample uniformly samples a random uint64.
func (s *UniformSampler) Sample() uint64 {
	if s.ptr == bufSize {
		if _, err := s.prngReader.Read(s.buf[:]); err != nil {
			panic(err)
		}
		s.ptr = 0
	}

	res := le64(s.buf[s.ptr:])
	s.ptr += 8

	return res
}

// SampleN uniformly samples a random integer in [0, N).
func (s *UniformSampler) SampleN(N uint64) uint64 {
	return sampleN(s, N)
}

// SampleRange uniformly samples a random integer in [lo, hi].
func (s *UniformSampler) SampleRange(lo, hi int32) int32 {
	return sampleRange(s, lo, hi)
}

// SampleInt16 uniformly samples a random int16.
func (s *UniformSampler) SampleInt16() int16 {
	return int16(s.Sample())
}

// FillRange fills v with random integers in [lo, hi].
func (s *UniformSampler) FillRange(v []int16, lo, hi int16) {
	for i := range v {
		v[i] = int16(sampleRange(s, int32(lo), int32(hi)))
	}
}
