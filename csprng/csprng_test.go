package csprng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sp301415/montgo/csprng"
)

func TestUniformSampler(t *testing.T) {
	s0 := csprng.NewUniformSamplerWithSeed([]byte("seed"))
	s1 := csprng.NewUniformSamplerWithSeed([]byte("seed"))

	t.Run("Deterministic", func(t *testing.T) {
		for i := 0; i < 2048; i++ {
			assert.Equal(t, s0.Sample(), s1.Sample())
		}
	})

	t.Run("SampleRange", func(t *testing.T) {
		for i := 0; i < 4096; i++ {
			x := s0.SampleRange(-3329<<15, 3329<<15-1)
			assert.GreaterOrEqual(t, x, int32(-3329<<15))
			assert.LessOrEqual(t, x, int32(3329<<15-1))
		}
		assert.Equal(t, int32(5), s0.SampleRange(5, 5))
		assert.Panics(t, func() { s0.SampleRange(1, 0) })
	})

	t.Run("FillRange", func(t *testing.T) {
		v := make([]int16, 256)
		s0.FillRange(v, -3328, 3328)
		for _, x := range v {
			assert.GreaterOrEqual(t, x, int16(-3328))
			assert.LessOrEqual(t, x, int16(3328))
		}
	})
}

func TestUniformSamplerRead(t *testing.T) {
	t.Run("Seeded", func(t *testing.T) {
		s0 := csprng.NewUniformSamplerWithSeed([]byte("read"))
		s1 := csprng.NewUniformSamplerWithSeed([]byte("read"))

		b0 := make([]byte, 256)
		b1 := make([]byte, 256)
		n0, err0 := s0.Read(b0)
		n1, err1 := s1.Read(b1)

		assert.NoError(t, err0)
		assert.NoError(t, err1)
		assert.Equal(t, len(b0), n0)
		assert.Equal(t, len(b1), n1)
		assert.Equal(t, b0, b1)
		assert.NotEqual(t, make([]byte, 256), b0)
	})

	t.Run("Unseeded", func(t *testing.T) {
		s0 := csprng.NewUniformSampler()
		s1 := csprng.NewUniformSampler()

		b0 := make([]byte, 64)
		b1 := make([]byte, 64)
		_, err := s0.Read(b0)
		assert.NoError(t, err)
		_, err = s1.Read(b1)
		assert.NoError(t, err)
		assert.NotEqual(t, b0, b1)

		v := make([]int16, 256)
		s0.FillRange(v, -3328, 3328)
		for _, x := range v {
			assert.GreaterOrEqual(t, x, int16(-3328))
			assert.LessOrEqual(t, x, int16(3328))
		}
	})
}

func TestStreamSampler(t *testing.T) {
	s := csprng.NewStreamSampler()

	for i := 0; i < 4096; i++ {
		assert.Less(t, s.SampleN(3329), uint64(3329))
	}

	v := make([]int16, 256)
	s.FillRange(v, -1<<15, 1<<15-1)

	buf := make([]byte, 64)
	n, err := s.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)
}
