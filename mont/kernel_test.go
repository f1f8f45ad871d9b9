package mont

import (
	"io"
	"testing"
	"unsafe"

	"github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sp301415/montgo/csprng"
)

func TestTableLayout(t *testing.T) {
	var table Table
	assert.Equal(t, uintptr(0), unsafe.Offsetof(table.Q))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(table.QInv))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(table.Mont))

	for i := 0; i < BatchSize; i++ {
		assert.Equal(t, int16(Q), defaultTable.Q[i])
		assert.Equal(t, int16(QInv), defaultTable.QInv[i])
		assert.Equal(t, int16(Mont), defaultTable.Mont[i])
	}
}

func TestKernels(t *testing.T) {
	t.Logf("AVX2: %v", hasAVX2)

	sampler := csprng.NewUniformSamplerWithSeed([]byte("montgo/kernels"))

	t.Run("ToMont", func(t *testing.T) {
		var x, y Batch
		for n := 0; n < 4096; n++ {
			for i := range x {
				x[i] = sampler.SampleInt16()
			}
			y = x

			toMontBatch(&x, defaultTable)
			toMontBatchGeneric(&y, defaultTable)
			require.Equal(t, y, x)
		}
	})

	t.Run("Reduce", func(t *testing.T) {
		var lo, hi, x, y Batch
		for n := 0; n < 4096; n++ {
			for i := range lo {
				lo[i] = sampler.SampleInt16()
				hi[i] = sampler.SampleInt16()
			}

			reduceBatch(&x, &lo, &hi, defaultTable)
			reduceBatchGeneric(&y, &lo, &hi, defaultTable)
			require.Equal(t, y, x)

			// The lane identity holds for every 32-bit value, not only the domain.
			for i := range lo {
				a := int32(hi[i])<<16 | int32(uint16(lo[i]))
				require.Equal(t, Reduce(a), x[i])
			}
		}
	})
}

func TestReduceTrace(t *testing.T) {
	prev := log.Root()
	log.SetDefault(log.NewLogger(log.NewTerminalHandlerWithLevel(io.Discard, log.LevelTrace, false)))
	defer log.SetDefault(prev)

	wasOn := TraceEnabled()
	SetTrace(true)
	defer SetTrace(wasOn)

	for _, a := range []int32{0, 1, -1, 12345678, -9876543, 1000000000, Q << 16, DomainMin, DomainMax} {
		assert.Equal(t, Reduce(a), ReduceTrace(a))
	}
}

func TestSelfTest(t *testing.T) {
	require.NoError(t, CheckConstants())
	require.NoError(t, SelfTest())
}
