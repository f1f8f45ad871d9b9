package mont

import (
	"os"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/log"

	"github.com/sp301415/montgo/num"
)

var traceOn atomic.Bool

func init() {
	traceOn.Store(os.Getenv("MONT_TRACE") == "1")
}

// SetTrace turns step tracing of ReduceTrace on or off.
// Tracing is off unless MONT_TRACE=1 is set in the environment.
func SetTrace(on bool) {
	traceOn.Store(on)
}

// TraceEnabled reports whether ReduceTrace logs its steps.
func TraceEnabled() bool {
	return traceOn.Load()
}

// ReduceTrace computes the same value as Reduce.
// When tracing is on, every intermediate value is logged at trace level
// with its two's complement bits.
// It is meant for inspection only and must not be used on secret data.
func ReduceTrace(a int32) int16 {
	if !traceOn.Load() {
		return Reduce(a)
	}

	logger := log.Root()
	logger.Trace("Montgomery reduction", "a", a, "bits", num.FormatBits32(a))

	t0 := int16(a) * QInv
	logger.Trace("Step 1: t0 = int16(a) * QInv",
		"int16(a)", int16(a), "int16(a).bits", num.FormatBits16(int16(a)),
		"QInv", QInv, "t0", t0, "bits", num.FormatBits16(t0))

	t1 := int32(t0)
	logger.Trace("Step 2: t1 = int32(t0)", "t1", t1, "bits", num.FormatBits32(t1))

	t2 := t1 * Q
	logger.Trace("Step 3: t2 = t1 * q", "q", Q, "t2", t2, "bits", num.FormatBits32(t2))

	t3 := a - t2
	logger.Trace("Step 4: t3 = a - t2", "t3", t3, "bits", num.FormatBits32(t3))

	t := int16(t3 >> LogR)
	logger.Trace("Step 5: t = t3 >> 16", "t", t, "bits", num.FormatBits16(t))

	return t
}
