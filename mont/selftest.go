package mont

import (
	"github.com/pkg/errors"
)

// knownAnswers are input/output pairs of Reduce.
// The inputs q << 16 and (q+1) << 16 are outside the domain;
// they pin the exact bit behaviour rather than the output range.
var knownAnswers = []struct {
	in  int32
	out int16
}{
	{0, 0},
	{Q << 16, Q},
	{1 << 16, 1},
	{2 << 16, 2},
	{(Q - 1) << 16, Q - 1},
	{(Q + 1) << 16, Q + 1},
	{-1 << 16, -1},
	{-2 << 16, -2},
	{12345678, -1207},
	{-9876543, -1799},
}

// selfTestBatch covers zero, both signs, multiples of q and the int16 extremes.
var selfTestBatch = Batch{0, Q, 1, 2, Q - 1, Q + 1, -1, -2, 100, 500, 1000, 2000, 3000, -1000, 32767, -32768}

// SelfTest checks Reduce against known answers,
// and checks that ToMontBatch and ReduceBatch agree with Reduce on every lane.
func SelfTest() error {
	for _, ka := range knownAnswers {
		if got := Reduce(ka.in); got != ka.out {
			return errors.Errorf("Reduce(%d): got %d, want %d", ka.in, got, ka.out)
		}
	}

	var want Batch
	for i := 0; i < BatchSize; i++ {
		want[i] = Reduce(int32(selfTestBatch[i]) * Mont)
	}

	got := selfTestBatch
	ToMontBatch(&got, defaultTable)
	if lanes := DivergentLanes(&got, &want); lanes.Any() {
		return errors.Errorf("ToMontBatch diverges from Reduce on lanes %v", lanes)
	}

	var products [BatchSize]int32
	for i := 0; i < BatchSize; i++ {
		products[i] = int32(selfTestBatch[i]) * int32(selfTestBatch[BatchSize-1-i])
		want[i] = Reduce(products[i])
	}

	lo, hi := Split(&products)
	ReduceBatch(&got, &lo, &hi, defaultTable)
	if lanes := DivergentLanes(&got, &want); lanes.Any() {
		return errors.Errorf("ReduceBatch diverges from Reduce on lanes %v", lanes)
	}

	return nil
}
