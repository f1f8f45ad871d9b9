package mont

import (
	"github.com/bits-and-blooms/bitset"
)

// Batch is a vector of 16 coefficients, one per lane.
type Batch [BatchSize]int16

// ReduceBatch is the lane-wise version of Reduce.
// Lane i of dst is set to Reduce(a_i), where a_i is the 32-bit value
// whose high half is hi[i] and whose low half is lo[i].
// dst may alias lo or hi.
func ReduceBatch(dst, lo, hi *Batch, t *Table) {
	reduceBatch(dst, lo, hi, t)
}

// ToMontBatch multiplies every lane of b by Mont and reduces it, in place.
// Lane i ends up as Reduce(b[i] * Mont), which is in (-q, q)
// and congruent to b[i] mod q.
func ToMontBatch(b *Batch, t *Table) {
	toMontBatch(b, t)
}

// ToMont is ToMontBatch with the default Table.
func ToMont(b *Batch) {
	toMontBatch(b, defaultTable)
}

// ReduceVec applies ReduceBatch to every 16-coefficient chunk.
// Panics if the slices have different lengths or the length is not a multiple of BatchSize.
func ReduceVec(dst, lo, hi []int16) {
	if len(lo) != len(dst) || len(hi) != len(dst) {
		panic("length mismatch")
	}
	if len(dst)%BatchSize != 0 {
		panic("length must be a multiple of BatchSize")
	}

	for i := 0; i < len(dst); i += BatchSize {
		reduceBatch((*Batch)(dst[i:i+BatchSize]), (*Batch)(lo[i:i+BatchSize]), (*Batch)(hi[i:i+BatchSize]), defaultTable)
	}
}

// ToMontVec applies ToMontBatch to every 16-coefficient chunk of v, in place.
// Panics if the length of v is not a multiple of BatchSize.
func ToMontVec(v []int16) {
	if len(v)%BatchSize != 0 {
		panic("length must be a multiple of BatchSize")
	}

	for i := 0; i < len(v); i += BatchSize {
		toMontBatch((*Batch)(v[i:i+BatchSize]), defaultTable)
	}
}

// Split returns the high and low 16-bit halves of every lane of a.
// ReduceBatch(dst, lo, hi, t) then reduces a lane by lane.
func Split(a *[BatchSize]int32) (lo, hi Batch) {
	for i := 0; i < BatchSize; i++ {
		lo[i] = int16(a[i])
		hi[i] = int16(a[i] >> 16)
	}
	return
}

// DivergentLanes returns the set of lanes where a and b differ.
func DivergentLanes(a, b *Batch) *bitset.BitSet {
	lanes := bitset.New(BatchSize)
	for i := 0; i < BatchSize; i++ {
		if a[i] != b[i] {
			lanes.Set(uint(i))
		}
	}
	return lanes
}
