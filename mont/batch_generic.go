package mont

// The portable batch kernels below mirror the AVX2 kernels instruction by instruction.
// Each helper is one 16-lane operation and never reads across lanes.

// mulloBatch sets z[i] to the low 16 bits of x[i] * y[i].
func mulloBatch(z, x, y *Batch) {
	for i := 0; i < BatchSize; i++ {
		z[i] = x[i] * y[i]
	}
}

// mulhiBatch sets z[i] to the high 16 bits of the signed product x[i] * y[i].
func mulhiBatch(z, x, y *Batch) {
	for i := 0; i < BatchSize; i++ {
		z[i] = int16((int32(x[i]) * int32(y[i])) >> 16)
	}
}

// subBatch sets z[i] to x[i] - y[i] mod 2^16.
func subBatch(z, x, y *Batch) {
	for i := 0; i < BatchSize; i++ {
		z[i] = x[i] - y[i]
	}
}

// montredGeneric computes dst = hi - mulhi(mullo(lo, QInv), Q).
//
// Since the low half of mullo(lo, QInv) * Q equals lo,
// subtracting it from the 32-bit value hi:lo leaves only the high halves,
// which is exactly (a - t*q) >> 16 of Reduce.
func montredGeneric(dst, lo, hi *Batch, t *Table) {
	var m Batch
	mulloBatch(&m, lo, &t.QInv)
	mulhiBatch(&m, &m, &t.Q)
	subBatch(dst, hi, &m)
}

func reduceBatchGeneric(dst, lo, hi *Batch, t *Table) {
	montredGeneric(dst, lo, hi, t)
}

func toMontBatchGeneric(b *Batch, t *Table) {
	var lo, hi Batch
	mulloBatch(&lo, b, &t.Mont)
	mulhiBatch(&hi, b, &t.Mont)
	montredGeneric(b, &lo, &hi, t)
}
