// Package mont implements Montgomery reduction modulo the ML-KEM prime q = 3329
// with radix R = 2^16, for single values and for batches of 16 coefficients.
//
// All reductions are branch-free and do not depend on secret data
// for their running time.
package mont

// Reduce returns a 16-bit integer congruent to a * R^-1 mod q.
// If a is in [DomainMin, DomainMax], the output is in (-q, q).
// Inputs outside this range are not checked; the result is still
// the deterministic bit-exact output of the steps below.
func Reduce(a int32) int16 {
	t0 := int16(a) * QInv
	t1 := int32(t0)
	t2 := t1 * Q
	t3 := a - t2
	return int16(t3 >> LogR)
}

// FqMul returns a 16-bit integer congruent to a * b * R^-1 mod q.
// The product a * b must be in [DomainMin, DomainMax],
// which holds whenever one operand is in (-q, q).
func FqMul(a, b int16) int16 {
	return Reduce(int32(a) * int32(b))
}

// ToMontScalar returns Reduce(a * Mont).
// The output is congruent to a mod q and is in (-q, q) for every int16 a.
func ToMontScalar(a int16) int16 {
	return Reduce(int32(a) * Mont)
}

// InDomain returns 1 if a is in [DomainMin, DomainMax] and 0 otherwise.
// It runs in constant time.
func InDomain(a int32) int {
	lo := int64(a) - DomainMin
	hi := DomainMax - int64(a)
	return int(^uint64(lo|hi) >> 63)
}
