// Package oracle computes reference results for the mont package
// with plain modular arithmetic, independent of Montgomery reduction.
package oracle

import (
	"github.com/tuneinsight/lattigo/v6/ring"

	"github.com/sp301415/montgo/num"
)

// Oracle computes exact residues modulo q.
type Oracle struct {
	q uint64

	rInv   uint64
	mont   uint64
	bConst [2]uint64
}

// New creates a new Oracle for the modulus q and the radix 2^logR.
// q must be an odd prime. Panics if q is even or smaller than 3.
func New(q uint64, logR int) *Oracle {
	if q < 3 || q&1 == 0 {
		panic("modulus must be an odd prime")
	}

	r := ring.ModExp(2, uint64(logR), q)

	return &Oracle{
		q: q,

		rInv:   ring.ModExp(r, q-2, q),
		mont:   r,
		bConst: ring.GenBRedConstant(q),
	}
}

// Modulus returns the modulus of the Oracle.
func (o *Oracle) Modulus() uint64 {
	return o.q
}

// Mod returns a mod q in [0, q).
func (o *Oracle) Mod(a int64) uint64 {
	m := a % int64(o.q)
	if m < 0 {
		m += int64(o.q)
	}
	return uint64(m)
}

// Residue returns a * R^-1 mod q in [0, q).
func (o *Oracle) Residue(a int32) uint64 {
	return ring.BRed(o.Mod(int64(a)), o.rInv, o.q, o.bConst)
}

// MontResidue returns a * R mod q in [0, q).
func (o *Oracle) MontResidue(a int64) uint64 {
	return ring.BRed(o.Mod(a), o.mont, o.q, o.bConst)
}

// MulMod returns a * b mod q in [0, q).
func (o *Oracle) MulMod(a, b int64) uint64 {
	return ring.BRed(o.Mod(a), o.Mod(b), o.q, o.bConst)
}

// Congruent reports whether t and x are congruent modulo q.
func (o *Oracle) Congruent(t int64, x uint64) bool {
	return o.Mod(t) == x%o.q
}

// Centered returns the representative of x mod q in (-q/2, q/2].
func (o *Oracle) Centered(x int64) int64 {
	return num.Centered(x, int64(o.q))
}
