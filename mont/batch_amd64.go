//go:build amd64 && !purego

package mont

import (
	"golang.org/x/sys/cpu"
)

// hasAVX2 reports whether the AVX2 kernels are used.
var hasAVX2 = cpu.X86.HasAVX2

// montredAVX2 is montredGeneric on YMM registers.
//
//go:noescape
func montredAVX2(dst, lo, hi *Batch, t *Table)

// tomontAVX2 is toMontBatchGeneric on YMM registers.
//
//go:noescape
func tomontAVX2(b *Batch, t *Table)

func reduceBatch(dst, lo, hi *Batch, t *Table) {
	if hasAVX2 {
		montredAVX2(dst, lo, hi, t)
		return
	}
	reduceBatchGeneric(dst, lo, hi, t)
}

func toMontBatch(b *Batch, t *Table) {
	if hasAVX2 {
		tomontAVX2(b, t)
		return
	}
	toMontBatchGeneric(b, t)
}
