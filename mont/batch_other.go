//go:build !amd64 || purego

package mont

const hasAVX2 = false

func reduceBatch(dst, lo, hi *Batch, t *Table) {
	reduceBatchGeneric(dst, lo, hi, t)
}

func toMontBatch(b *Batch, t *Table) {
	toMontBatchGeneric(b, t)
}
