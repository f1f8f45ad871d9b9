package mont

import (
	"github.com/pkg/errors"

	"github.com/sp301415/montgo/num"
)

const (
	// Q is the ML-KEM modulus.
	Q = 3329
	// LogR is the bit size of the Montgomery radix.
	LogR = 16
	// R is the Montgomery radix 2^16.
	R = 1 << LogR

	// QInv is q^-1 mod 2^16, as a signed 16-bit value.
	QInv = -3327
	// Mont is 2^16 mod q, centered.
	Mont = -1044
	// MontSq is 2^32 mod q.
	MontSq = 1353

	// DomainMin is the smallest input of Reduce with a guaranteed output range.
	DomainMin = -Q << 15
	// DomainMax is the largest input of Reduce with a guaranteed output range.
	DomainMax = Q<<15 - 1

	// BatchSize is the number of lanes in a Batch.
	BatchSize = 16
	// N is the number of coefficients of an ML-KEM polynomial.
	N = 256
)

// CheckConstants recomputes QInv, Mont and MontSq from Q
// and reports the first one that disagrees with the compiled value.
func CheckConstants() error {
	qInv := num.ModInverse(Q, R)
	if int16(uint16(qInv)) != QInv {
		return errors.Errorf("QInv: compiled %d, computed %d", QInv, int16(uint16(qInv)))
	}

	mont := num.Centered(int64(num.ModExp(2, LogR, Q)), Q)
	if mont != Mont {
		return errors.Errorf("Mont: compiled %d, computed %d", Mont, mont)
	}

	montSq := num.ModExp(2, 2*LogR, Q)
	if montSq != MontSq {
		return errors.Errorf("MontSq: compiled %d, computed %d", MontSq, montSq)
	}

	q, qInvLo := int16(Q), int16(QInv)
	if q*qInvLo != 1 {
		return errors.New("q * QInv is not 1 mod 2^16")
	}

	return nil
}

// Table is the per-lane broadcast of the constants used by the batch operations.
// Its layout is read directly by the assembly kernels.
type Table struct {
	Q    Batch
	QInv Batch
	Mont Batch
}

// NewTable creates a new Table.
func NewTable() *Table {
	t := &Table{}
	for i := 0; i < BatchSize; i++ {
		t.Q[i] = Q
		t.QInv[i] = QInv
		t.Mont[i] = Mont
	}
	return t
}

// defaultTable is shared by every call that does not supply its own Table.
// It is never written after init.
var defaultTable = NewTable()

func init() {
	if err := CheckConstants(); err != nil {
		panic(errors.Wrap(err, "inconsistent montgomery constants"))
	}
}
