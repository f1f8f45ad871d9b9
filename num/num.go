// Package num implements various utility functions regarding numeric types.
package num

import (
	"strings"
)

// ModInverse returns the modular inverse of x modulo m.
// Output is always positive.
// Panics if x and m are not coprime.
func ModInverse(x, m uint64) uint64 {
	x %= m

	a, b := int64(x), int64(m)
	u, v := int64(1), int64(0)
	for b != 0 {
		q := a / b
		a, b = b, a-q*b
		u, v = v, u-q*v
	}

	if a != 1 {
		panic("modular inverse does not exist")
	}

	u %= int64(m)
	if u < 0 {
		u += int64(m)
	}
	return uint64(u)
}

// ModExp returns x^y mod q.
func ModExp(x, y, q uint64) uint64 {
	r := uint64(1)
	x %= q
	for y > 0 {
		if y&1 == 1 {
			r = (r * x) % q
		}
		x = (x * x) % q
		y >>= 1
	}
	return r
}

// Centered returns the representative of x mod q in (-q/2, q/2].
func Centered(x int64, q int64) int64 {
	x %= q
	if x < 0 {
		x += q
	}
	if x > q/2 {
		x -= q
	}
	return x
}

// FormatBits16 returns the two's complement bits of x,
// most significant first, grouped by nibbles.
func FormatBits16(x int16) string {
	return formatBits(uint64(uint16(x)), 16)
}

// FormatBits32 returns the two's complement bits of x,
// most significant first, grouped by nibbles.
func FormatBits32(x int32) string {
	return formatBits(uint64(uint32(x)), 32)
}

func formatBits(x uint64, n int) string {
	var sb strings.Builder
	sb.Grow(n + n/4)
	for i := n - 1; i >= 0; i-- {
		sb.WriteByte('0' + byte((x>>i)&1))
		if i%4 == 0 && i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
