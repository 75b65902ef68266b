package ledger

import (
	"math"
	"math/big"
)

const (
	maxBasisPoints = 10_000
	// Fixed 365-day year used for pro-rating; not calendar-aware.
	secondsPerYear = 31_536_000
)

var accrualDivisor = big.NewInt(maxBasisPoints * secondsPerYear)

// accruedInterest returns floor(principal * apyBP * elapsed / (10000 * year))
// for elapsed seconds since start, clamped to >= 0. The three-way product
// can exceed 64 bits, so the math runs through big.Int.
func accruedInterest(principal uint64, apyBP uint32, elapsed int64) uint64 {
	if elapsed <= 0 || apyBP == 0 || principal == 0 {
		return 0
	}
	n := new(big.Int).SetUint64(principal)
	n.Mul(n, big.NewInt(int64(apyBP)))
	n.Mul(n, big.NewInt(elapsed))
	n.Quo(n, accrualDivisor)
	if !n.IsUint64() {
		return math.MaxUint64
	}
	return n.Uint64()
}

func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}
