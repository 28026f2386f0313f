// Package lehmer implements the fixed-point Park–Miller multiplicative
// congruential generator whose injectivity shufflecheck verifies.
//
// The algorithm is the classical Lehmer generator with the Park–Miller
// constants (a = 16807, m = 2^31 - 1), evaluated in exact decimal
// arithmetic at 10 fractional digits with truncation toward zero at every
// precision reduction. Truncation (not round-to-nearest) is load-bearing:
// changing the rounding mode changes which inputs collide, so the fixed
// point of this package is bit-for-bit reproducibility of the reference
// arithmetic, independent of execution order or hardware.
//
// Schrage's decomposition is used to avoid overflowing the modulus:
//
//	hi    = trunc(seed / q)
//	lo    = seed - q*hi
//	seed' = a*lo - r*hi        (+ m if seed' <= 0)
//	value = trunc(seed' / m, 10 digits)
//
// where q = m/a = 127773 and r = m mod a = 2836.
//
// All arithmetic runs on shopspring/decimal, which is big.Int-backed and
// exact; QuoRem provides the truncating division the reference arithmetic
// requires. Binary floating point must never be substituted here.
package lehmer

import (
	"fmt"

	"github.com/shopspring/decimal"

	shuffleerrors "github.com/tamirms/shufflecheck/errors"
)

// FractionalDigits is the fixed precision of the generator's output.
// The mantissa of a generated value is its numerator scaled by
// 10^FractionalDigits.
const FractionalDigits = 10

// MaxMantissa is the largest mantissa the generator can produce,
// corresponding to the fixed-point value 1.0000000000. It does not fit in
// a uint32, hence mantissas are carried as uint64.
const MaxMantissa uint64 = 1e10

// Generator constants. Decimals are immutable, so sharing them across
// goroutines is safe.
var (
	constA = decimal.New(16807, 0)
	constM = decimal.New(2147483647, 0)
	constQ = decimal.New(127773, 0)
	constR = decimal.New(2836, 0)
	one    = decimal.New(1, 0)
)

// Mantissa maps one domain value to the scaled numerator of its
// fixed-point pseudo-random value in [0, 1).
//
// Mantissa is a pure function of v: it retains no state between
// invocations, which is what allows arbitrary partitioning across workers
// without affecting the output set.
//
// Returns ErrValueOutOfRange (wrapped with the offending input) if the
// result violates the generator's postconditions: a non-negative mantissa
// and a value no greater than one. Such a violation means the arithmetic
// itself is broken and the caller must abort the run.
func Mantissa(v int64) (uint64, error) {
	seed := decimal.New(v, 0)

	// Schrage step, truncating the quotient to an integer.
	hi, _ := seed.QuoRem(constQ, 0)
	lo := seed.Sub(constQ.Mul(hi))
	seed = constA.Mul(lo).Sub(constR.Mul(hi))

	if seed.Sign() <= 0 {
		seed = seed.Add(constM)
	}

	// Normalize into [0, 1], keeping the top FractionalDigits digits.
	value, _ := seed.QuoRem(constM, FractionalDigits)

	mantissa := value.Shift(FractionalDigits)
	if mantissa.Sign() < 0 || value.Cmp(one) > 0 {
		return 0, fmt.Errorf("%w: input %d produced %s", shuffleerrors.ErrValueOutOfRange, v, value)
	}
	return uint64(mantissa.IntPart()), nil
}
