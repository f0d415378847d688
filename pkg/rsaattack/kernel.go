package rsaattack

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// DefaultMillerRabinRounds keeps the false-positive probability of the
// primality test at or below 4^-20.
const DefaultMillerRabinRounds = 20

// used just for code simplification
var (
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big3 = big.NewInt(3)
)

// GCD returns the greatest common divisor of a and b using the iterative
// Euclidean algorithm. The result is non-negative; GCD(0, 0) is 0.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// ExtendedGCD returns g, x, y such that a*x + b*y = g = gcd(a, b).
// Inputs must be non-negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	r0, r1 := new(big.Int).Set(a), new(big.Int).Set(b)
	s0, s1 := big.NewInt(1), big.NewInt(0)
	t0, t1 := big.NewInt(0), big.NewInt(1)
	for r1.Sign() != 0 {
		q, r := new(big.Int).QuoRem(r0, r1, new(big.Int))
		r0, r1 = r1, r
		s0, s1 = s1, new(big.Int).Sub(s0, new(big.Int).Mul(q, s1))
		t0, t1 = t1, new(big.Int).Sub(t0, new(big.Int).Mul(q, t1))
	}
	return r0, s0, t0
}

// ModInverse returns d with a*d ≡ 1 (mod m), normalized into [0, m).
// It fails with ErrNoInverse when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if a == nil || m == nil || m.Sign() <= 0 {
		return nil, wrapInput("modulus must be positive")
	}
	reduced := new(big.Int).Mod(a, m)
	g, x, _ := ExtendedGCD(reduced, m)
	if g.Cmp(big1) != 0 {
		return nil, errors.Wrapf(ErrNoInverse, "gcd(a, m) = %s", g)
	}
	return x.Mod(x, m), nil
}

// ModPow returns base^exp mod mod by square-and-multiply, O(log exp)
// multiplications. mod must be positive and exp non-negative.
func ModPow(base, exp, mod *big.Int) *big.Int {
	if mod.Cmp(big1) == 0 {
		return new(big.Int)
	}
	result := big.NewInt(1)
	b := new(big.Int).Mod(base, mod)
	e := new(big.Int).Set(exp)
	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, mod)
		}
		b.Mul(b, b)
		b.Mod(b, mod)
		e.Rsh(e, 1)
	}
	return result
}

// IsProbablePrime runs the Miller-Rabin test with the given number of
// rounds, drawing witness bases from random. Numbers below 2 and even
// numbers above 2 are rejected without entering the witness loop. A false
// result is always correct; a true result is wrong with probability at
// most 4^-rounds. rounds <= 0 selects DefaultMillerRabinRounds.
func IsProbablePrime(random io.Reader, n *big.Int, rounds int) bool {
	if n == nil || n.Cmp(big2) < 0 {
		return false
	}
	if n.Cmp(big2) == 0 || n.Cmp(big3) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}
	if rounds <= 0 {
		rounds = DefaultMillerRabinRounds
	}

	// Write n-1 as 2^r * d with d odd.
	nMinus1 := new(big.Int).Sub(n, big1)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	// Witness bases are drawn uniformly from [2, n-2].
	span := new(big.Int).Sub(n, big3)
	for i := 0; i < rounds; i++ {
		a, err := rand.Int(random, span)
		if err != nil {
			return false
		}
		a.Add(a, big2)

		x := ModPow(a, d, n)
		if x.Cmp(big1) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		witness := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				witness = false
				break
			}
		}
		if witness {
			return false
		}
	}
	return true
}

// GeneratePrime samples random odd integers of exactly bits bits (top and
// bottom bits forced) until one passes the Miller-Rabin test, and returns
// it. The expected number of trials grows linearly in bits.
func GeneratePrime(random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, wrapInput("prime bit length must be at least 2")
	}
	buf := make([]byte, (bits+7)/8)
	excess := uint(len(buf)*8 - bits)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, errors.Wrapf(ErrPrimeGeneration, "reading entropy: %v", err)
		}
		buf[0] &= 0xff >> excess

		candidate := new(big.Int).SetBytes(buf)
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)

		if IsProbablePrime(random, candidate, DefaultMillerRabinRounds) {
			return candidate, nil
		}
	}
}

// IntegerNthRoot returns the largest r with r^n <= x, found by binary
// search over [0, x]. x must be non-negative and n at least 1; the result
// is nil otherwise. r^n == x identifies x as a perfect n-th power.
func IntegerNthRoot(x *big.Int, n int) *big.Int {
	if x == nil || x.Sign() < 0 || n < 1 {
		return nil
	}
	if n == 1 || x.Cmp(big1) <= 0 {
		return new(big.Int).Set(x)
	}

	degree := big.NewInt(int64(n))
	lo := new(big.Int)
	hi := new(big.Int).Set(x)
	root := new(big.Int)
	for lo.Cmp(hi) <= 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Rsh(mid, 1)
		switch new(big.Int).Exp(mid, degree, nil).Cmp(x) {
		case 0:
			return mid
		case -1:
			root.Set(mid)
			lo = mid.Add(mid, big1)
		case 1:
			hi = mid.Sub(mid, big1)
		}
	}
	return root
}

// IntegerSqrt returns the floor of the square root of x.
func IntegerSqrt(x *big.Int) *big.Int {
	return IntegerNthRoot(x, 2)
}
