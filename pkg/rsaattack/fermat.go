package rsaattack

import (
	"math/big"

	"github.com/pkg/errors"
)

// AttackFermat factors n by Fermat's difference-of-squares method: walk
// a upward from ceil(sqrt(n)) until a^2 - n is a perfect square b^2, then
// n = (a-b)(a+b). Converges after about |p-q|/2 steps, so it breaks moduli
// whose prime factors lie close together. Fails with
// ErrIterationBoundExceeded past maxIterations, or with
// ErrDegenerateFactor when the only split found is 1 * n (n prime).
func AttackFermat(pub *PublicKey, maxIterations int) (*PrivateKey, error) {
	if err := pub.validate(); err != nil {
		return nil, err
	}
	if maxIterations < 0 {
		return nil, wrapInput("iteration bound must be non-negative")
	}

	a := IntegerSqrt(pub.N)
	if new(big.Int).Mul(a, a).Cmp(pub.N) < 0 {
		a.Add(a, big1)
	}

	bSquared := new(big.Int)
	square := new(big.Int)
	for i := 0; i <= maxIterations; i++ {
		bSquared.Mul(a, a)
		bSquared.Sub(bSquared, pub.N)

		b := IntegerSqrt(bSquared)
		if square.Mul(b, b).Cmp(bSquared) == 0 {
			p := new(big.Int).Sub(a, b)
			q := new(big.Int).Add(a, b)
			if p.Cmp(big1) <= 0 {
				return nil, errors.Wrap(ErrDegenerateFactor, "search reached the trivial split 1 * n")
			}
			return privateFromFactors(pub.E, p, q, pub.N)
		}
		a.Add(a, big1)
	}
	return nil, errors.Wrapf(ErrIterationBoundExceeded, "no square difference within %d iterations", maxIterations)
}
