package rsaattack

import (
	"math/big"

	"github.com/pkg/errors"
)

// maxRootDegree bounds the exponents worth attacking: beyond it the e-th
// root of any ciphertext smaller than n is 1, so the search is pointless.
const maxRootDegree = 1 << 20

// AttackLowExponent recovers the plaintext when m^e did not wrap the
// modulus, by taking the integer e-th root of the ciphertext. For
// kBound > 0 it extends the search to c + k*n for k = 1..kBound, covering
// messages whose e-th power wrapped a small number of times. Deterministic;
// fails with ErrRootNotFound when no exact root exists within the bound.
func AttackLowExponent(c *big.Int, pub *PublicKey, kBound int) (*big.Int, error) {
	if err := pub.validate(); err != nil {
		return nil, err
	}
	if c == nil || c.Sign() < 0 {
		return nil, wrapInput("ciphertext must be non-negative")
	}
	if kBound < 0 {
		return nil, wrapInput("root search bound must be non-negative")
	}
	if !pub.E.IsInt64() || pub.E.Int64() > maxRootDegree {
		return nil, wrapInput("public exponent too large for root extraction")
	}
	degree := int(pub.E.Int64())

	target := new(big.Int).Set(c)
	for k := 0; k <= kBound; k++ {
		if k > 0 {
			target.Add(target, pub.N)
		}
		root := IntegerNthRoot(target, degree)
		if new(big.Int).Exp(root, pub.E, nil).Cmp(target) == 0 {
			return root, nil
		}
	}
	return nil, errors.Wrapf(ErrRootNotFound, "no exact %d-th root of c + k*n for k up to %d", degree, kBound)
}
