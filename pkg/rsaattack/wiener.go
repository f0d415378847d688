package rsaattack

import (
	"math/big"

	"github.com/pkg/errors"
)

// convergent is a truncation of the continued-fraction expansion of e/n,
// reduced to the fraction k/d.
type convergent struct {
	k *big.Int
	d *big.Int
}

// AttackWiener recovers a small private exponent from the public key
// alone. When d < n^(1/4)/3, the fraction k/d from e*d = 1 + k*φ(n)
// appears among the convergents of e/n; each candidate is confirmed by
// solving x^2 - (n - φ + 1)x + n = 0 for the prime factors. Deterministic,
// O(log^2 n). Fails with ErrWienerBoundNotSatisfied when no convergent
// works, the expected outcome for d above the bound.
func AttackWiener(pub *PublicKey) (*PrivateKey, error) {
	if err := pub.validate(); err != nil {
		return nil, err
	}

	for _, c := range convergents(continuedFraction(pub.E, pub.N)) {
		if c.k.Sign() == 0 || c.d.Sign() == 0 {
			continue
		}

		// e*d - 1 must be an integer multiple k of the totient.
		ed := new(big.Int).Mul(pub.E, c.d)
		ed.Sub(ed, big1)
		phi, rem := new(big.Int).QuoRem(ed, c.k, new(big.Int))
		if rem.Sign() != 0 {
			continue
		}

		// p and q are the roots of x^2 - (n - φ + 1)x + n.
		sum := new(big.Int).Sub(pub.N, phi)
		sum.Add(sum, big1)
		disc := new(big.Int).Mul(sum, sum)
		disc.Sub(disc, new(big.Int).Lsh(pub.N, 2))
		if disc.Sign() < 0 {
			continue
		}
		root := IntegerSqrt(disc)
		if new(big.Int).Mul(root, root).Cmp(disc) != 0 {
			continue
		}

		p := new(big.Int).Add(sum, root)
		p.Rsh(p, 1)
		q := new(big.Int).Sub(sum, root)
		q.Rsh(q, 1)
		if p.Cmp(big1) <= 0 || q.Cmp(big1) <= 0 {
			continue
		}
		if new(big.Int).Mul(p, q).Cmp(pub.N) != 0 {
			continue
		}
		return &PrivateKey{D: new(big.Int).Set(c.d), N: new(big.Int).Set(pub.N)}, nil
	}
	return nil, errors.Wrap(ErrWienerBoundNotSatisfied, "no convergent of e/n yields a valid private exponent")
}

// continuedFraction expands num/den by repeated integer division. The
// sequence has O(log den) terms, exactly like Euclid's algorithm.
func continuedFraction(num, den *big.Int) []*big.Int {
	var terms []*big.Int
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	for d.Sign() != 0 {
		q, r := new(big.Int).QuoRem(n, d, new(big.Int))
		terms = append(terms, q)
		n, d = d, r
	}
	return terms
}

// convergents builds the k/d candidates from a term sequence via the
// standard recurrence h_i = a_i*h_{i-1} + h_{i-2} on both tracks.
func convergents(terms []*big.Int) []convergent {
	k0, k1 := big.NewInt(0), big.NewInt(1)
	d0, d1 := big.NewInt(1), big.NewInt(0)
	out := make([]convergent, 0, len(terms))
	for _, a := range terms {
		k := new(big.Int).Mul(a, k1)
		k.Add(k, k0)
		d := new(big.Int).Mul(a, d1)
		d.Add(d, d0)
		out = append(out, convergent{k: k, d: d})
		k0, k1 = k1, k
		d0, d1 = d1, d
	}
	return out
}
