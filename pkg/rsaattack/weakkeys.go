package rsaattack

import (
	"crypto/rand"
	"io"
	"math/big"
)

// Weak-key generators for demonstrations and tests. Each one violates a
// single security property of standard key generation and is broken by the
// matching attack in this package.

// GenerateCloseKeyPair builds a key from two consecutive primes found by
// walking upward from a random odd base of bits bits, so |p - q| is tiny.
// The prime factors are returned alongside the keys for verification.
// Vulnerable to AttackFermat.
func GenerateCloseKeyPair(random io.Reader, bits int) (*PublicKey, *PrivateKey, *big.Int, *big.Int, error) {
	if bits < 4 {
		return nil, nil, nil, nil, wrapInput("close-prime key needs at least 4 bits per prime")
	}
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(random, buf); err != nil {
		return nil, nil, nil, nil, wrapInput("reading entropy: " + err.Error())
	}
	base := new(big.Int).SetBytes(buf)
	base.SetBit(base, bits-1, 1)
	base.SetBit(base, 0, 1)

	p := nextPrime(random, base)
	q := nextPrime(random, new(big.Int).Add(p, big2))

	pub, priv, err := keyPairFromFactors(p, q)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return pub, priv, p, q, nil
}

// GenerateSmallDKeyPair builds a key whose private exponent is sampled
// below n^(1/4)/3, then derives e as its inverse modulo φ(n).
// Vulnerable to AttackWiener.
func GenerateSmallDKeyPair(random io.Reader, bits int) (*PublicKey, *PrivateKey, error) {
	if bits < 8 {
		return nil, nil, wrapInput("small-d key needs at least 8 bits per prime")
	}
	for {
		p, err := GeneratePrime(random, bits)
		if err != nil {
			return nil, nil, err
		}
		q, err := GeneratePrime(random, bits)
		if err != nil {
			return nil, nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}
		n := new(big.Int).Mul(p, q)
		phi := totient(p, q)

		// Wiener's bound: the attack is guaranteed for d < n^(1/4)/3.
		limit := IntegerNthRoot(n, 4)
		limit.Div(limit, big3)
		if limit.Cmp(big2) <= 0 {
			continue
		}
		d, err := rand.Int(random, limit)
		if err != nil {
			return nil, nil, wrapInput("reading entropy: " + err.Error())
		}
		d.Add(d, big2)
		for GCD(d, phi).Cmp(big1) != 0 {
			d.Add(d, big1)
		}
		if d.Cmp(limit) >= 0 {
			continue
		}
		e, err := ModInverse(d, phi)
		if err != nil {
			continue
		}
		return &PublicKey{E: e, N: n}, &PrivateKey{D: d, N: n}, nil
	}
}

// GenerateSharedPrimeKeyPairs builds two key pairs whose moduli share one
// prime factor, as happens when key generators repeat primes under a bad
// entropy source. Vulnerable to AttackCommonFactor.
func GenerateSharedPrimeKeyPairs(random io.Reader, bits int) (pub1 *PublicKey, priv1 *PrivateKey, pub2 *PublicKey, priv2 *PrivateKey, err error) {
	shared, err := GeneratePrime(random, bits)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	q1, err := distinctPrime(random, bits, shared)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	q2, err := distinctPrime(random, bits, shared, q1)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	pub1, priv1, err = keyPairFromFactors(shared, q1)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	pub2, priv2, err = keyPairFromFactors(shared, q2)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return pub1, priv1, pub2, priv2, nil
}

// keyPairFromFactors assembles a key pair over the factors p, q, choosing
// the smallest workable public exponent starting from DefaultExponent.
func keyPairFromFactors(p, q *big.Int) (*PublicKey, *PrivateKey, error) {
	n := new(big.Int).Mul(p, q)
	phi := totient(p, q)
	e := chooseExponent(phi)
	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, nil, err
	}
	return &PublicKey{E: e, N: n}, &PrivateKey{D: d, N: n}, nil
}

// chooseExponent prefers 65537 and falls back to scanning small odd
// values when 65537 divides φ(n).
func chooseExponent(phi *big.Int) *big.Int {
	e := big.NewInt(DefaultExponent)
	if GCD(e, phi).Cmp(big1) == 0 {
		return e
	}
	e.SetInt64(3)
	for GCD(e, phi).Cmp(big1) != 0 {
		e.Add(e, big2)
	}
	return e
}

// nextPrime walks odd numbers upward from base until one tests prime.
// base must be odd.
func nextPrime(random io.Reader, base *big.Int) *big.Int {
	p := new(big.Int).Set(base)
	for !IsProbablePrime(random, p, DefaultMillerRabinRounds) {
		p.Add(p, big2)
	}
	return p
}

// distinctPrime draws a prime of bits bits that differs from all of avoid.
func distinctPrime(random io.Reader, bits int, avoid ...*big.Int) (*big.Int, error) {
	for {
		p, err := GeneratePrime(random, bits)
		if err != nil {
			return nil, err
		}
		collision := false
		for _, a := range avoid {
			if p.Cmp(a) == 0 {
				collision = true
				break
			}
		}
		if !collision {
			return p, nil
		}
	}
}
