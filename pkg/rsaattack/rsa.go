package rsaattack

import (
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// DefaultExponent is the public exponent used by GenerateKeyPair.
const DefaultExponent = 65537

// GenerateKeyPair draws two independent primes of bits bits each from
// random, fixes e = DefaultExponent and returns the resulting key pair.
// It redraws the primes when they collide or when e is not invertible
// modulo φ(n), both rare.
func GenerateKeyPair(random io.Reader, bits int) (*PublicKey, *PrivateKey, error) {
	if bits < 2 {
		return nil, nil, wrapInput("key bit length must be at least 2")
	}
	e := big.NewInt(DefaultExponent)
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
		d, err := ModInverse(e, totient(p, q))
		if err != nil {
			continue
		}
		return &PublicKey{E: e, N: n}, &PrivateKey{D: d, N: n}, nil
	}
}

// Encrypt returns m^e mod n. The message must satisfy 0 <= m < n.
func Encrypt(m *big.Int, pub *PublicKey) (*big.Int, error) {
	if err := pub.validate(); err != nil {
		return nil, err
	}
	if m == nil || m.Sign() < 0 || m.Cmp(pub.N) >= 0 {
		return nil, errors.Wrap(ErrMessageOutOfRange, "message must satisfy 0 <= m < n")
	}
	return ModPow(m, pub.E, pub.N), nil
}

// Decrypt returns c^d mod n. The ciphertext is reduced into [0, n) first
// so that equal residues decrypt identically.
func Decrypt(c *big.Int, priv *PrivateKey) (*big.Int, error) {
	if priv == nil || priv.D == nil || priv.N == nil || priv.N.Cmp(big1) <= 0 {
		return nil, wrapInput("malformed private key")
	}
	if c == nil || c.Sign() < 0 {
		return nil, wrapInput("ciphertext must be non-negative")
	}
	reduced := new(big.Int).Mod(c, priv.N)
	return ModPow(reduced, priv.D, priv.N), nil
}

// totient returns φ(n) = (p-1)(q-1).
func totient(p, q *big.Int) *big.Int {
	pMinus1 := new(big.Int).Sub(p, big1)
	qMinus1 := new(big.Int).Sub(q, big1)
	return pMinus1.Mul(pMinus1, qMinus1)
}

// privateFromFactors derives the private key for e from a recovered
// factorization p*q = n. ErrNoInverse propagates when e is not invertible
// modulo the derived totient.
func privateFromFactors(e, p, q, n *big.Int) (*PrivateKey, error) {
	d, err := ModInverse(e, totient(p, q))
	if err != nil {
		return nil, err
	}
	return &PrivateKey{D: d, N: new(big.Int).Set(n)}, nil
}
