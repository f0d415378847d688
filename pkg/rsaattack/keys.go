package rsaattack

import "math/big"

// PublicKey is an RSA public key.
// Attacks treat it as opaque and possibly adversarial: a malformed key makes
// them fail with an error rather than crash.
type PublicKey struct {
	E *big.Int // public exponent
	N *big.Int // modulus, product of two secret primes
}

// PrivateKey is an RSA private key. D is the multiplicative inverse of the
// public exponent modulo φ(n).
type PrivateKey struct {
	D *big.Int // private exponent
	N *big.Int // modulus, shared with the corresponding PublicKey
}

// Target bundles everything an attacker knows about a key.
type Target struct {
	Key        *PublicKey
	Ciphertext *big.Int   // optional; enables the low-exponent attack
	SecondKey  *PublicKey // optional; enables the common-factor attack
}

// AttackResult contains the outcome of a successful attack.
type AttackResult struct {
	PrivateKey       *PrivateKey // recovered private key, nil when only a plaintext was recovered
	SecondPrivateKey *PrivateKey // set by the common-factor attack for the second modulus
	Plaintext        *big.Int    // recovered message, set by the low-exponent attack
	Attack           string      // name of the attack that succeeded
}

// validate rejects key shapes no attack or encryption can operate on.
func (pub *PublicKey) validate() error {
	if pub == nil || pub.E == nil || pub.N == nil {
		return wrapInput("public key has nil components")
	}
	if pub.N.Cmp(big1) <= 0 {
		return wrapInput("modulus must be greater than 1")
	}
	if pub.E.Sign() <= 0 {
		return wrapInput("public exponent must be positive")
	}
	return nil
}
