package rsaattack

import (
	"math/big"

	"github.com/pkg/errors"
)

// AttackCommonFactor recovers both private keys when two moduli share a
// prime factor, a real-world failure of key generators with repeating
// entropy. A single GCD exposes the shared prime; each modulus then splits
// completely. Deterministic, O(log min(n1, n2)). Fails with
// ErrNoSharedFactor when the GCD is 1 or equals one of the moduli.
func AttackCommonFactor(pub1, pub2 *PublicKey) (*PrivateKey, *PrivateKey, error) {
	if err := pub1.validate(); err != nil {
		return nil, nil, err
	}
	if err := pub2.validate(); err != nil {
		return nil, nil, err
	}

	shared := GCD(pub1.N, pub2.N)
	if shared.Cmp(big1) == 0 || shared.Cmp(pub1.N) == 0 || shared.Cmp(pub2.N) == 0 {
		return nil, nil, errors.Wrap(ErrNoSharedFactor, "gcd of the moduli yields no proper factor")
	}

	q1 := new(big.Int).Div(pub1.N, shared)
	q2 := new(big.Int).Div(pub2.N, shared)

	priv1, err := privateFromFactors(pub1.E, shared, q1, pub1.N)
	if err != nil {
		return nil, nil, err
	}
	priv2, err := privateFromFactors(pub2.E, shared, q2, pub2.N)
	if err != nil {
		return nil, nil, err
	}
	return priv1, priv2, nil
}
