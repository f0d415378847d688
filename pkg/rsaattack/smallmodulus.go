package rsaattack

import (
	"math/big"

	"github.com/pkg/errors"
)

// AttackSmallModulus factors n by trial division up to
// min(maxTrial, sqrt(n)) and derives the private key from the first factor
// found. Deterministic, O(min(maxTrial, sqrt(n))) divisions. Fails with
// ErrFactorizationBoundExceeded when no divisor lies within the bound.
func AttackSmallModulus(pub *PublicKey, maxTrial uint64) (*PrivateKey, error) {
	if err := pub.validate(); err != nil {
		return nil, err
	}
	if maxTrial < 2 {
		return nil, wrapInput("trial bound must be at least 2")
	}

	limit := IntegerSqrt(pub.N)
	bound := new(big.Int).SetUint64(maxTrial)
	if bound.Cmp(limit) < 0 {
		limit = bound
	}

	remainder := new(big.Int)
	for trial := big.NewInt(2); trial.Cmp(limit) <= 0; trial.Add(trial, big1) {
		if remainder.Mod(pub.N, trial).Sign() != 0 {
			continue
		}
		p := new(big.Int).Set(trial)
		q := new(big.Int).Div(pub.N, trial)
		return privateFromFactors(pub.E, p, q, pub.N)
	}
	return nil, errors.Wrapf(ErrFactorizationBoundExceeded, "no divisor up to %s", limit)
}
