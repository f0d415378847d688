package rsaattack

import (
	"context"
)

// AttackStrategy defines the interface for attack orchestration.
// Implement this interface to control which attacks run and in what order.
type AttackStrategy interface {
	// Run attempts to break the target. It returns an AttackResult on
	// success, or nil when every applicable attack came up empty.
	// The context can be used for cancellation.
	Run(ctx context.Context, target *Target) *AttackResult

	// Name returns a human-readable name for this strategy.
	Name() string
}

// Config bounds the searching attacks so adversarial inputs cannot hang
// the process.
type Config struct {
	// MaxTrial is the small-modulus trial-division bound.
	MaxTrial uint64

	// MaxIterations is the Fermat square-difference search bound.
	MaxIterations int

	// RootSearchBound is the low-exponent c + k*n search bound
	// (0 = plain e-th root only).
	RootSearchBound int

	// LowExponentMax gates the root attack: it only runs when the public
	// exponent is at most this value.
	LowExponentMax int64

	// NumWorkers controls the parallel strategy (0 = auto-detect).
	NumWorkers int
}

// DefaultConfig returns the bounds used by NewClient.
func DefaultConfig() Config {
	return Config{
		MaxTrial:        1_000_000,
		MaxIterations:   100_000,
		RootSearchBound: 0,
		LowExponentMax:  7,
		NumWorkers:      0,
	}
}

// attackStep is one runnable attack bound to a target.
type attackStep struct {
	name string
	run  func() (*AttackResult, error)
}

// buildSteps lists the attacks applicable to the target, cheapest first:
// a shared-factor GCD and trial division cost next to nothing, root
// extraction and Fermat's walk are bounded searches, and Wiener's
// convergent scan comes last.
func buildSteps(target *Target, config Config) []attackStep {
	pub := target.Key
	var steps []attackStep

	if target.SecondKey != nil {
		second := target.SecondKey
		steps = append(steps, attackStep{name: "common-factor", run: func() (*AttackResult, error) {
			priv1, priv2, err := AttackCommonFactor(pub, second)
			if err != nil {
				return nil, err
			}
			return &AttackResult{PrivateKey: priv1, SecondPrivateKey: priv2}, nil
		}})
	}

	steps = append(steps, attackStep{name: "small-modulus", run: func() (*AttackResult, error) {
		priv, err := AttackSmallModulus(pub, config.MaxTrial)
		if err != nil {
			return nil, err
		}
		return &AttackResult{PrivateKey: priv}, nil
	}})

	if target.Ciphertext != nil && pub.E != nil && pub.E.IsInt64() && pub.E.Int64() <= config.LowExponentMax {
		c := target.Ciphertext
		steps = append(steps, attackStep{name: "low-exponent", run: func() (*AttackResult, error) {
			m, err := AttackLowExponent(c, pub, config.RootSearchBound)
			if err != nil {
				return nil, err
			}
			return &AttackResult{Plaintext: m}, nil
		}})
	}

	steps = append(steps,
		attackStep{name: "fermat", run: func() (*AttackResult, error) {
			priv, err := AttackFermat(pub, config.MaxIterations)
			if err != nil {
				return nil, err
			}
			return &AttackResult{PrivateKey: priv}, nil
		}},
		attackStep{name: "wiener", run: func() (*AttackResult, error) {
			priv, err := AttackWiener(pub)
			if err != nil {
				return nil, err
			}
			return &AttackResult{PrivateKey: priv}, nil
		}},
	)
	return steps
}
