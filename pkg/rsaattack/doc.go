// Package rsaattack implements the RSA cryptosystem over arbitrary-precision
// integers together with classical attacks on weak parameter choices:
// trial-division factoring of small moduli, e-th root extraction for low
// public exponents, Fermat factorization of close primes, GCD recovery of a
// shared prime factor, and Wiener's continued-fraction attack on small
// private exponents.
//
// The package is a teaching implementation. It favors explicit
// number-theoretic routines over the shortcuts math/big offers, and none of
// it is hardened against side channels.
//
// # Quick Start
//
//	import "github.com/dsoltani/rsa-attacks/pkg/rsaattack"
//
//	// Generate a deliberately weak key (close primes) and break it.
//	pub, _, _, _, err := rsaattack.GenerateCloseKeyPair(rand.Reader, 256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	priv, err := rsaattack.AttackFermat(pub, 100000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("recovered d: %s\n", priv.D.Text(16))
//
// # Running every attack
//
// The Client tries all applicable attacks against a target, cheapest first:
//
//	client := rsaattack.NewClient()
//
//	result, err := client.RecoverKey(ctx, "targets.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("broken by %s attack\n", result.Attack)
//
// # Customization
//
// Search bounds and attack ordering live in a strategy:
//
//	strategy := rsaattack.NewSequentialStrategy().
//	    WithConfig(rsaattack.Config{
//	        MaxTrial:        10_000_000,
//	        MaxIterations:   1_000_000,
//	        RootSearchBound: 4,
//	        LowExponentMax:  17,
//	    })
//
//	client := rsaattack.NewClient().WithStrategy(strategy)
//
// Implement the AttackStrategy interface to control orchestration yourself.
//
// # Failure semantics
//
// Every attack returns an error from a small sentinel taxonomy (see
// errors.go). A bound-exceeded error means "attack inapplicable to this
// key", not a fault; callers are expected to match with errors.Is and move
// on to the next attack or retry with larger bounds.
package rsaattack
