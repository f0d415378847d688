package rsaattack

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequentialStrategySmallModulus(t *testing.T) {
	strategy := NewSequentialStrategy()
	target := &Target{Key: &PublicKey{E: big.NewInt(17), N: big.NewInt(3233)}}

	result := strategy.Run(context.Background(), target)
	require.NotNil(t, result)
	assert.Equal(t, "small-modulus", result.Attack)
	requireRoundTrip(t, target.Key, result.PrivateKey, big.NewInt(42))
}

func TestSequentialStrategyFallsThroughToWiener(t *testing.T) {
	// Both factors exceed the trial bound and lie far apart, so only the
	// small-d weakness remains.
	pub, d := wienerWeakKey(t)
	strategy := NewSequentialStrategy().WithConfig(Config{
		MaxTrial:       1000,
		MaxIterations:  100,
		LowExponentMax: 7,
	})

	result := strategy.Run(context.Background(), &Target{Key: pub})
	require.NotNil(t, result)
	assert.Equal(t, "wiener", result.Attack)
	assert.Zero(t, result.PrivateKey.D.Cmp(d))
}

func TestSequentialStrategyLowExponent(t *testing.T) {
	pub := &PublicKey{E: big.NewInt(3), N: big.NewInt(3233)}
	strategy := NewSequentialStrategy().WithConfig(Config{
		MaxTrial:        2, // keep trial division from factoring n first
		MaxIterations:   0,
		RootSearchBound: 1,
		LowExponentMax:  7,
	})

	result := strategy.Run(context.Background(), &Target{
		Key:        pub,
		Ciphertext: big.NewInt(142), // 15^3 mod 3233
	})
	require.NotNil(t, result)
	assert.Equal(t, "low-exponent", result.Attack)
	assert.Equal(t, int64(15), result.Plaintext.Int64())
}

func TestSequentialStrategyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	strategy := NewSequentialStrategy()
	result := strategy.Run(ctx, &Target{Key: &PublicKey{E: big.NewInt(17), N: big.NewInt(3233)}})
	assert.Nil(t, result)
}

func TestParallelStrategy(t *testing.T) {
	strategy := NewParallelStrategy().WithConfig(Config{
		MaxTrial:       1_000_000,
		MaxIterations:  100_000,
		LowExponentMax: 7,
		NumWorkers:     2,
	})
	target := &Target{Key: &PublicKey{E: big.NewInt(17), N: big.NewInt(3233)}}

	result := strategy.Run(context.Background(), target)
	require.NotNil(t, result)
	require.NotNil(t, result.PrivateKey)
	requireRoundTrip(t, target.Key, result.PrivateKey, big.NewInt(1234))
}

func TestParallelStrategyNoWeakness(t *testing.T) {
	random := testRand(13)
	pub, _, err := GenerateKeyPair(random, 128)
	require.NoError(t, err)

	strategy := NewParallelStrategy().WithConfig(Config{
		MaxTrial:       1000,
		MaxIterations:  100,
		LowExponentMax: 7,
		NumWorkers:     4,
	})
	result := strategy.Run(context.Background(), &Target{Key: pub})
	assert.Nil(t, result, "a sound key must survive every bounded attack")
}

func TestBuildStepsApplicability(t *testing.T) {
	config := DefaultConfig()
	pub := &PublicKey{E: big.NewInt(3), N: big.NewInt(3233)}

	names := func(steps []attackStep) []string {
		out := make([]string, len(steps))
		for i, s := range steps {
			out[i] = s.name
		}
		return out
	}

	// Key only: no ciphertext-dependent or pairwise attacks.
	steps := buildSteps(&Target{Key: pub}, config)
	assert.Equal(t, []string{"small-modulus", "fermat", "wiener"}, names(steps))

	// Ciphertext with a small exponent adds the root attack.
	steps = buildSteps(&Target{Key: pub, Ciphertext: big.NewInt(142)}, config)
	assert.Equal(t, []string{"small-modulus", "low-exponent", "fermat", "wiener"}, names(steps))

	// A second key puts the cheap GCD scan first.
	steps = buildSteps(&Target{Key: pub, SecondKey: &PublicKey{E: big.NewInt(17), N: big.NewInt(3127)}}, config)
	assert.Equal(t, "common-factor", steps[0].name)

	// A large exponent gates the root attack off.
	big65537 := &PublicKey{E: big.NewInt(65537), N: big.NewInt(3233)}
	steps = buildSteps(&Target{Key: big65537, Ciphertext: big.NewInt(142)}, config)
	assert.Equal(t, []string{"small-modulus", "fermat", "wiener"}, names(steps))
}
