package rsaattack

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCloseKeyPair(t *testing.T) {
	random := testRand(10)

	pub, priv, p, q, err := GenerateCloseKeyPair(random, 32)
	require.NoError(t, err)
	require.True(t, IsProbablePrime(random, p, 20))
	require.True(t, IsProbablePrime(random, q, 20))
	assert.Zero(t, new(big.Int).Mul(p, q).Cmp(pub.N))

	// Consecutive primes near 2^32 sit within a few hundred of each other.
	gap := new(big.Int).Sub(q, p)
	assert.True(t, gap.Sign() > 0 && gap.Cmp(big.NewInt(10000)) < 0, "prime gap unexpectedly large: %s", gap)

	requireRoundTrip(t, pub, priv, big.NewInt(123))

	// The whole point of the weakness: Fermat breaks it.
	recovered, err := AttackFermat(pub, 100000)
	require.NoError(t, err)
	requireRoundTrip(t, pub, recovered, big.NewInt(456))
}

func TestGenerateSmallDKeyPair(t *testing.T) {
	random := testRand(11)

	pub, priv, err := GenerateSmallDKeyPair(random, 64)
	require.NoError(t, err)

	limit := IntegerNthRoot(pub.N, 4)
	limit.Div(limit, big.NewInt(3))
	assert.True(t, priv.D.Cmp(limit) < 0, "d must sit below n^(1/4)/3")

	requireRoundTrip(t, pub, priv, big.NewInt(31337))

	recovered, err := AttackWiener(pub)
	require.NoError(t, err)
	assert.Zero(t, recovered.D.Cmp(priv.D), "Wiener must recover the exact d")
}

func TestGenerateSharedPrimeKeyPairs(t *testing.T) {
	random := testRand(12)

	pub1, priv1, pub2, priv2, err := GenerateSharedPrimeKeyPairs(random, 48)
	require.NoError(t, err)

	shared := GCD(pub1.N, pub2.N)
	assert.True(t, shared.Cmp(big.NewInt(1)) > 0, "moduli must share a factor")
	assert.True(t, shared.Cmp(pub1.N) < 0 && shared.Cmp(pub2.N) < 0)

	requireRoundTrip(t, pub1, priv1, big.NewInt(777))
	requireRoundTrip(t, pub2, priv2, big.NewInt(888))

	got1, got2, err := AttackCommonFactor(pub1, pub2)
	require.NoError(t, err)
	requireRoundTrip(t, pub1, got1, big.NewInt(999))
	requireRoundTrip(t, pub2, got2, big.NewInt(111))
}
