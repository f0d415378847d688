package rsaattack

import (
	"math/big"
	mrand "math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// testRand returns a seeded deterministic entropy source so prime
// generation and weak-key construction are reproducible across runs.
func testRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

func bigFromString(t *testing.T, s string) *big.Int {
	t.Helper()
	z, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, "invalid test constant %q", s)
	return z
}

// requireRoundTrip checks that priv decrypts what pub encrypted.
func requireRoundTrip(t *testing.T, pub *PublicKey, priv *PrivateKey, m *big.Int) {
	t.Helper()
	c, err := Encrypt(m, pub)
	require.NoError(t, err)
	got, err := Decrypt(c, priv)
	require.NoError(t, err)
	require.Zero(t, got.Cmp(m), "round-trip mismatch: got %s, want %s", got, m)
}
